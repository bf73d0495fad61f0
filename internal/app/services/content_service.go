package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/app/models/dto"
	"github.com/alumlink/portal/internal/app/repositories"
	"github.com/alumlink/portal/internal/pkg/helpers"
)

// ContentService serves the portal's published content: announcements,
// events and fundraising campaigns.
type ContentService struct {
	announcementRepo *repositories.AnnouncementRepository
	eventRepo        *repositories.EventRepository
	campaignRepo     *repositories.CampaignRepository
	logger           zerolog.Logger
}

// NewContentService creates a new ContentService
func NewContentService(repos *repositories.Repositories, logger zerolog.Logger) *ContentService {
	return &ContentService{
		announcementRepo: repos.AnnouncementRepository,
		eventRepo:        repos.EventRepository,
		campaignRepo:     repos.CampaignRepository,
		logger:           logger,
	}
}

// ListAnnouncements returns one page of announcements, newest first
func (s *ContentService) ListAnnouncements(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	announcements, total, err := s.announcementRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		items = append(items, dto.FromAnnouncement(a))
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(page, limit, total),
	}, nil
}

// GetAnnouncement returns one announcement
func (s *ContentService) GetAnnouncement(ctx context.Context, id int64) (*dto.AnnouncementResponse, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.FromAnnouncement(announcement)
	return &response, nil
}

// ListEvents returns one page of events ordered by start time
func (s *ContentService) ListEvents(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	events, total, err := s.eventRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, dto.FromEvent(e))
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(page, limit, total),
	}, nil
}

// GetEvent returns one event
func (s *ContentService) GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.FromEvent(event)
	return &response, nil
}

// ListCampaigns returns one page of campaigns, newest first
func (s *ContentService) ListCampaigns(ctx context.Context, page, pageSize int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	campaigns, total, err := s.campaignRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, dto.FromCampaign(c))
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(page, limit, total),
	}, nil
}

// GetCampaign returns one campaign
func (s *ContentService) GetCampaign(ctx context.Context, id int64) (*dto.CampaignResponse, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.FromCampaign(campaign)
	return &response, nil
}
