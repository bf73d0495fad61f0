package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/app/models/dto"
	"github.com/alumlink/portal/internal/app/repositories"
	"github.com/alumlink/portal/internal/pkg/helpers"
)

// DirectoryService serves the browsable alumni directory and the degree
// reference list.
type DirectoryService struct {
	alumniRepo *repositories.AlumniRepository
	degreeRepo *repositories.DegreeRepository
	logger     zerolog.Logger
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(repos *repositories.Repositories, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		alumniRepo: repos.AlumniRepository,
		degreeRepo: repos.DegreeRepository,
		logger:     logger,
	}
}

// ListDirectory returns one page of directory entries matching the filters
func (s *DirectoryService) ListDirectory(ctx context.Context, filter dto.DirectoryFilter, page, pageSize int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	query := repositories.DirectoryQuery{
		Name:           filter.Name,
		DegreeID:       filter.DegreeID,
		YearGraduation: filter.YearGraduation,
		Location:       filter.Location,
	}

	entries, total, err := s.alumniRepo.ListDirectory(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DirectoryEntry, 0, len(entries))
	for _, alumni := range entries {
		entry := dto.DirectoryEntry{
			ID:             alumni.ID,
			FullName:       alumni.FullName(),
			YearGraduation: alumni.YearGraduation,
			Location:       alumni.Location,
			ProfilePicture: alumni.ProfilePicture,
		}
		if alumni.Degree != nil {
			entry.Degree = &alumni.Degree.Name
		}
		items = append(items, entry)
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(page, limit, total),
	}, nil
}

// ListDegrees returns every degree grouped by category order, optionally
// narrowed by a name search.
func (s *DirectoryService) ListDegrees(ctx context.Context, search string) ([]dto.DegreeResponse, error) {
	degrees, err := s.degreeRepo.GetAllDegrees(ctx, search)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DegreeResponse, 0, len(degrees))
	for _, degree := range degrees {
		responses = append(responses, dto.FromDegree(degree))
	}
	return responses, nil
}
