package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/app/models/dto"
	"github.com/alumlink/portal/internal/app/services"
	"github.com/alumlink/portal/internal/middleware"
	"github.com/alumlink/portal/internal/pkg/helpers"
)

// ContentController handles published portal content
type ContentController struct {
	contentService *services.ContentService
	logger         zerolog.Logger
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService, logger zerolog.Logger) *ContentController {
	return &ContentController{
		contentService: contentService,
		logger:         logger,
	}
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid resource ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// ListAnnouncements returns a page of announcements
// @Summary List announcements
// @Tags content
// @Produce json
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Announcements"
// @Router /announcements [get]
func (c *ContentController) ListAnnouncements(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.contentService.ListAnnouncements(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, "Announcements retrieved"))
}

// GetAnnouncement returns one announcement
// @Summary Get an announcement
// @Tags content
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementResponse} "Announcement"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [get]
func (c *ContentController) GetAnnouncement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	announcement, err := c.contentService.GetAnnouncement(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(announcement, "Announcement retrieved"))
}

// ListEvents returns a page of events
// @Summary List events
// @Tags content
// @Produce json
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Events"
// @Router /events [get]
func (c *ContentController) ListEvents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.contentService.ListEvents(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, "Events retrieved"))
}

// GetEvent returns one event
// @Summary Get an event
// @Tags content
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *ContentController) GetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.contentService.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(event, "Event retrieved"))
}

// ListCampaigns returns a page of fundraising campaigns
// @Summary List campaigns
// @Tags content
// @Produce json
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Campaigns"
// @Router /campaigns [get]
func (c *ContentController) ListCampaigns(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.contentService.ListCampaigns(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, "Campaigns retrieved"))
}

// GetCampaign returns one campaign
// @Summary Get a campaign
// @Tags content
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=dto.CampaignResponse} "Campaign"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id} [get]
func (c *ContentController) GetCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	campaign, err := c.contentService.GetCampaign(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(campaign, "Campaign retrieved"))
}
