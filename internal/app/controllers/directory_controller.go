package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/app/models/dto"
	"github.com/alumlink/portal/internal/app/services"
	"github.com/alumlink/portal/internal/middleware"
	"github.com/alumlink/portal/internal/pkg/helpers"
)

// DirectoryController handles the alumni directory and degree reference data
type DirectoryController struct {
	directoryService *services.DirectoryService
	logger           zerolog.Logger
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService, logger zerolog.Logger) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
		logger:           logger,
	}
}

// ListDirectory returns a filtered page of the alumni directory
// @Summary Browse the alumni directory
// @Description Returns a page of alumni matching the optional name, degree, graduation year and location filters.
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param name query string false "Name fragment"
// @Param degreeId query int false "Degree ID"
// @Param yearGraduation query int false "Graduation year"
// @Param location query string false "Location fragment"
// @Param page query int false "1-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Directory page"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /directory [get]
func (c *DirectoryController) ListDirectory(ctx *gin.Context) {
	var filter dto.DirectoryFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	result, err := c.directoryService.ListDirectory(ctx.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, "Directory retrieved"))
}

// ListDegrees returns the degree reference list
// @Summary List degrees
// @Description Returns every degree with its category, for sign-up and profile-edit selection.
// @Tags directory
// @Produce json
// @Param search query string false "Degree name fragment"
// @Success 200 {object} dto.APIResponse{data=[]dto.DegreeResponse} "Degrees"
// @Router /degrees [get]
func (c *DirectoryController) ListDegrees(ctx *gin.Context) {
	degrees, err := c.directoryService.ListDegrees(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(degrees, "Degrees retrieved"))
}
