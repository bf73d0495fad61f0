package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/app/models/dto"
	"github.com/alumlink/portal/internal/app/profile"
	"github.com/alumlink/portal/internal/app/services"
	"github.com/alumlink/portal/internal/middleware"
	"github.com/alumlink/portal/internal/pkg/validation"
)

// editableFields are the form fields accepted by the profile update
// endpoint. Only fields actually posted become part of the edit draft.
var editableFields = []string{
	"first_name", "middle_name", "last_name", "birth_date",
	"year_batch", "year_graduation", "degree_id",
	"profile_description", "location",
}

// ProfileController handles the authenticated user's profile surface
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile returns the caller's profile
// @Summary Get own profile
// @Description Returns the authenticated alumnus' profile with degree and email.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AlumniProfile} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profile/me [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	result, err := c.profileService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, "Profile retrieved"))
}

// GetOverview returns the caller's full profile snapshot
// @Summary Get profile overview
// @Description Returns the profile, degree, social links and work history together with each entity's fetch status.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileOverview} "Overview"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile/overview [get]
func (c *ProfileController) GetOverview(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	snap := c.profileService.LoadSnapshot(ctx.Request.Context(), userID)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromSnapshot(snap), "Overview retrieved"))
}

// UpdateProfile applies a partial profile update
// @Summary Update own profile
// @Description Applies the posted fields to the profile. A multipart "picture" file replaces the profile picture; the previous picture is removed only after the new one is committed.
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param picture formData file false "New profile picture (image, max 5 MB)"
// @Success 200 {object} dto.APIResponse{data=dto.AlumniProfile} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 413 {object} dto.ErrorResponse "Picture exceeds the size limit"
// @Router /profile/me [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	draft := profile.EditDraft{Values: validation.Values{}}
	for _, field := range editableFields {
		if value, exists := ctx.GetPostForm(field); exists {
			draft.Values[field] = value
		}
	}

	fileHeader, err := ctx.FormFile("picture")
	if err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.logger.Error().Err(err).Msg("Failed to open uploaded picture")
			detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Failed to read uploaded file")
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
			return
		}
		defer file.Close()

		draft.Picture = &profile.PictureUpload{
			Content:     file,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
		}
	}

	outcome, updated, err := c.profileService.UpdateProfile(ctx.Request.Context(), userID, draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// A failed upload does not block the field update; report it so the
	// caller can retry the picture alone.
	if outcome.UploadErr != nil {
		middleware.HandleAPIError(ctx, outcome.UploadErr)
		return
	}

	message := "Profile updated"
	if outcome.CleanupWarning != nil {
		message = "Profile updated; previous picture could not be removed"
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated, message))
}

// ListSocials returns the caller's social links
// @Summary List social links
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ContactSocialResponse} "Social links"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile/socials [get]
func (c *ProfileController) ListSocials(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	socials, err := c.profileService.GetSocials(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(socials, "Social links retrieved"))
}

// AddSocial adds or replaces a social link
// @Summary Add a social link
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ContactSocialRequest true "Social link"
// @Success 201 {object} dto.APIResponse{data=dto.ContactSocialResponse} "Social link saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile/socials [post]
func (c *ProfileController) AddSocial(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	var req dto.ContactSocialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	social, err := c.profileService.AddSocial(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(social, "Social link saved"))
}

// DeleteSocial removes a social link
// @Summary Delete a social link
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Social link ID"
// @Success 200 {object} dto.APIResponse "Social link deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Social link not found"
// @Router /profile/socials/{id} [delete]
func (c *ProfileController) DeleteSocial(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	socialID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid social link ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.profileService.DeleteSocial(ctx.Request.Context(), userID, socialID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Social link deleted"))
}

// ListEmployment returns the caller's work history
// @Summary List work history
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EmploymentResponse} "Work history"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile/employment [get]
func (c *ProfileController) ListEmployment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	entries, err := c.profileService.ListEmployment(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries, "Work history retrieved"))
}

// AddEmployment adds a work history entry
// @Summary Add a work history entry
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EmploymentRequest true "Work history entry"
// @Success 201 {object} dto.APIResponse{data=dto.EmploymentResponse} "Entry added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile/employment [post]
func (c *ProfileController) AddEmployment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	var req dto.EmploymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	entry, err := c.profileService.AddEmployment(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(entry, "Work history entry added"))
}

// DeleteEmployment removes a work history entry
// @Summary Delete a work history entry
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.APIResponse "Entry deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /profile/employment/{id} [delete]
func (c *ProfileController) DeleteEmployment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	entryID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid entry ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.profileService.DeleteEmployment(ctx.Request.Context(), userID, entryID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Work history entry deleted"))
}
