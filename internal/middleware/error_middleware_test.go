package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumlink/portal/internal/app/models/dto"
	"github.com/alumlink/portal/internal/pkg/apperrors"
	"github.com/alumlink/portal/internal/pkg/validation"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrAccountDisabled, http.StatusForbidden},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{apperrors.ErrTokenNotFound, http.StatusUnauthorized},
		{apperrors.ErrPermissionDenied, http.StatusForbidden},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{apperrors.ErrUserNotFound, http.StatusNotFound},
		{apperrors.ErrAlumniNotFound, http.StatusNotFound},
		{apperrors.ErrDegreeNotFound, http.StatusNotFound},
		{apperrors.ErrPictureTooLarge, http.StatusRequestEntityTooLarge},
		{apperrors.ErrNotAnImage, http.StatusBadRequest},
		{apperrors.ErrBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec, body := handle(t, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.NotEmpty(t, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("loading profile: %w", apperrors.ErrAlumniNotFound)
	rec, _ := handle(t, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAPIErrorFieldErrors(t *testing.T) {
	errs := validation.FieldErrors{
		"email":      "Email must be a valid address",
		"first_name": "First name is required",
	}

	rec, body := handle(t, errs)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, string(dto.ErrorCodeValidationFailed), string(body.Error.Code))
	details, ok := body.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Email must be a valid address", details["email"])
	assert.Equal(t, "First name is required", details["first_name"])
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	err := apperrors.NewBadRequestError("End date cannot precede the start date")
	rec, body := handle(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "End date cannot precede the start date", body.Error.Message)
}

func TestHandleAPIErrorUnknownError(t *testing.T) {
	rec, body := handle(t, fmt.Errorf("something odd"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, string(dto.ErrorCodeInternalServer), string(body.Error.Code))
}
