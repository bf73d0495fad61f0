package dto

import "github.com/alumlink/portal/internal/pkg/validation"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterRequest carries the raw field values collected by the sign-up
// wizard. Everything arrives as strings and is validated and normalized
// by the registration package before an account is created.
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName"`
	LastName        string `json:"lastName"`
	BirthDate       string `json:"birthDate" example:"1999-04-23"`
	YearBatch       string `json:"yearBatch" example:"2017"`
	YearGraduation  string `json:"yearGraduation" example:"2021"`
	DegreeID        string `json:"degreeId" example:"3"`
	Location        string `json:"location"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Values flattens the request into the field map the registration
// schema validates.
func (r *RegisterRequest) Values() validation.Values {
	return validation.Values{
		"first_name":       r.FirstName,
		"middle_name":      r.MiddleName,
		"last_name":        r.LastName,
		"birth_date":       r.BirthDate,
		"year_batch":       r.YearBatch,
		"year_graduation":  r.YearGraduation,
		"degree_id":        r.DegreeID,
		"location":         r.Location,
		"email":            r.Email,
		"password":         r.Password,
		"confirm_password": r.ConfirmPassword,
	}
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse  `json:"token"`
	User  *AlumniProfile `json:"user,omitempty"`
}
