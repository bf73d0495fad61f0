package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/app/models"
	"github.com/alumlink/portal/internal/app/models/dto"
	"github.com/alumlink/portal/internal/app/registration"
	"github.com/alumlink/portal/internal/app/repositories"
	"github.com/alumlink/portal/internal/db"
	"github.com/alumlink/portal/internal/pkg/apperrors"
	"github.com/alumlink/portal/internal/pkg/auth"
	"github.com/alumlink/portal/internal/pkg/email"
	"github.com/alumlink/portal/internal/pkg/validation"
)

// AuthService handles account creation, login and token rotation
type AuthService struct {
	database   *db.PostgresDB
	userRepo   *repositories.UserRepository
	alumniRepo *repositories.AlumniRepository
	degreeRepo *repositories.DegreeRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	mailer     email.Service
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	database *db.PostgresDB,
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	mailer email.Service,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		database:   database,
		userRepo:   repos.UserRepository,
		alumniRepo: repos.AlumniRepository,
		degreeRepo: repos.DegreeRepository,
		tokenRepo:  repos.TokenRepository,
		jwtService: jwtService,
		mailer:     mailer,
		logger:     logger,
	}
}

// CreateAccount creates a user with its alumni profile in one
// transaction. It satisfies the sign-up submitter's account creator
// contract; the metadata arrives already validated and normalized.
func (s *AuthService) CreateAccount(ctx context.Context, emailAddr, password string, metadata registration.AccountMetadata) error {
	exists, err := s.userRepo.EmailExists(ctx, emailAddr)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	if metadata.DegreeID > 0 {
		degreeExists, err := s.degreeRepo.DegreeExists(ctx, metadata.DegreeID)
		if err != nil {
			return err
		}
		if !degreeExists {
			return apperrors.ErrDegreeNotFound
		}
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	birthDate, err := validation.ParseDate(metadata.BirthDate)
	if err != nil {
		return apperrors.NewBadRequestError("Birth date must be a valid date")
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := s.userRepo.WithTx(tx).CreateUser(ctx, &models.User{
			Email:    emailAddr,
			Password: hashed,
			RoleType: models.RoleAlumnus,
			IsActive: true,
		})
		if err != nil {
			return err
		}

		alumni := &models.Alumni{
			ID:         userID,
			FirstName:  metadata.FirstName,
			MiddleName: metadata.MiddleName,
			LastName:   metadata.LastName,
			BirthDate:  &birthDate,
			YearBatch:  metadata.YearBatch,
			Location:   metadata.Location,
		}
		alumni.YearGraduation = metadata.YearGraduation
		if metadata.DegreeID > 0 {
			alumni.DegreeID = &metadata.DegreeID
		}

		return s.alumniRepo.WithTx(tx).CreateAlumni(ctx, alumni)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("email", emailAddr).Msg("Account registered")

	// The account exists either way; a failed greeting is not worth
	// surfacing to the new user.
	if err := s.mailer.SendWelcomeEmail(emailAddr, metadata.FirstName); err != nil {
		s.logger.Warn().Err(err).Str("email", emailAddr).Msg("Welcome email could not be sent")
	}

	return nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (*dto.TokenResponse, *models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		// Hide whether the account exists
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return tokens, user, nil
}

// RefreshTokens rotates a refresh token: the presented token is revoked
// and a fresh pair is issued.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	record, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if record.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetUserByID(ctx, record.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeRefreshToken(ctx, record.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	record, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if record.Revoked {
		return nil
	}
	return s.tokenRepo.RevokeRefreshToken(ctx, record.ID)
}

// GetUserByID retrieves the account behind an authenticated session
func (s *AuthService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	err = s.tokenRepo.CreateRefreshToken(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	})
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             int64(expiresIn),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: int64(refreshExpiresIn),
	}, nil
}
