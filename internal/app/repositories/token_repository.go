package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alumlink/portal/internal/app/models"
	"github.com/alumlink/portal/internal/pkg/apperrors"
	"github.com/alumlink/portal/internal/pkg/logger"
)

// TokenRepository handles refresh token database operations
type TokenRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db Querier) *TokenRepository {
	return &TokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateRefreshToken stores a new refresh token
func (r *TokenRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	sql, args, err := r.sb.Insert("refresh_tokens").
		Columns("user_id", "token", "expires_at", "revoked").
		Values(token.UserID, token.Token, token.ExpiresAt, false).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create refresh token SQL")
		return fmt.Errorf("failed to build create refresh token query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&token.ID); err != nil {
		logger.Error().Err(err).Int64("userID", token.UserID).Msg("Error executing create refresh token query")
		return fmt.Errorf("error creating refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken retrieves a refresh token record by its opaque value
func (r *TokenRepository) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	sql, args, err := r.sb.Select("id", "user_id", "token", "expires_at", "revoked", "created_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get refresh token SQL")
		return nil, fmt.Errorf("failed to build get refresh token query: %w", err)
	}

	record := &models.RefreshToken{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&record.ID, &record.UserID, &record.Token,
		&record.ExpiresAt, &record.Revoked, &record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		logger.Error().Err(err).Msg("Error scanning refresh token row")
		return nil, fmt.Errorf("error getting refresh token: %w", err)
	}

	return record, nil
}

// RevokeRefreshToken marks a single refresh token as revoked
func (r *TokenRepository) RevokeRefreshToken(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("refresh_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building revoke refresh token SQL")
		return fmt.Errorf("failed to build revoke refresh token query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("tokenID", id).Msg("Error executing revoke refresh token query")
		return fmt.Errorf("error revoking refresh token: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}

	return nil
}

// RevokeAllForUser revokes every active refresh token of a user
func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Update("refresh_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"user_id": userID, "revoked": false}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building revoke all tokens SQL")
		return fmt.Errorf("failed to build revoke all tokens query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing revoke all tokens query")
		return fmt.Errorf("error revoking tokens for user: %w", err)
	}

	// No affected rows is fine, the user may simply have no active tokens.
	return nil
}

// DeleteExpired removes refresh tokens that can no longer be redeemed
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Delete("refresh_tokens").
		Where(squirrel.Expr("expires_at < NOW()")).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete expired tokens SQL")
		return 0, fmt.Errorf("failed to build delete expired tokens query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete expired tokens query")
		return 0, fmt.Errorf("error deleting expired tokens: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
