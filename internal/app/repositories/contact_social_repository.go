package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/alumlink/portal/internal/app/models"
	"github.com/alumlink/portal/internal/pkg/apperrors"
	"github.com/alumlink/portal/internal/pkg/dberrors"
	"github.com/alumlink/portal/internal/pkg/logger"
)

// ContactSocialRepository handles social link database operations
type ContactSocialRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewContactSocialRepository creates a new ContactSocialRepository
func NewContactSocialRepository(db Querier) *ContactSocialRepository {
	return &ContactSocialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByAlumniID retrieves all social links of one alumnus
func (r *ContactSocialRepository) ListByAlumniID(ctx context.Context, alumniID int64) ([]*models.ContactSocial, error) {
	sql, args, err := r.sb.Select("id", "alumni_id", "platform", "url", "created_at").
		From("contact_socials").
		Where(squirrel.Eq{"alumni_id": alumniID}).
		OrderBy("platform ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list contact socials SQL")
		return nil, fmt.Errorf("failed to build list contact socials query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("alumniID", alumniID).Msg("Error executing list contact socials query")
		return nil, fmt.Errorf("error querying contact socials: %w", err)
	}
	defer rows.Close()

	socials := []*models.ContactSocial{}
	for rows.Next() {
		social := &models.ContactSocial{}
		if err := rows.Scan(&social.ID, &social.AlumniID, &social.Platform, &social.URL, &social.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning contact social row")
			return nil, fmt.Errorf("error scanning contact social row: %w", err)
		}
		socials = append(socials, social)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating contact social rows")
		return nil, fmt.Errorf("error iterating contact social rows: %w", err)
	}

	return socials, nil
}

// Upsert inserts a social link or replaces the URL of an existing platform
// entry for the same alumnus.
func (r *ContactSocialRepository) Upsert(ctx context.Context, social *models.ContactSocial) error {
	sql, args, err := r.sb.Insert("contact_socials").
		Columns("alumni_id", "platform", "url").
		Values(social.AlumniID, social.Platform, social.URL).
		Suffix("ON CONFLICT (alumni_id, platform) DO UPDATE SET url = EXCLUDED.url RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert contact social SQL")
		return fmt.Errorf("failed to build upsert contact social query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&social.ID); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrAlumniNotFound
		}
		logger.Error().Err(err).Int64("alumniID", social.AlumniID).Msg("Error executing upsert contact social query")
		return fmt.Errorf("error upserting contact social: %w", err)
	}

	return nil
}

// Delete removes one social link, scoped to its owner
func (r *ContactSocialRepository) Delete(ctx context.Context, id, alumniID int64) error {
	sql, args, err := r.sb.Delete("contact_socials").
		Where(squirrel.Eq{"id": id, "alumni_id": alumniID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete contact social SQL")
		return fmt.Errorf("failed to build delete contact social query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("socialID", id).Msg("Error executing delete contact social query")
		return fmt.Errorf("error deleting contact social: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
