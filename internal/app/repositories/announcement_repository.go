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

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db Querier) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var announcementColumns = []string{
	"id", "title", "body", "cover_image", "published_at", "created_by", "created_at", "updated_at",
}

// List retrieves a page of announcements, newest first, with the total count
func (r *AnnouncementRepository) List(ctx context.Context, offset, limit int) ([]*models.Announcement, int, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("announcements").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building announcement count SQL")
		return nil, 0, fmt.Errorf("failed to build announcement count query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting announcements")
		return nil, 0, fmt.Errorf("error counting announcements: %w", err)
	}

	sql, args, err := r.sb.Select(announcementColumns...).
		From("announcements").
		OrderBy("published_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list announcements SQL")
		return nil, 0, fmt.Errorf("failed to build list announcements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list announcements query")
		return nil, 0, fmt.Errorf("error querying announcements: %w", err)
	}
	defer rows.Close()

	announcements := []*models.Announcement{}
	for rows.Next() {
		a := &models.Announcement{}
		err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.CoverImage, &a.PublishedAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning announcement row")
			return nil, 0, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating announcement rows")
		return nil, 0, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, total, nil
}

// GetByID retrieves one announcement
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	sql, args, err := r.sb.Select(announcementColumns...).
		From("announcements").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get announcement SQL")
		return nil, fmt.Errorf("failed to build get announcement query: %w", err)
	}

	a := &models.Announcement{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&a.ID, &a.Title, &a.Body, &a.CoverImage, &a.PublishedAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("announcementID", id).Msg("Error scanning announcement row")
		return nil, fmt.Errorf("error getting announcement by ID: %w", err)
	}

	return a, nil
}

// Create inserts a new announcement and returns its ID
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) (int64, error) {
	sql, args, err := r.sb.Insert("announcements").
		Columns("title", "body", "cover_image", "published_at", "created_by").
		Values(a.Title, a.Body, a.CoverImage, a.PublishedAt, a.CreatedBy).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create announcement SQL")
		return 0, fmt.Errorf("failed to build create announcement query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create announcement query")
		return 0, fmt.Errorf("error creating announcement: %w", err)
	}

	return id, nil
}
