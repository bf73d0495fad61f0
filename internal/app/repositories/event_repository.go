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

// EventRepository handles event database operations
type EventRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db Querier) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var eventColumns = []string{
	"id", "title", "description", "location", "cover_image",
	"starts_at", "ends_at", "created_by", "created_at", "updated_at",
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.CoverImage,
		&e.StartsAt, &e.EndsAt, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List retrieves a page of events with the total count. Upcoming events
// come first, ordered by start time.
func (r *EventRepository) List(ctx context.Context, offset, limit int) ([]*models.Event, int, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("events").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building event count SQL")
		return nil, 0, fmt.Errorf("failed to build event count query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting events")
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		OrderBy("starts_at ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list events SQL")
		return nil, 0, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, 0, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning event row")
			return nil, 0, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating event rows")
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, total, nil
}

// GetByID retrieves one event
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get event SQL")
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}

	return event, nil
}

// Create inserts a new event and returns its ID
func (r *EventRepository) Create(ctx context.Context, e *models.Event) (int64, error) {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "location", "cover_image", "starts_at", "ends_at", "created_by").
		Values(e.Title, e.Description, e.Location, e.CoverImage, e.StartsAt, e.EndsAt, e.CreatedBy).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return 0, fmt.Errorf("failed to build create event query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}
