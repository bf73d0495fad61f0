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

// EmploymentRepository handles work history database operations
type EmploymentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewEmploymentRepository creates a new EmploymentRepository
func NewEmploymentRepository(db Querier) *EmploymentRepository {
	return &EmploymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var employmentColumns = []string{
	"id", "alumni_id", "company", "position", "location",
	"start_date", "end_date", "description", "created_at", "updated_at",
}

// ListByAlumniID retrieves the work history of one alumnus, most recent
// position first.
func (r *EmploymentRepository) ListByAlumniID(ctx context.Context, alumniID int64) ([]*models.EmploymentEntry, error) {
	sql, args, err := r.sb.Select(employmentColumns...).
		From("employment_entries").
		Where(squirrel.Eq{"alumni_id": alumniID}).
		OrderBy("start_date DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list employment SQL")
		return nil, fmt.Errorf("failed to build list employment query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("alumniID", alumniID).Msg("Error executing list employment query")
		return nil, fmt.Errorf("error querying employment entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.EmploymentEntry{}
	for rows.Next() {
		entry := &models.EmploymentEntry{}
		err := rows.Scan(
			&entry.ID, &entry.AlumniID, &entry.Company, &entry.Position, &entry.Location,
			&entry.StartDate, &entry.EndDate, &entry.Description, &entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning employment row")
			return nil, fmt.Errorf("error scanning employment row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating employment rows")
		return nil, fmt.Errorf("error iterating employment rows: %w", err)
	}

	return entries, nil
}

// Create inserts a new work history entry and returns its ID
func (r *EmploymentRepository) Create(ctx context.Context, entry *models.EmploymentEntry) (int64, error) {
	sql, args, err := r.sb.Insert("employment_entries").
		Columns("alumni_id", "company", "position", "location", "start_date", "end_date", "description").
		Values(entry.AlumniID, entry.Company, entry.Position, entry.Location,
			entry.StartDate, entry.EndDate, entry.Description).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create employment SQL")
		return 0, fmt.Errorf("failed to build create employment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrAlumniNotFound
		}
		logger.Error().Err(err).Int64("alumniID", entry.AlumniID).Msg("Error executing create employment query")
		return 0, fmt.Errorf("error creating employment entry: %w", err)
	}

	return id, nil
}

// Delete removes one work history entry, scoped to its owner
func (r *EmploymentRepository) Delete(ctx context.Context, id, alumniID int64) error {
	sql, args, err := r.sb.Delete("employment_entries").
		Where(squirrel.Eq{"id": id, "alumni_id": alumniID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete employment SQL")
		return fmt.Errorf("failed to build delete employment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("entryID", id).Msg("Error executing delete employment query")
		return fmt.Errorf("error deleting employment entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
