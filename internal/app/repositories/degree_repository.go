package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alumlink/portal/internal/app/models"
	"github.com/alumlink/portal/internal/pkg/apperrors"
	"github.com/alumlink/portal/internal/pkg/dberrors"
	"github.com/alumlink/portal/internal/pkg/logger"
)

// DegreeRepository handles degree reference data operations
type DegreeRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewDegreeRepository creates a new DegreeRepository
func NewDegreeRepository(db Querier) *DegreeRepository {
	return &DegreeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAllDegrees retrieves every degree with its category. A non-empty
// search narrows the list to degrees whose name contains it.
func (r *DegreeRepository) GetAllDegrees(ctx context.Context, search string) ([]*models.Degree, error) {
	builder := r.sb.Select("d.id", "d.name", "d.category_id", "c.name").
		From("degrees d").
		Join("degree_categories c ON c.id = d.category_id").
		OrderBy("c.id ASC", "d.name ASC")

	if search != "" {
		builder = builder.Where(squirrel.ILike{"d.name": "%" + search + "%"})
	}

	sql, args, err := builder.ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all degrees SQL")
		return nil, fmt.Errorf("failed to build get all degrees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all degrees query")
		return nil, fmt.Errorf("error querying degrees: %w", err)
	}
	defer rows.Close()

	degrees := []*models.Degree{}
	for rows.Next() {
		degree := &models.Degree{Category: &models.DegreeCategory{}}
		if err := rows.Scan(&degree.ID, &degree.Name, &degree.CategoryID, &degree.Category.Name); err != nil {
			logger.Error().Err(err).Msg("Error scanning degree row")
			return nil, fmt.Errorf("error scanning degree row: %w", err)
		}
		degree.Category.ID = degree.CategoryID
		degrees = append(degrees, degree)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating degree rows")
		return nil, fmt.Errorf("error iterating degree rows: %w", err)
	}

	return degrees, nil
}

// GetDegreeByID retrieves a degree with its category
func (r *DegreeRepository) GetDegreeByID(ctx context.Context, id int64) (*models.Degree, error) {
	sql, args, err := r.sb.Select("d.id", "d.name", "d.category_id", "c.name").
		From("degrees d").
		Join("degree_categories c ON c.id = d.category_id").
		Where(squirrel.Eq{"d.id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get degree SQL")
		return nil, fmt.Errorf("failed to build get degree query: %w", err)
	}

	degree := &models.Degree{Category: &models.DegreeCategory{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&degree.ID, &degree.Name, &degree.CategoryID, &degree.Category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDegreeNotFound
		}
		logger.Error().Err(err).Int64("degreeID", id).Msg("Error scanning degree row")
		return nil, fmt.Errorf("error getting degree by ID: %w", err)
	}
	degree.Category.ID = degree.CategoryID

	return degree, nil
}

// DegreeExists checks whether a degree with the given ID exists
func (r *DegreeRepository) DegreeExists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("degrees").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building degree exists SQL")
		return false, fmt.Errorf("failed to build degree existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("degreeID", id).Msg("Error checking degree existence")
		return false, fmt.Errorf("error checking degree existence: %w", err)
	}

	return exists, nil
}

// CreateCategory inserts a degree category, ignoring duplicates. Used by
// the seeder.
func (r *DegreeRepository) CreateCategory(ctx context.Context, category *models.DegreeCategory) (int64, error) {
	sql, args, err := r.sb.Insert("degree_categories").
		Columns("name").
		Values(category.Name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create degree category SQL")
		return 0, fmt.Errorf("failed to build create degree category query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", category.Name).Msg("Error executing create degree category query")
		return 0, fmt.Errorf("error creating degree category: %w", err)
	}

	return id, nil
}

// CreateDegree inserts a degree, ignoring duplicates. Used by the seeder.
func (r *DegreeRepository) CreateDegree(ctx context.Context, degree *models.Degree) (int64, error) {
	sql, args, err := r.sb.Insert("degrees").
		Columns("name", "category_id").
		Values(degree.Name, degree.CategoryID).
		Suffix("ON CONFLICT (name, category_id) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create degree SQL")
		return 0, fmt.Errorf("failed to build create degree query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("name", degree.Name).Msg("Error executing create degree query")
		return 0, fmt.Errorf("error creating degree: %w", err)
	}

	return id, nil
}
