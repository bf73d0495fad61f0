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

// DirectoryQuery holds the optional filters of a directory listing
type DirectoryQuery struct {
	Name           string
	DegreeID       int64
	YearGraduation int
	Location       string
}

// AlumniRepository handles alumni profile database operations
type AlumniRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db Querier) *AlumniRepository {
	return &AlumniRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AlumniRepository) WithTx(tx pgx.Tx) *AlumniRepository {
	return &AlumniRepository{db: tx, sb: r.sb}
}

// CreateAlumni inserts a profile row for a user. The alumni ID equals the
// owning user's ID.
func (r *AlumniRepository) CreateAlumni(ctx context.Context, alumni *models.Alumni) error {
	sql, args, err := r.sb.Insert("alumni").
		Columns("id", "first_name", "middle_name", "last_name", "birth_date",
			"year_batch", "year_graduation", "degree_id", "location").
		Values(alumni.ID, alumni.FirstName, alumni.MiddleName, alumni.LastName, alumni.BirthDate,
			alumni.YearBatch, alumni.YearGraduation, alumni.DegreeID, alumni.Location).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create alumni SQL")
		return fmt.Errorf("failed to build create alumni query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrDegreeNotFound
		}
		logger.Error().Err(err).Int64("alumniID", alumni.ID).Msg("Error executing create alumni query")
		return fmt.Errorf("error creating alumni: %w", err)
	}

	return nil
}

var alumniColumns = []string{
	"a.id", "a.first_name", "a.middle_name", "a.last_name", "a.birth_date",
	"a.year_batch", "a.year_graduation", "a.degree_id", "a.profile_description",
	"a.location", "a.profile_picture", "a.created_at", "a.updated_at",
}

func scanAlumni(row pgx.Row) (*models.Alumni, error) {
	alumni := &models.Alumni{}
	err := row.Scan(
		&alumni.ID, &alumni.FirstName, &alumni.MiddleName, &alumni.LastName, &alumni.BirthDate,
		&alumni.YearBatch, &alumni.YearGraduation, &alumni.DegreeID, &alumni.ProfileDescription,
		&alumni.Location, &alumni.ProfilePicture, &alumni.CreatedAt, &alumni.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alumni, nil
}

// GetAlumniByID retrieves one profile by ID
func (r *AlumniRepository) GetAlumniByID(ctx context.Context, id int64) (*models.Alumni, error) {
	sql, args, err := r.sb.Select(alumniColumns...).
		From("alumni a").
		Where(squirrel.Eq{"a.id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get alumni SQL")
		return nil, fmt.Errorf("failed to build get alumni query: %w", err)
	}

	alumni, err := scanAlumni(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumniNotFound
		}
		logger.Error().Err(err).Int64("alumniID", id).Msg("Error scanning alumni row")
		return nil, fmt.Errorf("error getting alumni by ID: %w", err)
	}

	return alumni, nil
}

// UpdateFields applies a partial update to a profile. Callers may map a
// column to nil to clear it.
func (r *AlumniRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("alumni").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update alumni SQL")
		return fmt.Errorf("failed to build update alumni query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrDegreeNotFound
		}
		logger.Error().Err(err).Int64("alumniID", id).Msg("Error executing update alumni query")
		return fmt.Errorf("error updating alumni: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAlumniNotFound
	}

	return nil
}

// UpdateProfilePicture points the profile at a new picture URL
func (r *AlumniRepository) UpdateProfilePicture(ctx context.Context, id int64, url string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"profile_picture": url})
}

// ListDirectory retrieves a page of profiles matching the filters, together
// with the total match count.
func (r *AlumniRepository) ListDirectory(ctx context.Context, query DirectoryQuery, offset, limit int) ([]*models.Alumni, int, error) {
	pred := r.directoryPredicate(query)

	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("alumni a").
		Where(pred).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building directory count SQL")
		return nil, 0, fmt.Errorf("failed to build directory count query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting directory rows")
		return nil, 0, fmt.Errorf("error counting directory entries: %w", err)
	}

	columns := append([]string{}, alumniColumns...)
	columns = append(columns, "d.id", "d.name")

	sql, args, err := r.sb.Select(columns...).
		From("alumni a").
		LeftJoin("degrees d ON d.id = a.degree_id").
		Where(pred).
		OrderBy("a.last_name ASC", "a.first_name ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building directory SQL")
		return nil, 0, fmt.Errorf("failed to build directory query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing directory query")
		return nil, 0, fmt.Errorf("error querying directory: %w", err)
	}
	defer rows.Close()

	entries := []*models.Alumni{}
	for rows.Next() {
		alumni := &models.Alumni{}
		var degreeID *int64
		var degreeName *string
		err := rows.Scan(
			&alumni.ID, &alumni.FirstName, &alumni.MiddleName, &alumni.LastName, &alumni.BirthDate,
			&alumni.YearBatch, &alumni.YearGraduation, &alumni.DegreeID, &alumni.ProfileDescription,
			&alumni.Location, &alumni.ProfilePicture, &alumni.CreatedAt, &alumni.UpdatedAt,
			&degreeID, &degreeName,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning directory row")
			return nil, 0, fmt.Errorf("error scanning directory row: %w", err)
		}
		if degreeID != nil && degreeName != nil {
			alumni.Degree = &models.Degree{ID: *degreeID, Name: *degreeName}
		}
		entries = append(entries, alumni)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating directory rows")
		return nil, 0, fmt.Errorf("error iterating directory rows: %w", err)
	}

	return entries, total, nil
}

func (r *AlumniRepository) directoryPredicate(query DirectoryQuery) squirrel.And {
	pred := squirrel.And{}

	if query.Name != "" {
		pattern := "%" + query.Name + "%"
		pred = append(pred, squirrel.Or{
			squirrel.ILike{"a.first_name": pattern},
			squirrel.ILike{"a.last_name": pattern},
		})
	}
	if query.DegreeID > 0 {
		pred = append(pred, squirrel.Eq{"a.degree_id": query.DegreeID})
	}
	if query.YearGraduation > 0 {
		pred = append(pred, squirrel.Eq{"a.year_graduation": query.YearGraduation})
	}
	if query.Location != "" {
		pred = append(pred, squirrel.ILike{"a.location": "%" + query.Location + "%"})
	}

	if len(pred) == 0 {
		// Squirrel renders an empty And as "(1=1)" only with at least one
		// element, so give it a trivially true predicate.
		pred = append(pred, squirrel.Expr("TRUE"))
	}

	return pred
}
