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

// CampaignRepository handles fundraising campaign database operations
type CampaignRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db Querier) *CampaignRepository {
	return &CampaignRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var campaignColumns = []string{
	"id", "title", "description", "cover_image", "goal_amount",
	"raised_amount", "deadline", "created_by", "created_at", "updated_at",
}

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	c := &models.Campaign{}
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.CoverImage, &c.GoalAmount,
		&c.RaisedAmount, &c.Deadline, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves a page of campaigns, newest first, with the total count
func (r *CampaignRepository) List(ctx context.Context, offset, limit int) ([]*models.Campaign, int, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("campaigns").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building campaign count SQL")
		return nil, 0, fmt.Errorf("failed to build campaign count query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting campaigns")
		return nil, 0, fmt.Errorf("error counting campaigns: %w", err)
	}

	sql, args, err := r.sb.Select(campaignColumns...).
		From("campaigns").
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list campaigns SQL")
		return nil, 0, fmt.Errorf("failed to build list campaigns query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list campaigns query")
		return nil, 0, fmt.Errorf("error querying campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*models.Campaign{}
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning campaign row")
			return nil, 0, fmt.Errorf("error scanning campaign row: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating campaign rows")
		return nil, 0, fmt.Errorf("error iterating campaign rows: %w", err)
	}

	return campaigns, total, nil
}

// GetByID retrieves one campaign
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	sql, args, err := r.sb.Select(campaignColumns...).
		From("campaigns").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get campaign SQL")
		return nil, fmt.Errorf("failed to build get campaign query: %w", err)
	}

	campaign, err := scanCampaign(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("campaignID", id).Msg("Error scanning campaign row")
		return nil, fmt.Errorf("error getting campaign by ID: %w", err)
	}

	return campaign, nil
}

// Create inserts a new campaign and returns its ID
func (r *CampaignRepository) Create(ctx context.Context, c *models.Campaign) (int64, error) {
	sql, args, err := r.sb.Insert("campaigns").
		Columns("title", "description", "cover_image", "goal_amount", "raised_amount", "deadline", "created_by").
		Values(c.Title, c.Description, c.CoverImage, c.GoalAmount, c.RaisedAmount, c.Deadline, c.CreatedBy).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create campaign SQL")
		return 0, fmt.Errorf("failed to build create campaign query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create campaign query")
		return 0, fmt.Errorf("error creating campaign: %w", err)
	}

	return id, nil
}
