package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the query surface shared by *pgxpool.Pool and pgx.Tx. It lets
// a repository run either on the pool or inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	TokenRepository         *TokenRepository
	AlumniRepository        *AlumniRepository
	DegreeRepository        *DegreeRepository
	ContactSocialRepository *ContactSocialRepository
	EmploymentRepository    *EmploymentRepository
	AnnouncementRepository  *AnnouncementRepository
	EventRepository         *EventRepository
	CampaignRepository      *CampaignRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		TokenRepository:         NewTokenRepository(db),
		AlumniRepository:        NewAlumniRepository(db),
		DegreeRepository:        NewDegreeRepository(db),
		ContactSocialRepository: NewContactSocialRepository(db),
		EmploymentRepository:    NewEmploymentRepository(db),
		AnnouncementRepository:  NewAnnouncementRepository(db),
		EventRepository:         NewEventRepository(db),
		CampaignRepository:      NewCampaignRepository(db),
	}
}
