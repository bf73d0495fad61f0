// Package profile implements the profile surface of the portal: a
// dependency-ordered aggregator that assembles a per-user snapshot, an
// upload coordinator that never orphans the profile picture reference,
// and an editor that applies partial profile updates.
package profile

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/alumlink/portal/internal/app/models"
)

// FetchState tracks one entity of the snapshot through its lifecycle.
// NotAttempted is distinct from Loading and Failed so a consumer never
// confuses "waiting on a dependency" with "request failed".
type FetchState int

const (
	FetchNotAttempted FetchState = iota
	FetchLoading
	FetchLoaded
	FetchFailed
)

// String returns the state name
func (s FetchState) String() string {
	switch s {
	case FetchNotAttempted:
		return "NotAttempted"
	case FetchLoading:
		return "Loading"
	case FetchLoaded:
		return "Loaded"
	case FetchFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Entity couples a fetched value with its fetch state and error
type Entity[T any] struct {
	State FetchState
	Value T
	Err   error
}

func loaded[T any](value T) Entity[T] {
	return Entity[T]{State: FetchLoaded, Value: value}
}

func failed[T any](err error) Entity[T] {
	return Entity[T]{State: FetchFailed, Err: err}
}

// Snapshot is a consistent read-only view of everything the profile
// surface shows for one user.
type Snapshot struct {
	Identity   Entity[*models.User]
	Alumni     Entity[*models.Alumni]
	Degree     Entity[*models.Degree]
	Socials    Entity[[]*models.ContactSocial]
	Employment Entity[[]*models.EmploymentEntry]
}

// Sources supplies the reads the aggregator composes. CurrentIdentity
// returns (nil, nil) for an unauthenticated session.
type Sources interface {
	CurrentIdentity(ctx context.Context) (*models.User, error)
	AlumniByID(ctx context.Context, id int64) (*models.Alumni, error)
	DegreeByID(ctx context.Context, id int64) (*models.Degree, error)
	SocialsByAlumniID(ctx context.Context, alumniID int64) ([]*models.ContactSocial, error)
	EmploymentByAlumniID(ctx context.Context, alumniID int64) ([]*models.EmploymentEntry, error)
}

// Aggregator builds and refreshes snapshots. Fetch ordering: identity
// first, then the alumni record, then degree, socials and employment.
// Degree is gated on the alumni record carrying a degree reference;
// socials and employment are gated on the alumni record existing and run
// concurrently, independent of each other.
type Aggregator struct {
	sources Sources

	mu   sync.Mutex
	snap Snapshot
}

// NewAggregator creates an Aggregator
func NewAggregator(sources Sources) *Aggregator {
	return &Aggregator{sources: sources}
}

// Snapshot returns the current snapshot
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snap
}

// Load assembles a fresh snapshot. Entities whose prerequisite never
// resolved are left in the NotAttempted state.
func (a *Aggregator) Load(ctx context.Context) Snapshot {
	snap := Snapshot{}

	snap.Identity.State = FetchLoading
	identity, err := a.sources.CurrentIdentity(ctx)
	if err != nil {
		snap.Identity = failed[*models.User](err)
		return a.store(snap)
	}
	snap.Identity = loaded(identity)

	if identity == nil {
		// No session; every dependent fetch stays unattempted.
		return a.store(snap)
	}

	snap.Alumni.State = FetchLoading
	alumni, err := a.sources.AlumniByID(ctx, identity.ID)
	if err != nil {
		snap.Alumni = failed[*models.Alumni](err)
		return a.store(snap)
	}
	snap.Alumni = loaded(alumni)

	snap.Degree = a.loadDegree(ctx, alumni)

	// Socials and employment only need the alumni ID and do not depend
	// on each other.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		socials, err := a.sources.SocialsByAlumniID(gctx, alumni.ID)
		if err != nil {
			snap.Socials = failed[[]*models.ContactSocial](err)
			return nil
		}
		snap.Socials = loaded(socials)
		return nil
	})
	g.Go(func() error {
		entries, err := a.sources.EmploymentByAlumniID(gctx, alumni.ID)
		if err != nil {
			snap.Employment = failed[[]*models.EmploymentEntry](err)
			return nil
		}
		snap.Employment = loaded(entries)
		return nil
	})
	_ = g.Wait()

	return a.store(snap)
}

// RefreshAlumni refetches the alumni record and its dependent degree
// after a profile mutation. Socials and employment are left untouched.
func (a *Aggregator) RefreshAlumni(ctx context.Context) Snapshot {
	a.mu.Lock()
	snap := a.snap
	a.mu.Unlock()

	if snap.Identity.State != FetchLoaded || snap.Identity.Value == nil {
		return snap
	}

	alumni, err := a.sources.AlumniByID(ctx, snap.Identity.Value.ID)
	if err != nil {
		snap.Alumni = failed[*models.Alumni](err)
		return a.store(snap)
	}
	snap.Alumni = loaded(alumni)
	snap.Degree = a.loadDegree(ctx, alumni)

	return a.store(snap)
}

// RefreshEmployment refetches only the employment history, used after an
// add-entry mutation.
func (a *Aggregator) RefreshEmployment(ctx context.Context) Snapshot {
	a.mu.Lock()
	snap := a.snap
	a.mu.Unlock()

	if snap.Alumni.State != FetchLoaded || snap.Alumni.Value == nil {
		return snap
	}

	entries, err := a.sources.EmploymentByAlumniID(ctx, snap.Alumni.Value.ID)
	if err != nil {
		snap.Employment = failed[[]*models.EmploymentEntry](err)
		return a.store(snap)
	}
	snap.Employment = loaded(entries)

	return a.store(snap)
}

func (a *Aggregator) loadDegree(ctx context.Context, alumni *models.Alumni) Entity[*models.Degree] {
	if alumni == nil || alumni.DegreeID == nil {
		// No degree reference; absence is a valid state, not an error.
		return Entity[*models.Degree]{}
	}

	degree, err := a.sources.DegreeByID(ctx, *alumni.DegreeID)
	if err != nil {
		return failed[*models.Degree](err)
	}
	return loaded(degree)
}

func (a *Aggregator) store(snap Snapshot) Snapshot {
	a.mu.Lock()
	a.snap = snap
	a.mu.Unlock()
	return snap
}
