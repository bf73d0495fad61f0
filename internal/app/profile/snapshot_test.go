package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumlink/portal/internal/app/models"
)

// sourcesStub returns canned data and counts calls per entity
type sourcesStub struct {
	identity    *models.User
	identityErr error

	alumni    *models.Alumni
	alumniErr error

	degree    *models.Degree
	degreeErr error

	socials    []*models.ContactSocial
	socialsErr error

	employment    []*models.EmploymentEntry
	employmentErr error

	alumniCalls     int
	degreeCalls     int
	socialsCalls    int
	employmentCalls int
}

func (s *sourcesStub) CurrentIdentity(context.Context) (*models.User, error) {
	return s.identity, s.identityErr
}

func (s *sourcesStub) AlumniByID(context.Context, int64) (*models.Alumni, error) {
	s.alumniCalls++
	return s.alumni, s.alumniErr
}

func (s *sourcesStub) DegreeByID(context.Context, int64) (*models.Degree, error) {
	s.degreeCalls++
	return s.degree, s.degreeErr
}

func (s *sourcesStub) SocialsByAlumniID(context.Context, int64) ([]*models.ContactSocial, error) {
	s.socialsCalls++
	return s.socials, s.socialsErr
}

func (s *sourcesStub) EmploymentByAlumniID(context.Context, int64) ([]*models.EmploymentEntry, error) {
	s.employmentCalls++
	return s.employment, s.employmentErr
}

func fullSources() *sourcesStub {
	degreeID := int64(3)
	return &sourcesStub{
		identity:   &models.User{ID: 7, Email: "maria@example.com"},
		alumni:     &models.Alumni{ID: 7, FirstName: "Maria", LastName: "Santos", DegreeID: &degreeID},
		degree:     &models.Degree{ID: 3, Name: "MSc Computer Science"},
		socials:    []*models.ContactSocial{{ID: 1, AlumniID: 7, Platform: "linkedin"}},
		employment: []*models.EmploymentEntry{{ID: 1, AlumniID: 7, Company: "Acme"}},
	}
}

func TestAggregatorLoadFullChain(t *testing.T) {
	sources := fullSources()
	agg := NewAggregator(sources)

	snap := agg.Load(context.Background())

	assert.Equal(t, FetchLoaded, snap.Identity.State)
	assert.Equal(t, FetchLoaded, snap.Alumni.State)
	assert.Equal(t, FetchLoaded, snap.Degree.State)
	assert.Equal(t, FetchLoaded, snap.Socials.State)
	assert.Equal(t, FetchLoaded, snap.Employment.State)

	assert.Equal(t, "Maria", snap.Alumni.Value.FirstName)
	assert.Equal(t, "MSc Computer Science", snap.Degree.Value.Name)
	assert.Len(t, snap.Socials.Value, 1)
	assert.Len(t, snap.Employment.Value, 1)

	// Snapshot() returns what Load stored.
	assert.Equal(t, snap, agg.Snapshot())
}

func TestAggregatorLoadUnauthenticated(t *testing.T) {
	sources := &sourcesStub{} // identity (nil, nil)
	agg := NewAggregator(sources)

	snap := agg.Load(context.Background())

	assert.Equal(t, FetchLoaded, snap.Identity.State)
	assert.Nil(t, snap.Identity.Value)

	// Nothing downstream is attempted without a session.
	assert.Equal(t, FetchNotAttempted, snap.Alumni.State)
	assert.Equal(t, FetchNotAttempted, snap.Degree.State)
	assert.Equal(t, FetchNotAttempted, snap.Socials.State)
	assert.Equal(t, FetchNotAttempted, snap.Employment.State)
	assert.Zero(t, sources.alumniCalls)
	assert.Zero(t, sources.socialsCalls)
	assert.Zero(t, sources.employmentCalls)
}

func TestAggregatorLoadIdentityFailure(t *testing.T) {
	sources := fullSources()
	sources.identityErr = errors.New("token store down")
	agg := NewAggregator(sources)

	snap := agg.Load(context.Background())

	assert.Equal(t, FetchFailed, snap.Identity.State)
	assert.Error(t, snap.Identity.Err)
	assert.Equal(t, FetchNotAttempted, snap.Alumni.State)
	assert.Zero(t, sources.alumniCalls)
}

func TestAggregatorLoadAlumniFailure(t *testing.T) {
	sources := fullSources()
	sources.alumniErr = errors.New("db down")
	agg := NewAggregator(sources)

	snap := agg.Load(context.Background())

	assert.Equal(t, FetchLoaded, snap.Identity.State)
	assert.Equal(t, FetchFailed, snap.Alumni.State)
	assert.Equal(t, FetchNotAttempted, snap.Degree.State)
	assert.Equal(t, FetchNotAttempted, snap.Socials.State)
	assert.Equal(t, FetchNotAttempted, snap.Employment.State)
	assert.Zero(t, sources.degreeCalls)
	assert.Zero(t, sources.socialsCalls)
}

func TestAggregatorLoadWithoutDegreeReference(t *testing.T) {
	sources := fullSources()
	sources.alumni.DegreeID = nil
	agg := NewAggregator(sources)

	snap := agg.Load(context.Background())

	// Absence of a degree reference is a valid state, not a failure.
	assert.Equal(t, FetchNotAttempted, snap.Degree.State)
	assert.Nil(t, snap.Degree.Err)
	assert.Zero(t, sources.degreeCalls)

	// Siblings are unaffected.
	assert.Equal(t, FetchLoaded, snap.Socials.State)
	assert.Equal(t, FetchLoaded, snap.Employment.State)
}

func TestAggregatorLoadSiblingFailuresAreIndependent(t *testing.T) {
	sources := fullSources()
	sources.socialsErr = errors.New("socials query failed")
	agg := NewAggregator(sources)

	snap := agg.Load(context.Background())

	assert.Equal(t, FetchFailed, snap.Socials.State)
	assert.Equal(t, FetchLoaded, snap.Employment.State)
	assert.Len(t, snap.Employment.Value, 1)
}

func TestAggregatorRefreshAlumni(t *testing.T) {
	sources := fullSources()
	agg := NewAggregator(sources)
	require.Equal(t, FetchLoaded, agg.Load(context.Background()).Alumni.State)

	socialsBefore := sources.socialsCalls
	employmentBefore := sources.employmentCalls

	sources.alumni = &models.Alumni{ID: 7, FirstName: "Renamed", LastName: "Santos"}
	snap := agg.RefreshAlumni(context.Background())

	assert.Equal(t, "Renamed", snap.Alumni.Value.FirstName)
	// The dropped degree reference resets the degree entity.
	assert.Equal(t, FetchNotAttempted, snap.Degree.State)

	// Siblings were not refetched.
	assert.Equal(t, socialsBefore, sources.socialsCalls)
	assert.Equal(t, employmentBefore, sources.employmentCalls)
}

func TestAggregatorRefreshAlumniWithoutIdentity(t *testing.T) {
	sources := fullSources()
	agg := NewAggregator(sources)

	// Never loaded; refresh has no identity to work from.
	snap := agg.RefreshAlumni(context.Background())

	assert.Equal(t, FetchNotAttempted, snap.Alumni.State)
	assert.Zero(t, sources.alumniCalls)
}

func TestAggregatorRefreshEmployment(t *testing.T) {
	sources := fullSources()
	agg := NewAggregator(sources)
	require.Equal(t, FetchLoaded, agg.Load(context.Background()).Employment.State)

	alumniBefore := sources.alumniCalls

	sources.employment = append(sources.employment, &models.EmploymentEntry{ID: 2, AlumniID: 7, Company: "Globex"})
	snap := agg.RefreshEmployment(context.Background())

	assert.Equal(t, FetchLoaded, snap.Employment.State)
	assert.Len(t, snap.Employment.Value, 2)

	// Only employment was refetched.
	assert.Equal(t, alumniBefore, sources.alumniCalls)
	assert.Equal(t, FetchLoaded, snap.Alumni.State)
}

func TestFetchStateString(t *testing.T) {
	assert.Equal(t, "NotAttempted", FetchNotAttempted.String())
	assert.Equal(t, "Loading", FetchLoading.String())
	assert.Equal(t, "Loaded", FetchLoaded.String())
	assert.Equal(t, "Failed", FetchFailed.String())
}
