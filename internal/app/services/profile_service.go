package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/app/models"
	"github.com/alumlink/portal/internal/app/models/dto"
	"github.com/alumlink/portal/internal/app/profile"
	"github.com/alumlink/portal/internal/app/repositories"
	"github.com/alumlink/portal/internal/pkg/apperrors"
	"github.com/alumlink/portal/internal/pkg/filestorage"
	"github.com/alumlink/portal/internal/pkg/validation"
)

// ProfileService exposes the profile surface: snapshot assembly, profile
// editing with picture replacement, social links and work history.
type ProfileService struct {
	userRepo       *repositories.UserRepository
	alumniRepo     *repositories.AlumniRepository
	degreeRepo     *repositories.DegreeRepository
	socialRepo     *repositories.ContactSocialRepository
	employmentRepo *repositories.EmploymentRepository
	editor         *profile.Editor
	logger         zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(repos *repositories.Repositories, store filestorage.Store, logger zerolog.Logger) *ProfileService {
	pictures := profile.NewPictureCoordinator(store, repos.AlumniRepository, logger)
	editor := profile.NewEditor(pictures, repos.AlumniRepository, logger)

	return &ProfileService{
		userRepo:       repos.UserRepository,
		alumniRepo:     repos.AlumniRepository,
		degreeRepo:     repos.DegreeRepository,
		socialRepo:     repos.ContactSocialRepository,
		employmentRepo: repos.EmploymentRepository,
		editor:         editor,
		logger:         logger,
	}
}

// snapshotSources adapts the repositories to the aggregator's read
// contract for one session.
type snapshotSources struct {
	svc    *ProfileService
	userID int64
}

func (s snapshotSources) CurrentIdentity(ctx context.Context) (*models.User, error) {
	user, err := s.svc.userRepo.GetUserByID(ctx, s.userID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, nil
	}
	return user, err
}

func (s snapshotSources) AlumniByID(ctx context.Context, id int64) (*models.Alumni, error) {
	return s.svc.alumniRepo.GetAlumniByID(ctx, id)
}

func (s snapshotSources) DegreeByID(ctx context.Context, id int64) (*models.Degree, error) {
	return s.svc.degreeRepo.GetDegreeByID(ctx, id)
}

func (s snapshotSources) SocialsByAlumniID(ctx context.Context, alumniID int64) ([]*models.ContactSocial, error) {
	return s.svc.socialRepo.ListByAlumniID(ctx, alumniID)
}

func (s snapshotSources) EmploymentByAlumniID(ctx context.Context, alumniID int64) ([]*models.EmploymentEntry, error) {
	return s.svc.employmentRepo.ListByAlumniID(ctx, alumniID)
}

// LoadSnapshot assembles the full profile snapshot for a session
func (s *ProfileService) LoadSnapshot(ctx context.Context, userID int64) profile.Snapshot {
	aggregator := profile.NewAggregator(snapshotSources{svc: s, userID: userID})
	return aggregator.Load(ctx)
}

// GetProfile returns the alumnus profile with its degree and account
// email attached.
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*dto.AlumniProfile, error) {
	snap := s.LoadSnapshot(ctx, userID)

	if snap.Identity.State == profile.FetchFailed {
		return nil, snap.Identity.Err
	}
	if snap.Identity.Value == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if snap.Alumni.State == profile.FetchFailed {
		return nil, snap.Alumni.Err
	}

	alumni := snap.Alumni.Value
	if snap.Degree.State == profile.FetchLoaded {
		alumni.Degree = snap.Degree.Value
	}

	return dto.FromAlumni(alumni, snap.Identity.Value.Email), nil
}

// UpdateProfile applies a profile edit. When a picture is staged, the
// previous picture address is captured from the stored record first so
// the upload pipeline can clean it up after the new address commits.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, draft profile.EditDraft) (profile.SaveOutcome, *dto.AlumniProfile, error) {
	if draft.Picture != nil {
		current, err := s.alumniRepo.GetAlumniByID(ctx, userID)
		if err != nil {
			return profile.SaveOutcome{}, nil, err
		}
		if current.ProfilePicture != nil {
			draft.Picture.PreviousURL = *current.ProfilePicture
		}
	}

	outcome, err := s.editor.Save(ctx, userID, draft)
	if err != nil {
		return outcome, nil, err
	}

	updated, err := s.GetProfile(ctx, userID)
	if err != nil {
		return outcome, nil, err
	}

	return outcome, updated, nil
}

// GetSocials lists the social links of an alumnus
func (s *ProfileService) GetSocials(ctx context.Context, userID int64) ([]dto.ContactSocialResponse, error) {
	socials, err := s.socialRepo.ListByAlumniID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ContactSocialResponse, 0, len(socials))
	for _, social := range socials {
		responses = append(responses, dto.FromContactSocial(social))
	}
	return responses, nil
}

// AddSocial adds or replaces one social link
func (s *ProfileService) AddSocial(ctx context.Context, userID int64, req *dto.ContactSocialRequest) (*dto.ContactSocialResponse, error) {
	social := &models.ContactSocial{
		AlumniID: userID,
		Platform: req.Platform,
		URL:      req.URL,
	}

	if err := s.socialRepo.Upsert(ctx, social); err != nil {
		return nil, err
	}

	response := dto.FromContactSocial(social)
	return &response, nil
}

// DeleteSocial removes one social link owned by the session user
func (s *ProfileService) DeleteSocial(ctx context.Context, userID, socialID int64) error {
	return s.socialRepo.Delete(ctx, socialID, userID)
}

// ListEmployment lists the work history of an alumnus, most recent first
func (s *ProfileService) ListEmployment(ctx context.Context, userID int64) ([]dto.EmploymentResponse, error) {
	entries, err := s.employmentRepo.ListByAlumniID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EmploymentResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.FromEmployment(entry))
	}
	return responses, nil
}

// AddEmployment adds one work history entry
func (s *ProfileService) AddEmployment(ctx context.Context, userID int64, req *dto.EmploymentRequest) (*dto.EmploymentResponse, error) {
	startDate, err := validation.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Start date must be a valid date")
	}

	entry := &models.EmploymentEntry{
		AlumniID:    userID,
		Company:     req.Company,
		Position:    req.Position,
		Location:    req.Location,
		StartDate:   startDate,
		Description: req.Description,
	}

	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := validation.ParseDate(*req.EndDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("End date must be a valid date")
		}
		if endDate.Before(startDate) {
			return nil, apperrors.NewBadRequestError("End date cannot precede the start date")
		}
		entry.EndDate = &endDate
	}

	id, err := s.employmentRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	s.logger.Info().Int64("alumniID", userID).Int64("entryID", id).Msg("Employment entry added")

	response := dto.FromEmployment(entry)
	return &response, nil
}

// DeleteEmployment removes one work history entry owned by the session user
func (s *ProfileService) DeleteEmployment(ctx context.Context, userID, entryID int64) error {
	return s.employmentRepo.Delete(ctx, entryID, userID)
}
