package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/alumlink/portal/internal/app/models"
	"github.com/alumlink/portal/internal/app/repositories"
)

// defaultDegrees lists the degree reference data created on startup,
// keyed by category name. Inserts are idempotent upserts, so reruns
// are harmless.
var defaultDegrees = []struct {
	Category string
	Degrees  []string
}{
	{"Undergraduate", []string{
		"BSc Computer Science",
		"BSc Electrical Engineering",
		"BSc Mathematics",
		"BA Business Administration",
		"BA Economics",
	}},
	{"Graduate", []string{
		"MSc Computer Science",
		"MSc Data Science",
		"MBA",
		"MA Economics",
	}},
	{"Doctorate", []string{
		"PhD Computer Science",
		"PhD Mathematics",
	}},
}

// CreateDefaultData seeds the degree categories and degrees the sign-up
// form offers. Individual failures are collected and reported together
// so one bad row does not block the rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	degreeRepo := repositories.NewDegreeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default degree reference data...")
	var finalErr error

	for _, group := range defaultDegrees {
		categoryID, err := degreeRepo.CreateCategory(ctx, &models.DegreeCategory{Name: group.Category})
		if err != nil {
			lgr.Error().Err(err).Str("category", group.Category).Msg("Error creating degree category")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, degreeName := range group.Degrees {
			_, err := degreeRepo.CreateDegree(ctx, &models.Degree{Name: degreeName, CategoryID: categoryID})
			if err != nil {
				lgr.Error().Err(err).Str("degree", degreeName).Msg("Error creating degree")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default degree reference data ensured")
	}
	return finalErr
}
