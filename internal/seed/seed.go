package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/mathspoint/mathspoint/internal/app/models"
	appRepos "github.com/mathspoint/mathspoint/internal/app/repositories"
)

// defaultAdminEmail is the address the center's own staff use. Admin records
// are otherwise created lazily at login; seeding one keeps the admin list
// from being empty on a fresh database.
const defaultAdminEmail = "admin@mathspoint.in"

// CreateDefaultData seeds the records a fresh deployment expects to find.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	announcementRepo := appRepos.NewAnnouncementRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	existing, err := adminRepo.GetByEmail(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin")
		finalErr = errors.Join(finalErr, err)
	} else if existing == nil {
		lgr.Info().Str("email", defaultAdminEmail).Msg("Creating default admin record...")
		firstName := "Admin"
		lastName := "User"
		admin := &appModels.Admin{
			Email:       defaultAdminEmail,
			Role:        appModels.AdminRoleAdmin,
			FirstName:   &firstName,
			LastName:    &lastName,
			Permissions: appModels.DefaultAdminPermissions,
		}
		adminID, err := adminRepo.Create(ctx, admin)
		if err != nil {
			lgr.Error().Err(err).Msg("Error creating default admin record")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int64("adminID", adminID).Msg("Default admin record created")
		}
	}

	announcements, err := announcementRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking announcements for seeding")
		finalErr = errors.Join(finalErr, err)
	} else if len(announcements) == 0 {
		lgr.Info().Msg("Seeding welcome announcement...")
		welcome := &appModels.Announcement{
			Title:    "Welcome to Maths Point Excellence Academy",
			Content:  "Join our comprehensive maths coaching for classes 9-12. Expert guidance, proven results.",
			Type:     appModels.AnnouncementImportant,
			Author:   "Maths Point",
			IsPinned: true,
			Tags:     []string{"welcome"},
		}
		if _, err := announcementRepo.Create(ctx, welcome); err != nil {
			lgr.Error().Err(err).Msg("Error seeding welcome announcement")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
