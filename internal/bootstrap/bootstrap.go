// Package bootstrap prepares the store on startup: schema migration
// and first-run seeding.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CodeSmart-NG/school-service/internal/admin"
	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every managed entity.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Course{},
		&models.Student{},
		&models.Newsletter{},
		&models.Testimonial{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedSuperadmin creates the root admin credential on a fresh install.
// It only runs when the users table is empty, so rotating the
// environment values later never clobbers existing accounts.
func SeedSuperadmin(ctx context.Context, repo repositories.Repository, email, password string, logger *slog.Logger) error {
	count, err := repo.User().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if password == "" {
		return fmt.Errorf("SUPERADMIN_PASSWORD is required on first run")
	}

	hash, err := admin.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:     "Superadmin",
		Email:    email,
		Password: hash,
		Role:     models.RoleSuperadmin,
	}
	if err := repo.User().Create(ctx, user); err != nil {
		return fmt.Errorf("failed to seed superadmin: %w", err)
	}

	logger.Info("Seeded superadmin account", "email", email)
	return nil
}

// SeedCatalog inserts the starter course on a fresh install so the
// marketing pages have content before the first admin login.
func SeedCatalog(ctx context.Context, repo repositories.Repository, logger *slog.Logger) error {
	_, total, err := repo.Course().List(ctx, repositories.CourseFilters{})
	if err != nil {
		return fmt.Errorf("failed to inspect catalog: %w", err)
	}
	if total > 0 {
		return nil
	}

	course := &models.Course{
		Name:          "Frontend Development",
		Category:      "frontend",
		Duration:      "3 Months",
		Fee:           50000,
		Language:      "both",
		Status:        models.CourseActive,
		Description:   "Learn HTML, CSS, JavaScript and React",
		Learn:         datatypes.NewJSONSlice([]string{"HTML5", "CSS3", "JavaScript", "React", "Responsive Design"}),
		Prerequisites: datatypes.NewJSONSlice([]string{"Basic computer knowledge"}),
	}
	if err := repo.Course().Create(ctx, course); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	logger.Info("Seeded starter course", "course", course.Name)
	return nil
}
