package main

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sabbebasta/booking-platform/internal/auth"
	"github.com/sabbebasta/booking-platform/internal/config"
	"github.com/sabbebasta/booking-platform/internal/domain"
	"github.com/sabbebasta/booking-platform/internal/observability"
	"github.com/sabbebasta/booking-platform/internal/persistence"
	"github.com/sabbebasta/booking-platform/internal/repository"
)

// Seeds the admin account and a starter service catalog. Safe to run
// repeatedly: existing rows are left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to initialize postgres", zap.Error(err))
	}
	defer pg.Close()

	if !pg.IsAvailable(ctx) {
		logger.Fatal("database unreachable")
	}
	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	users := repository.NewUserRepository(pg.PoolHandle())
	services := repository.NewServiceRepository(pg.PoolHandle())

	if err := seedAdmin(ctx, cfg, users, logger); err != nil {
		logger.Fatal("failed to seed admin", zap.Error(err))
	}
	if err := seedServices(ctx, services, logger); err != nil {
		logger.Fatal("failed to seed services", zap.Error(err))
	}

	logger.Info("seeding complete")
}

func seedAdmin(ctx context.Context, cfg *config.Config, users repository.UserRepository, logger *zap.Logger) error {
	existing, err := users.GetByIdentifier(ctx, cfg.Seed.AdminUserName)
	if err == nil {
		logger.Info("admin account already present", zap.String("userName", existing.UserName))
		return nil
	}
	if err != pgx.ErrNoRows {
		return err
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		FirstName:    "Platform",
		LastName:     "Admin",
		UserName:     cfg.Seed.AdminUserName,
		Email:        cfg.Seed.AdminUserName + "@sabbebasta.local",
		Phone:        "0000000000",
		CountryCode:  "+1",
		PasswordHash: hash,
		Role:         domain.UserRoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("admin account created", zap.String("userName", admin.UserName))
	return nil
}

func seedServices(ctx context.Context, services repository.ServiceRepository, logger *zap.Logger) error {
	existing, err := services.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("service catalog already seeded", zap.Int("count", len(existing)))
		return nil
	}

	catalog := []domain.Service{
		{
			Title:       "Electric Crematorium Service",
			Description: "Complete electric crematorium service with modern facilities",
			Price:       15000,
			Duration:    "3-4 hours",
			Rating:      4.5,
			ServiceType: domain.ServiceTypeElectricCrematorium,
			Location: domain.Location{
				Latitude:  22.5726,
				Longitude: 88.3639,
				Address:   "Kolkata, West Bengal",
			},
			IsActive: true,
		},
		{
			Title:       "Traditional Fire Burning Service",
			Description: "Traditional cremation service with full ritual arrangements",
			Price:       10000,
			Duration:    "4-5 hours",
			Rating:      4.2,
			ServiceType: domain.ServiceTypeFireBurning,
			Location: domain.Location{
				Latitude:  22.5958,
				Longitude: 88.2636,
				Address:   "Howrah, West Bengal",
			},
			IsActive: true,
		},
		{
			Title:       "Burial Ground Service",
			Description: "Burial service with plot arrangement and documentation",
			Price:       8000,
			Duration:    "2-3 hours",
			Rating:      4.0,
			ServiceType: domain.ServiceTypeBurialSystems,
			Location: domain.Location{
				Latitude:  22.4707,
				Longitude: 88.3608,
				Address:   "South Kolkata, West Bengal",
			},
			IsActive: true,
		},
	}

	for i := range catalog {
		if err := services.Create(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	logger.Info("service catalog seeded", zap.Int("count", len(catalog)))
	return nil
}
