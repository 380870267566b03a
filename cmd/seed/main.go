package main

import (
	"context"
	"log"

	"spendsense/internal/models"
	"spendsense/internal/repository"
	"spendsense/pkg/config"
	"spendsense/pkg/logger"
	"spendsense/pkg/postgres"

	"go.uber.org/zap"
)

// defaultCategories is the fixed set seeded once per database. The
// get-or-create upsert keeps repeated runs idempotent.
var defaultCategories = []struct {
	name string
	typ  models.FlowType
}{
	// Income
	{"Salary", models.FlowIncome},
	{"Freelance", models.FlowIncome},
	{"Investments", models.FlowIncome},
	{"Refunds", models.FlowIncome},
	{"Rental Income", models.FlowIncome},
	{"Dividends", models.FlowIncome},
	{"Gifts Received", models.FlowIncome},
	{"Side Hustle", models.FlowIncome},
	{"Other Income", models.FlowIncome},

	// Housing & utilities
	{"Rent", models.FlowExpense},
	{"Mortgage", models.FlowExpense},
	{"Utilities", models.FlowExpense},
	{"Internet & Cable", models.FlowExpense},
	{"Home Maintenance", models.FlowExpense},

	// Food & dining
	{"Groceries", models.FlowExpense},
	{"Dining Out", models.FlowExpense},
	{"Coffee & Snacks", models.FlowExpense},
	{"Alcohol & Bars", models.FlowExpense},

	// Transportation
	{"Public Transport", models.FlowExpense},
	{"Fuel", models.FlowExpense},
	{"Car Maintenance", models.FlowExpense},
	{"Ride Sharing", models.FlowExpense},
	{"Car Payment", models.FlowExpense},
	{"Travel & Flights", models.FlowExpense},

	// Health & wellness
	{"Healthcare", models.FlowExpense},
	{"Pharmacy", models.FlowExpense},
	{"Gym & Fitness", models.FlowExpense},
	{"Personal Care", models.FlowExpense},
	{"Pets", models.FlowExpense},

	// Lifestyle & entertainment
	{"Entertainment", models.FlowExpense},
	{"Shopping", models.FlowExpense},
	{"Subscriptions", models.FlowExpense},
	{"Hobbies", models.FlowExpense},
	{"Beauty", models.FlowExpense},

	// Financial obligations
	{"Debt Repayment", models.FlowExpense},
	{"Insurance", models.FlowExpense},
	{"Taxes", models.FlowExpense},
	{"Bank Fees", models.FlowExpense},
	{"Charity & Donations", models.FlowExpense},

	// Miscellaneous
	{"Education", models.FlowExpense},
	{"Gifts Given", models.FlowExpense},
	{"Childcare", models.FlowExpense},
	{"General", models.FlowExpense},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	appLogger.Info("Seeding default categories")

	for _, c := range defaultCategories {
		if _, err := categoryRepo.GetOrCreate(ctx, c.name, c.typ); err != nil {
			appLogger.Fatal("Failed to seed category",
				zap.String("name", c.name),
				zap.Error(err),
			)
		}
	}

	appLogger.Info("Seeding completed", zap.Int("categories", len(defaultCategories)))
}
