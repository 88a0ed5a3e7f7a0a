package main

import (
	"context"
	"log"
	"time"

	"windfit/adapters/postgres"
	"windfit/app"
	"windfit/internal"
	"windfit/internal/analysis"
	"windfit/internal/config"
	"windfit/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	gin.SetMode(cfg.Server.GinMode)

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	repo := postgres.NewAssessmentRepository(db)
	energy := analysis.NewEnergyCalculator(cfg.Energy.AirDensity, cfg.Energy.NominalSpeed, nil)

	service := app.NewAssessmentService(repo, energy, app.Options{
		DefaultStrategy:  cfg.Analysis.Strategy,
		MLETolerance:     cfg.Analysis.MLETolerance,
		MLEMaxIterations: cfg.Analysis.MLEMaxIterations,
		MaxConcurrent:    int64(cfg.Analysis.MaxConcurrentAssessments),
		Logger:           logger,
	})

	server := ui.NewServer(service, logger)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
