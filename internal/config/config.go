package config

import (
	"fmt"
	"os"
	"strconv"

	"windfit/domain/wind"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
	Energy   EnergyConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// AnalysisConfig holds estimation settings
type AnalysisConfig struct {
	// Strategy is the default estimator: wind.StrategyMoment or wind.StrategyMLE
	Strategy         string
	MLETolerance     float64
	MLEMaxIterations int
	// MaxConcurrentAssessments bounds batch fan-out
	MaxConcurrentAssessments int
}

// EnergyConfig holds the physical constants of the energy calculator
type EnergyConfig struct {
	AirDensity   float64
	NominalSpeed float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Analysis: AnalysisConfig{
			Strategy:                 getEnvOrDefault("ESTIMATION_STRATEGY", wind.StrategyMoment),
			MLETolerance:             getEnvFloatOrDefault("MLE_TOLERANCE", 1e-6),
			MLEMaxIterations:         getEnvIntOrDefault("MLE_MAX_ITERATIONS", 100),
			MaxConcurrentAssessments: getEnvIntOrDefault("MAX_CONCURRENT_ASSESSMENTS", 4),
		},
		Energy: EnergyConfig{
			AirDensity:   getEnvFloatOrDefault("AIR_DENSITY", 1.225),
			NominalSpeed: getEnvFloatOrDefault("NOMINAL_SPEED", 12.0),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.Analysis.Strategy != wind.StrategyMoment && config.Analysis.Strategy != wind.StrategyMLE {
		return fmt.Errorf("ESTIMATION_STRATEGY must be %q or %q, got %q",
			wind.StrategyMoment, wind.StrategyMLE, config.Analysis.Strategy)
	}
	if config.Analysis.MLETolerance <= 0 {
		return fmt.Errorf("MLE_TOLERANCE must be positive")
	}
	if config.Analysis.MLEMaxIterations <= 0 {
		return fmt.Errorf("MLE_MAX_ITERATIONS must be positive")
	}
	if config.Analysis.MaxConcurrentAssessments <= 0 {
		return fmt.Errorf("MAX_CONCURRENT_ASSESSMENTS must be positive")
	}
	if config.Energy.AirDensity <= 0 {
		return fmt.Errorf("AIR_DENSITY must be positive")
	}
	if config.Energy.NominalSpeed <= 0 {
		return fmt.Errorf("NOMINAL_SPEED must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
