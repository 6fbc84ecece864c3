package config

import "time"

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"

	// DevelopmentTokenSignKey is the signing secret used when none is
	// configured. It must never be used in production.
	DevelopmentTokenSignKey = "super-secret"

	// MemoryDSN selects the in-process identity store.
	MemoryDSN = "memory"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:      DevelopmentEnvironment,
			LogLevel:         "debug",
			TokenSignKey:     DevelopmentTokenSignKey,
			TokenIssuer:      "sudoku-backend",
			TokenDuration:    15 * time.Minute,
			PasswordHashCost: 12,
			AdminUsername:    "admin",
			Version:          "1.0.0",
		},
		Storage: Storage{
			DB: DB{DSN: MemoryDSN},
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{
				"http://localhost:3000",
				"https://sudoku-webapp.vercel.app",
			},
		},
		Adapter: Adapter{
			CompletionURL:  "https://api.openai.com",
			Model:          "gpt-3.5-turbo",
			MaxTokens:      100,
			Temperature:    0.7,
			RequestTimeout: 20 * time.Second,
		},
		Workers: Workers{
			HealthCheckInterval: 15 * time.Second,
		},
	}
}
