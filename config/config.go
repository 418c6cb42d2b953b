package config

import "os"

// Config struct holds application configuration.
// The company and table names are passed into the sales store at
// construction instead of being read from package globals.
type Config struct {
	DatabaseURL string
	Port        string
	Company     string
	SalesTable  string
}

// Load reads the configuration from environment variables, applying the
// defaults the service ships with.
func Load() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		Company:     os.Getenv("COMPANY"),
		SalesTable:  os.Getenv("SALES_TABLE"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.Company == "" {
		cfg.Company = "PRATICMIX"
	}
	if cfg.SalesTable == "" {
		cfg.SalesTable = "vendas_itens_importados"
	}
	return cfg
}
