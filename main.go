package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"esthecrm-backend/config"
	"esthecrm-backend/routes"
	"esthecrm-backend/services"
	"esthecrm-backend/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	log.Printf("Record store backend: %s", cfg.StoreBackend)

	if cfg.RemindersEnabled {
		reminders := services.NewReminderService(st,
			cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
		reminders.StartScheduler()
	}

	r := routes.SetupRouter(st, cfg.AllowedOrigins)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "postgres":
		db, err := config.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		gs := store.NewGormStore(db)
		if err := gs.Migrate(); err != nil {
			return nil, err
		}
		return gs, nil
	case "csv":
		return store.OpenCSV(cfg.DataDir)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
