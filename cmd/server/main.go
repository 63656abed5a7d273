package main

import (
	"log"
	"net/http"

	"github.com/skesea-spec/shift-check-server/internal/config"
	"github.com/skesea-spec/shift-check-server/internal/controllers"
	"github.com/skesea-spec/shift-check-server/internal/logger"
	"github.com/skesea-spec/shift-check-server/internal/middleware"
	"github.com/skesea-spec/shift-check-server/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Connect to the database and bring the schema up to date
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	sessions := middleware.NewSessionAuth(cfg.SessionSecret)

	r := routes.SetupRouter(&routes.Deps{
		Auth:     &controllers.AuthController{DB: db, Sessions: sessions},
		Worker:   &controllers.WorkerController{DB: db, Sessions: sessions},
		Owner:    &controllers.OwnerController{DB: db, Sessions: sessions},
		Shift:    &controllers.ShiftController{DB: db, Sessions: sessions},
		Sessions: sessions,
	})
	r.LoadHTMLGlob("templates/*.html")

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, handler))
}
