package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"medtracker/internal/config"
	"medtracker/internal/database"
	"medtracker/internal/druginfo"
	"medtracker/internal/handlers"
	"medtracker/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "medtracker/docs"
)

// @title MedTracker API
// @version 1.0
// @description CRUD service for tracking medications, dose logs, and clinical notes, with adherence and dose-expectation calculations.
// @BasePath /api
func main() {
	// Load environment variables
	if err := loadEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// External drug-information collaborator
	drugInfoClient := druginfo.New(cfg.DrugInfo.BaseURL, cfg.DrugInfo.Timeout)

	// Initialize router
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.SecurityHeaders())

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://localhost:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Medication routes
		r.Route("/medications", func(r chi.Router) {
			r.Get("/", handlers.HandleGetMedications(db))
			r.Post("/", handlers.HandleCreateMedication(db))
			r.Get("/{id}", handlers.HandleGetMedication(db))
			r.Put("/{id}", handlers.HandleUpdateMedication(db))
			r.Delete("/{id}", handlers.HandleDeleteMedication(db))
			r.Get("/{id}/info", handlers.HandleGetMedicationInfo(db, drugInfoClient))
			r.Get("/{id}/expected-doses", handlers.HandleGetExpectedDoses(db))
			r.Get("/{id}/adherence", handlers.HandleGetMedicationAdherence(db))
		})

		// Dose log routes
		r.Route("/dose-logs", func(r chi.Router) {
			r.Get("/", handlers.HandleGetDoseLogs(db))
			r.Post("/", handlers.HandleCreateDoseLog(db))
			r.Get("/filter", handlers.HandleFilterDoseLogs(db))
			r.Get("/{id}", handlers.HandleGetDoseLog(db))
			r.Put("/{id}", handlers.HandleUpdateDoseLog(db))
			r.Delete("/{id}", handlers.HandleDeleteDoseLog(db))
		})

		// Note routes. Notes are immutable: PUT/PATCH always 405.
		r.Route("/notes", func(r chi.Router) {
			r.Get("/", handlers.HandleGetNotes(db))
			r.Post("/", handlers.HandleCreateNote(db))
			r.Get("/{id}", handlers.HandleGetNote(db))
			r.Delete("/{id}", handlers.HandleDeleteNote(db))
			r.Put("/{id}", handlers.HandleNoteUpdateNotAllowed())
			r.Patch("/{id}", handlers.HandleNoteUpdateNotAllowed())
		})

		// Export routes
		r.Get("/export/csv", handlers.HandleExportCSV(db))
		r.Get("/export/pdf", handlers.HandleExportPDF(db))
	})

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server starting on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// loadEnv loads environment variables from .env file
func loadEnv() error {
	data, err := os.ReadFile(".env")
	if err != nil {
		return err
	}

	lines := splitLines(string(data))
	for _, line := range lines {
		if line == "" || line[0] == '#' {
			continue
		}

		parts := splitOnce(line, '=')
		if len(parts) == 2 {
			os.Setenv(parts[0], parts[1])
		}
	}

	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func splitOnce(s string, sep byte) []string {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return []string{s[:i], s[i+1:]}
		}
	}
	return []string{s}
}
