package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/export"
)

// NewRouter serves health, metrics and the attendance download.
func NewRouter(service contract.AttendanceService, metricsHandler http.Handler, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Get("/"+export.FileName, func(w http.ResponseWriter, r *http.Request) {
		records, err := service.ExportAttendance(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("failed to export attendance")
			http.Error(w, "failed to export attendance", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, records); err != nil {
			log.Error().Err(err).Msg("failed to render attendance")
			http.Error(w, "failed to export attendance", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
		_, _ = w.Write(buf.Bytes())
	})

	return r
}
