package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/httpserver/handlers"
	"github.com/befoot1242/wordbook/internal/httpserver/mw"
)

func init() { Register(registerExport) }

func registerExport(r chi.Router, d deps.Deps) {
	host := mw.EnforceHost(d.AllowedHosts, d.Logger)
	r.With(host).Get("/api/export", handlers.Export(d))
	r.With(host).Get("/api/stats", handlers.Stats(d))
}
