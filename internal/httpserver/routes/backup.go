package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/httpserver/handlers"
	"github.com/befoot1242/wordbook/internal/httpserver/mw"
)

func init() { Register(registerBackup) }

func registerBackup(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Post("/api/backup", handlers.Backup(d))
}
