package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/befoot1242/wordbook/internal/httpserver/deps"
	"github.com/befoot1242/wordbook/internal/httpserver/handlers"
	"github.com/befoot1242/wordbook/internal/httpserver/mw"
)

func init() { Register(registerWords) }

func registerWords(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Route("/api/words", func(r chi.Router) {
		r.Post("/", handlers.SaveWord(d))
		r.Get("/", handlers.ListWords(d))
		r.Delete("/", handlers.ClearWords(d))
		r.Put("/{id}", handlers.UpdateWord(d))
		r.Delete("/{id}", handlers.DeleteWord(d))
	})
}
