package answer

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the query endpoint and the /calculator helpers
// onto the given router.
func RegisterRoutes(r chi.Router) {
	r.Get("/query", QueryText)
	r.Post("/query", Query)

	r.Route("/calculator", func(r chi.Router) {
		r.Post("/evaluate", Evaluate)
		r.Post("/power", Power)
	})
}
