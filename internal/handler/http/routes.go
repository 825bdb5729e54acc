package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// activation pages
	router.Get("/", h.indexPage)
	router.Get("/{guid}", h.activationPage)

	// JRebel agent protocol; /agent/* is the path used by newer agents
	router.Group(func(r chi.Router) {
		r.Post("/jrebel/leases", h.obtainLease)
		r.Post("/agent/leases", h.obtainLease)
		r.Post("/jrebel/leases/1", h.releaseLease)
		r.Post("/agent/leases/1", h.releaseLease)
		r.Get("/jrebel/validate-connection", h.validateConnection)
		r.Post("/jrebel/validate-connection", h.validateConnection)
	})

	// JetBrains license flow; IDEs call these with either GET or POST
	router.Group(func(r chi.Router) {
		r.Get("/rpc/obtainTicket.action", h.obtainTicket)
		r.Post("/rpc/obtainTicket.action", h.obtainTicket)
		r.Get("/rpc/ping.action", h.ping)
		r.Post("/rpc/ping.action", h.ping)
		r.Get("/rpc/releaseTicket.action", h.releaseTicket)
		r.Post("/rpc/releaseTicket.action", h.releaseTicket)
	})

	router.Get("/api/status", h.status)
	router.Method("GET", "/metrics", h.metrics.Handler())

	// admin API
	router.Post("/api/admin/login", h.adminLogin)
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/admin/licenses", h.listLicenses)
		r.Post("/api/admin/licenses", h.createLicense)
		r.Delete("/api/admin/licenses/{guid}", h.deleteLicense)
	})

	return router
}
