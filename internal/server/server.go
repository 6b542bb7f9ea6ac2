// Package server Midas
//
// The Midas is an off-chain service which tracks social content submissions and view-based token rewards
//
//     Schemes: https
//     BasePath: /api
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/Decentr-net/go-api"

	"github.com/postmint-net/midas/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 1024

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		api.FileServerMiddleware("/docs", "static"),
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		api.RequestIDMiddleware,
		api.RecovererMiddleware,
		api.TimeoutMiddleware(timeout),
		api.BodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/wallet", srv.authWallet)
		r.Post("/content/submit", srv.submitContent)
		r.Get("/content/list", srv.listUserContent)
		r.Get("/content/all", srv.listAllContent)
		r.Get("/user/profile", srv.getProfile)
		r.Post("/rewards/claim", srv.claimRewards)
	})
}
