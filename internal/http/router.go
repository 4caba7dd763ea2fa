package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	accountHandler "github.com/MrJamesThe3rd/tally/internal/http/account"
	checkpointHandler "github.com/MrJamesThe3rd/tally/internal/http/checkpoint"
	drawdownHandler "github.com/MrJamesThe3rd/tally/internal/http/drawdown"
	exportHandler "github.com/MrJamesThe3rd/tally/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/tally/internal/http/importstatement"
	pairingHandler "github.com/MrJamesThe3rd/tally/internal/http/pairing"
	reconcileHandler "github.com/MrJamesThe3rd/tally/internal/http/reconcile"
	txHandler "github.com/MrJamesThe3rd/tally/internal/http/transaction"
)

func New(
	authSecret string,
	accountsV1 *accountHandler.Handler,
	transactionsV1 *txHandler.Handler,
	pairingsV1 *pairingHandler.Handler,
	drawdownsV1 *drawdownHandler.Handler,
	checkpointsV1 *checkpointHandler.Handler,
	reconcileV1 *reconcileHandler.Handler,
	importV1 *importHandler.Handler,
	exportV1 *exportHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(Auth(authSecret))

		r.Route("/accounts", func(r chi.Router) {
			accountsV1.Routes(r)
			reconcileV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/pairings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			pairingsV1.Routes(r)
		})

		r.Route("/drawdowns", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			drawdownsV1.Routes(r)
		})

		r.Route("/checkpoints", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			checkpointsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
		r.Route("/export", exportV1.Routes)
	})

	return router
}
