package handlers

import (
	"net/http"

	_ "github.com/orbitads/orwallet/docs"
	activityhandlers "github.com/orbitads/orwallet/internal/handlers/activity"
	authhandlers "github.com/orbitads/orwallet/internal/handlers/auth"
	recommendhandlers "github.com/orbitads/orwallet/internal/handlers/recommend"
	wallethandlers "github.com/orbitads/orwallet/internal/handlers/wallet"
	"github.com/orbitads/orwallet/internal/service"
	"github.com/orbitads/orwallet/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type ActivityHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	Solve(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Abandon(w http.ResponseWriter, r *http.Request)
}

type RecommendHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	WalletHandler    WalletHandler
	ActivityHandler  ActivityHandler
	RecommendHandler RecommendHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		WalletHandler:    wallethandlers.New(s.WalletService),
		ActivityHandler:  activityhandlers.New(s.ActivityService),
		RecommendHandler: recommendhandlers.New(s.RecommendService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/convert", h.WalletHandler.Convert)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Get("/withdrawals", h.WalletHandler.GetWithdrawals)
			})
			r.Route("/activities", func(r chi.Router) {
				r.Post("/start", h.ActivityHandler.Start)
				r.Post("/solve", h.ActivityHandler.Solve)
				r.Post("/claim", h.ActivityHandler.Claim)
				r.Post("/abandon", h.ActivityHandler.Abandon)
			})
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Get("/recommendations", h.RecommendHandler.Get)
		})
	})

	return r
}
