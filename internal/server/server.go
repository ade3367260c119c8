package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/davewalter/shoplist/internal/handler"
	"github.com/davewalter/shoplist/internal/middleware"
	"github.com/davewalter/shoplist/internal/store"
	ws "github.com/davewalter/shoplist/internal/websocket"
	"github.com/davewalter/shoplist/web"
)

type Server struct {
	db           *sql.DB
	hub          *ws.Hub
	storeH       *handler.StoreHandler
	itemH        *handler.ItemHandler
	authH        *handler.AuthHandler
	sessionStore *store.SessionStore
	userStore    *store.UserStore
	rateLimiter  *middleware.RateLimiter
	logger       *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	templates := web.Templates()
	hub := ws.NewHub(logger.With("component", "websocket"))

	groceryStore := store.NewGroceryStore(db)
	userStore := store.NewUserStore(db)
	sessionStore := store.NewSessionStore(db)

	return &Server{
		db:           db,
		hub:          hub,
		storeH:       handler.NewStoreHandler(groceryStore, hub, templates, logger.With("component", "store")),
		itemH:        handler.NewItemHandler(groceryStore, hub, templates, logger.With("component", "item")),
		authH:        handler.NewAuthHandler(userStore, sessionStore, templates, logger.With("component", "auth")),
		sessionStore: sessionStore,
		userStore:    userStore,
		rateLimiter:  middleware.NewRateLimiter(),
		logger:       logger,
	}
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *store.SessionStore {
	return s.sessionStore
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// Router builds the routing table. Guarded routes are wrapped with the auth
// middleware individually; everything passes through request logging and
// metrics.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	guard := middleware.RequireAuth(s.sessionStore, s.userStore)

	// Public routes
	mux.HandleFunc("GET /{$}", s.storeH.Home)
	mux.HandleFunc("GET /signup", s.authH.SignupPage)
	mux.Handle("POST /signup", s.rateLimited(s.authH.Signup))
	mux.HandleFunc("GET /login", s.authH.LoginPage)
	mux.Handle("POST /login", s.rateLimited(s.authH.Login))
	mux.Handle("GET /static/", http.StripPrefix("/static/", web.StaticHandler()))
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	// Guarded routes
	mux.Handle("GET /new_store", guard(http.HandlerFunc(s.storeH.NewStorePage)))
	mux.Handle("POST /new_store", guard(http.HandlerFunc(s.storeH.NewStoreCreate)))
	mux.Handle("GET /store/{id}", guard(http.HandlerFunc(s.storeH.StoreDetailPage)))
	mux.Handle("POST /store/{id}", guard(http.HandlerFunc(s.storeH.StoreUpdate)))
	mux.Handle("GET /new_item", guard(http.HandlerFunc(s.itemH.NewItemPage)))
	mux.Handle("POST /new_item", guard(http.HandlerFunc(s.itemH.NewItemCreate)))
	mux.Handle("GET /item/{id}", guard(http.HandlerFunc(s.itemH.ItemDetailPage)))
	mux.Handle("POST /item/{id}", guard(http.HandlerFunc(s.itemH.ItemUpdate)))
	mux.Handle("POST /add_to_shopping_list/{id}", guard(http.HandlerFunc(s.itemH.AddToShoppingList)))
	mux.Handle("GET /shopping_list", guard(http.HandlerFunc(s.itemH.ShoppingListPage)))
	mux.Handle("GET /logout", guard(http.HandlerFunc(s.authH.Logout)))
	mux.Handle("GET /ws", guard(ws.Handle(s.hub)))

	var h http.Handler = mux
	h = middleware.Metrics()(h)
	h = middleware.RequestLogger(s.logger.With("component", "http"))(h)
	return h
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimited(h http.HandlerFunc) http.Handler {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	return middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)(h)
}
