package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/library-management-api/internal/service"
	"github.com/pribylovaa/library-management-api/internal/transport/http/handlers"
	"github.com/pribylovaa/library-management-api/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчик запросов и латентность по шаблонам маршрутов
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, verifier middleware.TokenVerifier) {
	// Публичные маршруты: auth и healthcheck.
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	r.Get("/healthcheck", h.Healthcheck)

	// Всё остальное — за гейтом.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(verifier))

		r.Route("/books", func(r chi.Router) {
			r.Post("/", h.CreateBook)
			r.Get("/", h.ListBooks)
			r.Get("/{id}", h.GetBook)
			r.Put("/{id}", h.UpdateBook)
			r.Delete("/{id}", h.DeleteBook)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", h.CreateCategory)
			r.Get("/", h.ListCategories)
			r.Get("/{id}", h.GetCategory)
			r.Put("/{id}", h.UpdateCategory)
			r.Delete("/{id}", h.DeleteCategory)
		})

		r.Route("/shelves", func(r chi.Router) {
			r.Post("/", h.CreateShelf)
			r.Get("/", h.ListShelves)
			r.Get("/{id}", h.GetShelf)
			r.Put("/{id}", h.UpdateShelf)
			r.Delete("/{id}", h.DeleteShelf)
		})

		r.Route("/librarians", func(r chi.Router) {
			r.Post("/", h.CreateLibrarian)
			r.Get("/", h.ListLibrarians)
			r.Get("/{id}", h.GetLibrarian)
			r.Put("/{id}", h.UpdateLibrarian)
			r.Delete("/{id}", h.DeleteLibrarian)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", h.CreateTransaction)
			r.Get("/", h.ListTransactions)
			r.Get("/{id}", h.GetTransaction)
			r.Put("/{id}", h.UpdateTransaction)
			r.Delete("/{id}", h.DeleteTransaction)
		})

		r.Route("/fines", func(r chi.Router) {
			r.Post("/", h.CreateFine)
			r.Get("/", h.ListFines)
			r.Get("/{id}", h.GetFine)
			r.Put("/{id}", h.UpdateFine)
			r.Delete("/{id}", h.DeleteFine)
		})
	})
}
