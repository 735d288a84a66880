package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/aidar/workday-backend/internal/config"
	"github.com/aidar/workday-backend/internal/handler"
	"github.com/aidar/workday-backend/internal/middleware"
	"github.com/aidar/workday-backend/internal/payment"
	"github.com/aidar/workday-backend/internal/repository/postgres"
	"github.com/aidar/workday-backend/internal/service"
	"github.com/aidar/workday-backend/migrations"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	server *http.Server
	logger *slog.Logger
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Применяем миграции схемы
	if err := a.migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Подключаемся к базе данных
	if err := a.connectDB(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully")
	return nil
}

// migrate применяет goose-миграции через отдельное stdlib-подключение
func (a *App) migrate() error {
	db, err := sql.Open("pgx", a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	if err := migrations.Migrate(db); err != nil {
		return err
	}

	a.logger.Info("Migrations applied")
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	// Инициализируем слой репозиториев (работа с БД)
	userRepo := postgres.NewUserRepository(a.db)
	teamRepo := postgres.NewTeamRepository(a.db)
	assetRepo := postgres.NewAssetRepository(a.db)

	// Клиент внешнего платежного шлюза
	gateway := payment.NewClient(payment.Config{
		APIKey:  a.config.Payment.APIKey,
		BaseURL: a.config.Payment.BaseURL,
	})

	// Инициализируем слой сервисов (бизнес-логика)
	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(teamRepo)
	assetService := service.NewAssetService(assetRepo)
	authService := service.NewAuthService(
		a.config.JWT.Secret,
		a.config.JWT.GetExpiration(),
	)
	paymentService := service.NewPaymentService(gateway, a.config.Payment.Currency)

	// Инициализируем HTTP обработчики
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService)
	assetHandler := handler.NewAssetHandler(assetService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Инициализируем middleware для JWT авторизации
	authMiddleware := middleware.Auth(authService)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Выпуск токена
	r.Post("/jwt", authHandler.IssueToken)

	// Публичные эндпоинты пользователей
	r.Post("/users", userHandler.CreateUser)
	r.Get("/user/{email}", userHandler.GetUserByEmail)
	r.Put("/update-profile/{id}", userHandler.UpdateProfile)

	// Эндпоинты команд
	r.Post("/team", teamHandler.AddMember)
	r.Get("/team/{email}", teamHandler.GetByEmployer)
	r.Get("/myTeam/{email}", teamHandler.GetMyTeam)
	r.Get("/hrEmail/{email}", teamHandler.GetHREmail)
	r.Delete("/team/{id}", teamHandler.RemoveMember)

	// Эндпоинты активов
	r.Post("/asset", assetHandler.CreateAsset)
	r.Get("/assets", assetHandler.ListAssets)
	r.Get("/asset/{id}", assetHandler.GetAsset)
	r.Put("/asset/{id}", assetHandler.ReplaceAsset)
	r.Delete("/asset/{id}", assetHandler.DeleteAsset)
	r.Put("/request-asset/{id}", assetHandler.RequestAsset)
	r.Put("/request-update/{id}", assetHandler.UpdateAssetFields)

	// Платежи
	r.Post("/create-payment-intent", paymentHandler.CreateIntent)

	// Защищенные эндпоинты (требуют JWT токен в заголовке Authorization)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/users", userHandler.GetUsers)
		r.Patch("/user/update/{id}", userHandler.UpdateProfile)
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
