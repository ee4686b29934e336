package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addFavoriteHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/add_favorite"
	cancelReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_reservation"
	confirmReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	createReviewHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_review"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_slots"
	getCenterReviewsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_center_reviews"
	getCentersHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_centers"
	getSlotReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_slot_reservations"
	getUserFavoritesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_user_favorites"
	getUserReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_user_reservations"
	recalculateRatingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/recalculate_ratings"
	removeFavoriteHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/remove_favorite"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	centerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/center"
	favoriteRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/favorite"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	reviewRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/review"
	centersService "github.com/m04kA/SMC-ReservationService/internal/service/centers"
	favoritesService "github.com/m04kA/SMC-ReservationService/internal/service/favorites"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	reviewsService "github.com/m04kA/SMC-ReservationService/internal/service/reviews"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	createReviewUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_review"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	recalculateRatingsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/recalculate_ratings"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		centerRepository      *centerRepo.Repository
		reviewRepository      *reviewRepo.Repository
		favoriteRepository    *favoriteRepo.Repository
	)

	// Интерфейс transaction manager, общий для сервисов и use cases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		centerRepository = centerRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		favoriteRepository = favoriteRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		centerRepository = centerRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		favoriteRepository = favoriteRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, txMgr, log)
	centerSvc := centersService.NewService(centerRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, centerRepository, log)
	favoriteSvc := favoritesService.NewService(favoriteRepository, centerRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		centerRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		centerRepository,
		log,
	)
	createReviewUseCase := createReviewUC.NewUseCase(
		reviewRepository,
		reservationRepository,
		centerRepository,
		txMgr,
		log,
	)
	recalculateRatingsUseCase := recalculateRatingsUC.NewUseCase(
		reviewRepository,
		centerRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReview := createReviewHandler.NewHandler(createReviewUseCase, log)
	recalculateRatings := recalculateRatingsHandler.NewHandler(recalculateRatingsUseCase, log)
	getCenters := getCentersHandler.NewHandler(centerSvc, log)
	getCenterReviews := getCenterReviewsHandler.NewHandler(reviewSvc, log)
	getSlotReservations := getSlotReservationsHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	addFavorite := addFavoriteHandler.NewHandler(favoriteSvc, log)
	removeFavorite := removeFavoriteHandler.NewHandler(favoriteSvc, log)
	getUserFavorites := getUserFavoritesHandler.NewHandler(favoriteSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Веб-клиент ходит с другого origin
	r.Use(middleware.CORS)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список центров с рейтингами
	api.HandleFunc("/centers", getCenters.Handle).Methods(http.MethodGet)

	// Доступные слоты центра на дату
	api.HandleFunc("/centers/{centerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Отзывы центра
	api.HandleFunc("/centers/{centerId}/reviews", getCenterReviews.Handle).Methods(http.MethodGet)

	// Активные брони слота
	api.HandleFunc("/reservations", getSlotReservations.Handle).Methods(http.MethodGet)

	// Служебный пересчет рейтингов
	api.HandleFunc("/ratings/recalculate", recalculateRatings.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel",
		cancelReservation.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования
	protected.HandleFunc("/reservations/{reservationId}/confirm",
		confirmReservation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations",
		getUserReservations.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	// Создание отзыва с пересчетом рейтинга центра
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

	// --- Избранное ---
	protected.HandleFunc("/users/{userId}/favorites", getUserFavorites.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/favorites/{centerId}",
		addFavorite.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/favorites/{centerId}",
		removeFavorite.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
