package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/book_room"
	cancelBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_booking"
	exportBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/export_bookings"
	getBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_booking"
	searchRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/search_rooms"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	"github.com/m04kA/SMC-HotelService/internal/infra/export"
	catalogRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/catalog"
	ledgerRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/ledger"
	reservationsService "github.com/m04kA/SMC-HotelService/internal/service/reservations"
	bookRoomUC "github.com/m04kA/SMC-HotelService/internal/usecase/book_room"
	"github.com/m04kA/SMC-HotelService/pkg/idgen"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/memlock"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
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

	log.Info("Starting SMC-HotelService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем каталог номеров из конфигурации
	seedRooms := cfg.SeedRooms()
	catalog, err := catalogRepo.NewRepository(seedRooms)
	if err != nil {
		log.Fatal("Failed to initialize room catalog: %v", err)
	}
	log.Info("Room catalog initialized with %d rooms", len(seedRooms))

	// Реестр бронирований и общий замок для составных операций
	ledger := ledgerRepo.NewRepository()
	lockManager := memlock.NewManager()

	// Метрики (если включены)
	var (
		bookMetrics   bookRoomUC.Metrics          = metrics.Nop{}
		cancelMetrics reservationsService.Metrics = metrics.Nop{}
		collector     *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		collector = metrics.New(cfg.Metrics.ServiceName)
		collector.RegisterActiveBookings(cfg.Metrics.ServiceName, func() float64 {
			return float64(ledger.Count())
		})
		bookMetrics = collector
		cancelMetrics = collector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Экспорт активных бронирований в CSV
	exportWriter := export.NewWriter(cfg.Export.File)

	// Инициализируем сервис и use case
	reservationSvc := reservationsService.NewService(
		ledger,
		catalog,
		lockManager,
		exportWriter,
		cancelMetrics,
		log,
	)
	bookRoomUseCase := bookRoomUC.NewUseCase(
		catalog,
		ledger,
		idgen.New(),
		lockManager,
		bookMetrics,
		log,
	)

	// Инициализируем handlers
	searchRooms := searchRoomsHandler.NewHandler(reservationSvc, log)
	bookRoom := bookRoomHandler.NewHandler(bookRoomUseCase, log)
	getBooking := getBookingHandler.NewHandler(reservationSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(reservationSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(collector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Поиск номеров по категории
	api.HandleFunc("/rooms", searchRooms.Handle).Methods(http.MethodGet)

	// Экспорт активных бронирований (регистрируется раньше
	// маршрута с {bookingId})
	api.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodPost)

	// Создание бронирования
	api.HandleFunc("/bookings", bookRoom.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Финальная выгрузка активных бронирований перед остановкой
	if count, err := reservationSvc.Export(context.Background()); err != nil {
		log.Error("Final export failed: %v", err)
	} else {
		log.Info("Final export: %d bookings written to %s", count, exportWriter.Path())
	}

	log.Info("Server stopped gracefully")
}
