package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rentacore/car-rental-platform/internal/config"
	"github.com/rentacore/car-rental-platform/internal/db"
	"github.com/rentacore/car-rental-platform/internal/httpapi"
	"github.com/rentacore/car-rental-platform/internal/model"
	"github.com/rentacore/car-rental-platform/internal/repository"
	"github.com/rentacore/car-rental-platform/internal/service"
)

func initLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Str("service", "car-rental-core").Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().
			Timestamp().
			Str("service", "car-rental-core").
			Logger()
	}
}

func main() {
	appCfg := config.LoadAppConfig()
	initLogger(appCfg.Env)

	// 1. Конфиг БД из env.
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load db config")
	}

	// 2. Подключение к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init db")
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto migrate")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("sql DB")
	}
	defer sqlDB.Close()

	// 4. Репозитории (реализации на GORM).
	userRepo := repository.NewGormUserRepository(gormDB)
	carRepo := repository.NewGormCarRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	paymentRepo := repository.NewGormPaymentRepository(gormDB)
	maintenanceRepo := repository.NewGormMaintenanceRepository(gormDB)

	// 5. Сервисы ядра.
	identitySvc := service.NewIdentityService(userRepo)
	carSvc := service.NewCarService(carRepo)
	bookingSvc := service.NewBookingService(gormDB, bookingRepo, carRepo, userRepo,
		appCfg.StrictApproval, appCfg.VerifyAmounts)
	paymentSvc := service.NewPaymentService(gormDB, paymentRepo, bookingRepo)
	maintenanceSvc := service.NewMaintenanceService(gormDB, maintenanceRepo, carRepo)

	// 6. HTTP-сервер.
	handlers := httpapi.NewHandlers(identitySvc, carSvc, bookingSvc, paymentSvc, maintenanceSvc)
	router := httpapi.NewRouter(handlers, appCfg.Env)

	srv := &http.Server{
		Addr:    appCfg.HTTPAddr,
		Handler: router,
	}

	log.Info().
		Str("addr", appCfg.HTTPAddr).
		Bool("strict_approval", appCfg.StrictApproval).
		Bool("verify_amounts", appCfg.VerifyAmounts).
		Msg("car rental core listening")

	// 7. Запускаем сервер в горутине.
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http serve")
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down http server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
