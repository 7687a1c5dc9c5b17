package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/logicraft/dispatch/internal/pkg/config"
	"github.com/logicraft/dispatch/internal/pkg/database"
	"github.com/logicraft/dispatch/internal/pkg/health"
	"github.com/logicraft/dispatch/internal/pkg/logger"
	natspkg "github.com/logicraft/dispatch/internal/pkg/nats"
	"github.com/logicraft/dispatch/internal/pkg/server"
	assignmentrepo "github.com/logicraft/dispatch/services/assignment/repository"
	assignmentuc "github.com/logicraft/dispatch/services/assignment/usecase"
	bookingrepo "github.com/logicraft/dispatch/services/booking/repository"
	bookinguc "github.com/logicraft/dispatch/services/booking/usecase"
	"github.com/logicraft/dispatch/services/dispatch/gateway"
	dispatchhttp "github.com/logicraft/dispatch/services/dispatch/handler/http"
	dispatchuc "github.com/logicraft/dispatch/services/dispatch/usecase"
	locationrepo "github.com/logicraft/dispatch/services/location/repository"
	locationuc "github.com/logicraft/dispatch/services/location/usecase"
	vehiclerepo "github.com/logicraft/dispatch/services/vehicle/repository"
	vehicleuc "github.com/logicraft/dispatch/services/vehicle/usecase"
)

const serviceName = "dispatch-service"

func main() {
	cfg := config.InitConfig(".env")

	log, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer log.Close()
	logger.SetGlobalLogger(log)

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to postgres", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to redis", logger.Err(err))
	}

	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		log.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	bookingRepo := bookingrepo.NewBookingRepository(db)
	vehicleRepo := vehiclerepo.NewVehicleRepository(db)
	assignmentRepo := assignmentrepo.NewAssignmentRepository(db)
	locationRepo := locationrepo.NewLocationRepository(redisClient)

	bookingService := bookinguc.NewBookingService(cfg, bookingRepo)
	vehicleService := vehicleuc.NewVehicleService(vehicleRepo)
	assignmentService := assignmentuc.NewAssignmentService(assignmentRepo)
	locationService := locationuc.NewLocationService(locationRepo, assignmentRepo, vehicleRepo)

	dispatchGateway := gateway.NewDispatchGateway(natsClient)
	dispatchService := dispatchuc.NewDispatchService(
		bookingService,
		vehicleService,
		assignmentService,
		locationService,
		dispatchGateway,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = server.NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	health.RegisterHealthEndpoints(e, serviceName, cfg.App.Version)
	dispatchhttp.NewDispatchHandler(dispatchService).RegisterRoutes(e)

	shutdown := server.NewShutdownManager(log)
	shutdown.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdown.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdown.Register(func(ctx context.Context) error {
		return db.Close()
	})

	srv := server.NewGracefulServer(e, log, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		log.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(ctx); err != nil {
		log.Error("Component shutdown failed", logger.Err(err))
	}
}
