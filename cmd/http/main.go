package main

import (
	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/delivery/http/controllers"
	"clinic-dashboard/internal/app/delivery/http/middlewares"
	"clinic-dashboard/internal/app/delivery/http/routers"
	"clinic-dashboard/internal/app/delivery/http/views"
	"clinic-dashboard/internal/app/drivers/database"
	"clinic-dashboard/internal/app/drivers/httpclient"
	"clinic-dashboard/internal/app/drivers/logger"
	"clinic-dashboard/internal/app/drivers/messaging"
	minioDriver "clinic-dashboard/internal/app/drivers/storage"
	"clinic-dashboard/internal/app/services/clinic_api/doctors"
	"clinic-dashboard/internal/app/services/clinic_api/invoices"
	"clinic-dashboard/internal/app/services/clinic_api/patients"
	"clinic-dashboard/internal/app/services/clinic_api/students"
	doctorsCore "clinic-dashboard/internal/app/services/core/doctors"
	invoicesCore "clinic-dashboard/internal/app/services/core/invoices"
	patientsCore "clinic-dashboard/internal/app/services/core/patients"
	"clinic-dashboard/internal/app/services/core/profiles"
	"clinic-dashboard/internal/app/services/shared/events"
	"clinic-dashboard/internal/app/services/shared/forms"
	"clinic-dashboard/internal/app/services/shared/ratelimiter"
	"clinic-dashboard/internal/app/services/shared/redis"
	"clinic-dashboard/internal/app/services/shared/storage"
	"clinic-dashboard/internal/app/services/shared/uistate"
	"clinic-dashboard/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQConn,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Clinic backend
	backend := httpclient.NewBackendClient(internalConfig)
	patientClient := patients.NewPatientClient(backend, log)
	doctorClient := doctors.NewDoctorClient(backend, log)
	invoiceClient := invoices.NewInvoiceClient(backend, log)
	studentClient := students.NewStudentClient(backend, log)

	// Events and UI state
	bus := events.NewBus(log)
	var (
		uiStore  contracts.UIStateStore
		limiter  profiles.ArchiveLimiter
		stoppers []func()
	)
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		uiStore = uistate.NewRedisStore(redisRepository, time.Duration(internalConfig.UI.StateTTLInMinutes)*time.Minute)
		limiter = ratelimiter.NewWindowLimiter(redisRepository, log, "archive", time.Minute, internalConfig.Minio.ArchiveMaxPerMinute)

		if internalConfig.UI.EnableRedisRelay {
			relay := events.NewRedisRelay(redisRepository, bus, constvars.RedisEventChannel, log)
			stop, err := relay.Start(context.Background())
			if err != nil {
				return err
			}
			bus.AddForwarder(relay)
			stoppers = append(stoppers, stop)
		}
	} else {
		uiStore = uistate.NewMemoryStore()
	}

	if bootstrap.RabbitMQ != nil {
		amqpRelay, err := events.NewAMQPRelay(bootstrap.RabbitMQ, internalConfig.RabbitMQ.EventsExchange, log)
		if err != nil {
			return err
		}
		bus.AddForwarder(amqpRelay)
	}

	bootstrap.WorkerStop = func() {
		for _, stop := range stoppers {
			stop()
		}
	}

	// Export archive
	var archive storage.ExportArchive
	if bootstrap.Minio != nil {
		archive = storage.NewExportArchiveStorage(
			storage.NewMinioStorage(bootstrap.Minio),
			internalConfig.Minio.BucketName,
			time.Duration(internalConfig.Minio.PreSignedUrlObjectExpiryInHours)*time.Hour,
			log,
		)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, internalConfig)

	// Patients
	patientUsecase := patientsCore.NewPatientUsecase(patientClient, bus, forms.NewEditor(uiStore, constvars.ScreenPatients), log)
	patientController := controllers.NewPatientController(log, patientUsecase, renderer, internalConfig)

	// Doctors
	doctorUsecase := doctorsCore.NewDoctorUsecase(doctorClient, forms.NewEditor(uiStore, constvars.ScreenDoctors), log)
	doctorController := controllers.NewDoctorController(log, doctorUsecase, renderer, internalConfig)

	// Invoices
	invoiceUsecase := invoicesCore.NewInvoiceUsecase(invoiceClient, patientClient, doctorClient, bus, forms.NewEditor(uiStore, constvars.ScreenInvoices), log)
	invoiceController := controllers.NewInvoiceController(log, invoiceUsecase, renderer, internalConfig)

	// Profiles
	listPage := views.NewPage()
	profilePage := views.NewPage()
	profileListUsecase := profiles.NewProfileListUsecase(
		patientClient,
		doctorClient,
		invoiceClient,
		bus,
		forms.NewEditor(uiStore, constvars.ScreenProfiles),
		listPage,
		log,
	)
	profileController := profiles.NewProfileController(
		profiles.NewAggregator(patientClient, doctorClient, invoiceClient, studentClient, log),
		views.NewProfileView(profilePage),
		bus,
		archive,
		limiter,
		log,
	)
	if internalConfig.UI.ProfileRefreshCronSpec != "" {
		refresher := profiles.NewRefreshWorker(
			log,
			profileController,
			internalConfig.UI.ProfileRefreshCronSpec,
			time.Duration(internalConfig.App.RequestTimeoutInSeconds)*time.Second,
		)
		refresher.Start(context.Background())
		stoppers = append(stoppers, refresher.Stop)
	}

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, routers.Controllers{
		Patient: patientController,
		Doctor:  doctorController,
		Invoice: invoiceController,
		Profile: controllers.NewProfileController(log, profileListUsecase, profileController, listPage, profilePage, renderer, internalConfig),
		API:     controllers.NewAPIController(log, profileController, internalConfig),
	})
	return nil
}
