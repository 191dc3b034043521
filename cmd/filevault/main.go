package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/filevault/internal/bucketstore"
	"github.com/rise-and-shine/filevault/internal/config"
	"github.com/rise-and-shine/filevault/internal/httpapi"
	"github.com/rise-and-shine/filevault/internal/repository"
	"github.com/rise-and-shine/filevault/internal/usecase/identity"
	"github.com/rise-and-shine/filevault/internal/usecase/uploads"
	"github.com/rise-and-shine/filevault/pkg/cfgloader"
	"github.com/rise-and-shine/filevault/pkg/logger"
	"github.com/rise-and-shine/filevault/pkg/pg"
	"github.com/rise-and-shine/filevault/pkg/server"
	"github.com/rise-and-shine/filevault/pkg/server/middleware"
)

func main() {
	cfg := cfgloader.MustLoad[config.Config]()

	logger.SetGlobal(cfg.Logger)
	log := logger.Named("filevault")
	defer func() { _ = logger.Sync() }()

	db, err := pg.NewBunDB(cfg.PG)
	if err != nil {
		log.Fatalx(err)
	}
	defer func() { _ = db.Close() }()

	store, err := bucketstore.New(cfg.Storage)
	if err != nil {
		log.Fatalx(err)
	}

	principals := repository.NewPrincipalRepo(db)

	srv := server.NewHTTPServer(cfg.HTTP, []server.Middleware{
		middleware.NewRecoveryMW(log),
		middleware.NewTimeoutMW(cfg.HTTP.HandleTimeout),
		middleware.NewMetaInjectMW(cfg.ServiceName, cfg.ServiceVersion),
		middleware.NewLoggerMW(log),
		middleware.NewErrorHandlerMW(cfg.HTTP.HideErrorDetails),
	})

	srv.RegisterRouter(func(r fiber.Router) {
		httpapi.RegisterRoutes(r, httpapi.UseCases{
			Register:     identity.NewRegister(principals, store, log),
			Authenticate: identity.NewAuthenticate(principals),
			GetUser:      identity.NewGetUser(principals),
			ListUploads:  uploads.NewList(store),
		})
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalx(err)
		}
	}()
	log.With("addr", cfg.HTTP.Address()).Info("http server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := srv.Stop(); err != nil {
		log.Errorx(err)
	}
}
