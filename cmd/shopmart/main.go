package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopmart/backend/internal/adapter/auth"
	"github.com/shopmart/backend/internal/adapter/config"
	"github.com/shopmart/backend/internal/adapter/handler/http"
	"github.com/shopmart/backend/internal/adapter/logger"
	"github.com/shopmart/backend/internal/adapter/mail"
	"github.com/shopmart/backend/internal/adapter/payment"
	"github.com/shopmart/backend/internal/adapter/storage"
	"github.com/shopmart/backend/internal/adapter/storage/repository"
	"github.com/shopmart/backend/internal/core/port"
	"github.com/shopmart/backend/internal/core/service"
	"github.com/shopmart/backend/internal/core/template"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	var repo port.Repository
	if conf.Database.DSN != "" {
		db, err := storage.NewDBStorage(ctx, conf.Database)
		if err != nil {
			log.Error("database error", zap.Error(err))
			return
		}
		err = db.RunMigrations()
		if err != nil {
			log.Error("database migration error", zap.Error(err))
			return
		}
		repo, err = repository.NewRepository(db)
		if err != nil {
			log.Error("order repo creating error", zap.Error(err))
			return
		}
	} else {
		log.Warn("no database configured, using in-memory order store")
		repo = repository.NewMemoryRepository()
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	verifier := payment.NewSignatureVerifier(conf.Payment)
	transport := mail.NewSMTPTransport(conf.SMTP)

	dispatcher := service.NewNotificationDispatcher(
		template.DefaultRegistry(),
		transport,
		service.ShopInfo{
			ShopURL:     conf.Shop.ShopURL,
			TrackingURL: conf.Shop.TrackingURL,
			ReviewURL:   conf.Shop.ReviewURL,
			Carrier:     conf.Shop.Carrier,
		},
		time.Duration(conf.SMTP.TimeoutSec)*time.Second,
		conf.SMTP.QueueSize,
		log.Named("Notify"),
	)
	dispatcher.Start(ctx)

	svc, err := service.NewService(repo, tokenService, verifier, dispatcher, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, orderHandler, userHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
