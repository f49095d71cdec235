package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	v10validator "github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/oripovb/orderpay/internal/client"
	"github.com/oripovb/orderpay/internal/config"
	"github.com/oripovb/orderpay/internal/entity"
	"github.com/oripovb/orderpay/internal/handler"
	"github.com/oripovb/orderpay/internal/logger"
	"github.com/oripovb/orderpay/internal/middleware"
	"github.com/oripovb/orderpay/internal/migrations"
	"github.com/oripovb/orderpay/internal/repository"
	"github.com/oripovb/orderpay/internal/service"
	"github.com/oripovb/orderpay/internal/validator"
	"github.com/oripovb/orderpay/internal/worker"
	"go.uber.org/zap"
)

func main() {
	if err := Execute(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func Execute() error {
	cfg, err := config.NewBuilder().LoadFlags().LoadEnv().Build()
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.LogLevel()); err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseURI())
	if err != nil {
		return err
	}

	defer func(db *sql.DB) {
		err = db.Close()
	}(db)

	if err := migrations.Up(db); err != nil {
		return err
	}

	tg, err := client.NewTelegram(cfg.BotToken())
	if err != nil {
		return err
	}

	var (
		ctx, cancel   = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		r             = chi.NewRouter()
		v             = validator.New(v10validator.New())
		wg            = &sync.WaitGroup{}
		notifications = make(chan entity.Notification, 8)
		or            = repository.NewOrder(db)
		sr            = repository.NewSettings(db)
		gate          = service.NewPauseGate(sr)
		ps            = service.NewPayment(tg, gate, cfg.PaymentCardNumber(), cfg.PaymentCardHolder())
		rs            = service.NewReconciler(or, tg, gate, cfg.AdminChatID(), notifications)
		os            = service.NewOrders(or)
		nw            = worker.NewNotifier(tg, notifications, wg, 2)
		wh            = handler.NewWebhook(rs)
		ph            = handler.NewPayment(ps)
		oh            = handler.NewOrder(os, v)
		gh            = handler.NewPause(gate, v)
		ch            = handler.NewWebhookConfig(tg, v)
	)

	defer func() {
		cancel()
		wg.Wait()
		close(notifications)
	}()

	nw.Do(ctx)

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/telegram/webhook", wh.Receive)

		r.Route("/telegram/webhook-config", func(r chi.Router) {
			r.Get("/", ch.Get)
			r.Post("/", ch.Set)
			r.Delete("/", ch.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", oh.Create)
			r.Get("/", oh.GetAll)
			r.Get("/{id}", oh.Get)
			r.Patch("/{id}/status", oh.UpdateStatus)
			r.Post("/payment-request", ph.Send)
		})

		r.Route("/payments/pause", func(r chi.Router) {
			r.Get("/", gh.Get)
			r.Put("/", gh.Set)
		})
	})

	server := &http.Server{
		Addr:    cfg.ServerAddress(),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Log.Error("ошибка остановки сервера", zap.Error(err))
		}
	}()

	logger.Log.Info("сервер запущен", zap.String("address", cfg.ServerAddress()))

	return server.ListenAndServe()
}
