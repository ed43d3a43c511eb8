package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/yodicommerce/holdlink/internal/config"
	"github.com/yodicommerce/holdlink/internal/httpx"
	"github.com/yodicommerce/holdlink/internal/stripex"
	"github.com/yodicommerce/holdlink/web"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.StripeSecretKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is not set")
	}

	sessions := stripex.New(cfg.StripeSecretKey, cfg.Currency, cfg.SuccessURL, cfg.CancelURL)

	router := httpx.NewRouter()
	hh := &httpx.HoldsHandler{
		Sessions: sessions,
		Cfg:      &cfg,
		Validate: validator.New(),
	}
	hh.Register(router)
	httpx.ServeAssets(router, web.Assets)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("%s listening at %s", cfg.ServiceName, cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
