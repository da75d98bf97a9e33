package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"telecom-catalog/internal/config"
	"telecom-catalog/internal/db"
	"telecom-catalog/internal/httpserver"
	offerrepo "telecom-catalog/internal/repository/offer"
	productrepo "telecom-catalog/internal/repository/product"
	offersvc "telecom-catalog/internal/service/offer"
	productsvc "telecom-catalog/internal/service/product"
	"telecom-catalog/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	offerRepo := offerrepo.NewPostgres(dbpool, logger)
	offerService := offersvc.New(offerRepo)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo, offerRepo)
	fileStore := storage.NewDisk(cfg.UploadDir, cfg.PublicBaseURL+"/api/products/uploads", logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		OfferSvc:   offerService,
		ProductSvc: productService,
		Files:      fileStore,
		UploadDir:  cfg.UploadDir,
		CORSOrigin: cfg.CORSOrigin,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
