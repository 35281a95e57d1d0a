package bootstrap

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/daffahilmyf/dictators-seed/internal/config"
	"github.com/daffahilmyf/dictators-seed/internal/dataset"
	"github.com/daffahilmyf/dictators-seed/internal/infra/memstore"
	"github.com/daffahilmyf/dictators-seed/internal/transport/http/handlers"
	"github.com/daffahilmyf/dictators-seed/internal/transport/http/middleware"
	"github.com/daffahilmyf/dictators-seed/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewStubEngine builds the in-memory stand-in for the dictators API.
func NewStubEngine(log *logrus.Logger) *gin.Engine {
	catalog := usecase.NewCatalog(memstore.NewCatalogRepository(), dataset.Default(), log)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery())
	handlers.NewRouter(handlers.NewHandler(catalog)).RegisterRoutes(router)
	return router
}

// RunStub serves the stand-in API until ctx is cancelled.
func RunStub(ctx context.Context, cfg config.Config, out io.Writer) error {
	log, err := BuildLogger(cfg, out)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      NewStubEngine(log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("stub: listening on %s (api under /api)", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		log.WithError(serveErr).Error("stub: server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("stub: shutdown error")
	}

	return serveErr
}
