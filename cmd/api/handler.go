package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktrack/internal/auth/token"
	authUsecase "tasktrack/internal/auth/usecase"
	taskUsecase "tasktrack/internal/task/usecase"
	"tasktrack/pkg/config"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	taskUsecase taskUsecase.TaskUsecase
	tokens      *token.Manager
	config      *config.Config
	logger      *zap.Logger
}

func NewHandler(authUc authUsecase.AuthUsecase, taskUc taskUsecase.TaskUsecase, tokens *token.Manager, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		authUsecase: authUc,
		taskUsecase: taskUc,
		tokens:      tokens,
		config:      cfg,
		logger:      logger,
	}
}

// Start serves the API until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Start(ctx context.Context, addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger(h.logger))
	r.Use(CORS(h.config.AllowedOrigin))

	SetupRoutes(r, h.authUsecase, h.taskUsecase, h.tokens)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
