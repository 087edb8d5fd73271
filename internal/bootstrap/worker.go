package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrm/internal/app"

	"go.uber.org/zap"
)

// RunWorker blocks until SIGINT or SIGTERM, then flushes the application
// with a graceful-shutdown window.
func RunWorker(application *app.App, auditLogger AuditLogger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	zap.L().Info("Shutdown signal received", zap.String("signal", sig.String()))

	// Audit log BEFORE shutdown
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "WORKER_SHUTDOWN",
		Message: "Worker is shutting down",
		Meta: map[string]any{
			"signal": sig.String(),
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Store.Flush(ctx); err != nil {
		zap.L().Error("snapshot flush on shutdown failed", zap.Error(err))
	}
	if err := application.Close(); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
	} else {
		zap.L().Info("Worker exited gracefully")
	}
}
