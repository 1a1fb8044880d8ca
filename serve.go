package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"vigenere-backend/handlers"
	"vigenere-backend/logging"
	"vigenere-backend/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Starts an HTTP server exposing encode, decode and alphabet endpoints under /api/v1 and Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Server.Port = port
		}

		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		logger := logging.New(level)

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		gin.SetMode(gin.ReleaseMode)
		h := handlers.NewCipherHandler(table, handlers.Options{
			DefaultKey:    cfg.Cipher.DefaultKey,
			MaxTextLength: cfg.Cipher.MaxTextLength,
			Logger:        logger,
			Metrics:       metrics.NewRecorder(reg),
		})
		router := handlers.NewRouter(h, handlers.RouterConfig{
			AllowOrigins: cfg.Server.AllowOrigins,
			Logger:       logger,
			Gatherer:     reg,
		})

		srv := &http.Server{
			Addr:    ":" + cfg.Server.Port,
			Handler: router,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server starting", "addr", srv.Addr, "version", version)
			logger.Info("api endpoints",
				"encode", "POST /api/v1/cipher/encode",
				"decode", "POST /api/v1/cipher/decode",
				"alphabet", "GET /api/v1/alphabet",
				"health", "GET /api/v1/health",
				"metrics", "GET /metrics",
			)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case sig := <-shutdown:
			logger.Info("shutdown started", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", cfg.Server.ShutdownTimeout, "error", err)
				return srv.Close()
			}
			logger.Info("server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides server.port and PORT)")
}
