package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/mailchimp-organizer/internal/infra/http/handlers"
	"github.com/xavierca1/mailchimp-organizer/internal/infra/http/router"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve conversions over HTTP",
	Long: `Starts the HTTP API:

  POST /convert             multipart field "file", pipeline chosen by file name
  POST /convert/roster      force the roster pipeline
  POST /convert/volunteers  force the volunteer pipeline
  GET  /health
  GET  /metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	a := newApp(cfg, log, prometheus.DefaultRegisterer)
	defer a.Close()

	var queueChecker handlers.QueueChecker
	if a.Queue != nil {
		queueChecker = a.Queue
	}

	h := router.New(
		handlers.NewConvertHandler(a.Convert, cfg.Server.MaxUploadMB<<20),
		handlers.NewHealthHandler(queueChecker, cfg.Mail.Enabled()),
		router.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Logger:         log,
		},
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
