package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rtpose/internal/config"
	"rtpose/internal/httpapi"
	"rtpose/internal/posenet"
)

// runServe owns the daemon lifecycle: construct the net, initialize it and
// run a warm-up forward pass on a dedicated OS thread, then serve the
// operational HTTP endpoints until SIGINT/SIGTERM.
func runServe(cmd *cobra.Command, cfg config.Config) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("component", "rtpose").Logger()

	net, err := posenet.New(posenet.NetConfig{
		PlanPath:       cfg.PlanPath,
		GPUID:          cfg.GPUID,
		OutputName:     cfg.OutputName,
		DisableLogging: cfg.DisableLogging,
	}, logger)
	if err != nil {
		return err
	}

	// Execution contexts are thread-affine: initialization, the warm-up
	// pass and teardown all happen on this one locked thread.
	initDone := make(chan error, 1)
	shutdown := make(chan struct{})
	netClosed := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer close(netClosed)
		if err := net.InitOnThread(); err != nil {
			initDone <- err
			return
		}
		if err := net.Forward(posenet.NewInputTensor()); err != nil {
			initDone <- err
			return
		}
		initDone <- nil
		<-shutdown
		if err := net.Close(); err != nil {
			logger.Error().Err(err).Msg("net teardown")
		}
	}()

	if err := <-initDone; err != nil {
		close(shutdown)
		<-netClosed
		return err
	}
	out := net.OutputBlob()
	logger.Info().
		Str("plan", cfg.PlanPath).
		Int("gpu", cfg.GPUID).
		Ints("output_dims", out.Dims()).
		Msg("net ready, warm-up pass complete")

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(net, version)}
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("http listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM).
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown")
	}
	close(shutdown)
	<-netClosed
	return nil
}
