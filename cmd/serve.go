package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"costsite/pkg/config"
	"costsite/pkg/handlers"
	"costsite/pkg/markdown"
	"costsite/pkg/services"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site live from the content directory",
	Long: `Serve renders every page on request, so edits to the content directory show
up on reload. Admin endpoints (build, sync, publish, create) require a GitHub login.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default: $LISTEN_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	lg := slog.Default()

	siteCfg, err := config.LoadSite(config.RepoPath)
	if err != nil {
		return fmt.Errorf("load site config: %w", err)
	}

	srv := &handlers.Server{
		Repo:       services.NewFileRepository(config.ContentPath, lg.With(slog.String("prefix", "repository"))),
		Site:       siteCfg,
		Markdown:   markdown.New(config.MarkdownEngine),
		Builder:    newBuilder(siteCfg, config.OutputPath),
		ContentDir: config.ContentPath,
		StaticDir:  config.StaticPath,
		Log:        lg.With(slog.String("prefix", "server")),
	}

	addr := config.ListenAddr
	if flagAddr != "" {
		addr = flagAddr
	}
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           handlers.NewRouter(srv, config.SessionSecret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := context.WithCancel(cmd.Context())
	defer stop()

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case s := <-sig:
			lg.Warn("caught signal, stopping", slog.String("signal", s.String()))
			stop()
			return ctx.Err()
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	ewg.Go(func() error {
		lg.Info("starting server", slog.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	ewg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := ewg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	lg.Info("server stopped")
	return nil
}
