package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/booksum/internal/api"
	"github.com/dgallion1/booksum/internal/config"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	opts := config.Defaults()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live HTML preview of the summary and notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.NotesDir, "notesdir", "n", opts.NotesDir, "directory to scan for markdown notes")
	f.StringVarP(&opts.OutputFile, "outputfile", "o", opts.OutputFile, "summary file name, excluded from the scan")
	f.StringVarP(&opts.Format, "format", "f", opts.Format, "summary format: md (mdBook) or git (GitBook)")
	f.StringVarP(&opts.Title, "title", "t", opts.Title, "summary document title")
	f.StringSliceVarP(&opts.Sort, "sort", "s", nil, "chapter titles pinned to the front, in order")
	f.BoolVarP(&opts.MDHeader, "mdheader", "m", opts.MDHeader, "take titles from the first markdown heading")
	f.StringVarP(&opts.Port, "port", "p", opts.Port, "preview server port")

	return cmd
}

func runServe(opts config.Options) error {
	log := slog.Default()

	opts.ApplyBookConfig(log)
	if err := opts.Validate(); err != nil {
		return err
	}
	if info, err := os.Stat(opts.NotesDir); err != nil || !info.IsDir() {
		return fmt.Errorf("notes directory %s not found", opts.NotesDir)
	}

	srv := api.NewServer(opts, log)

	httpServer := &http.Server{
		Addr:         "127.0.0.1:" + opts.Port,
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("serving preview", "addr", "http://"+httpServer.Addr, "notesdir", opts.NotesDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
