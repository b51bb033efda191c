package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/study-tracker/internal/dashboard"
	"github.com/ziadkadry99/study-tracker/internal/notifications"
	"github.com/ziadkadry99/study-tracker/internal/server"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long:  `Serves the study dashboard over HTTP. Changes are pushed to every open browser tab over a websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		port := a.cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}
		open := a.cfg.Server.OpenBrowser
		if cmd.Flags().Changed("open") {
			open = serveOpen
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		emitter := notifications.NewEmitter(a.cfg.Notifications.HideAfter, a.cfg.Notifications.RemoveAfter)
		page := dashboard.NewPage(dashboard.NewHub())
		tr, err := a.newTracker(ctx, page, emitter)
		if err != nil {
			return err
		}
		tr.RenderAll()

		srv := server.New(server.Config{
			Port:       port,
			AllowAll:   a.cfg.Server.AllowAllOrigins,
			LogRequest: verbose,
		}, a.db)
		dashboard.New(tr, page, emitter).RegisterRoutes(srv.Router())

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d", port)
		fmt.Fprintf(os.Stderr, "studytracker %s serving on %s\n", Version, url)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", a.cfg.DBPath())
		fmt.Fprintf(os.Stderr, "  Categories: %d\n", a.catalog.Len())
		if open {
			go openBrowser(url)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", true, "open the dashboard in the default browser")
	rootCmd.AddCommand(serveCmd)
}
