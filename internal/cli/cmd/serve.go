package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hH-13/tilde/internal/infrastructure/httpapi"
	"github.com/hH-13/tilde/internal/logging"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve tilde over HTTP for use as a browser search engine",
	Long: `Start an HTTP server that resolves queries into redirects.

Endpoints:
  GET /?q=<query>               redirect to the destination, or a page that
                                opens every destination of a script
  GET /suggest?q=<query>        suggestions as JSON (format=opensearch for
                                the browser suggestion format)
  GET /commands                 the named commands as JSON
  GET /opensearch.xml           OpenSearch description for browsers

The config file is watched and reloaded while serving.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (default from [server].listen)")
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listen := serveListen
	if listen == "" {
		listen = app.Config().Server.Listen
	}

	srv := httpapi.NewServer(ctx, app.Omnibox(nil), listen)
	if err := app.Watch(func() { srv.SetOmnibox(app.Omnibox(nil)) }); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watch unavailable")
	}

	return srv.Run(ctx)
}
