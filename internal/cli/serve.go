package cli

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/panelgrid/panelgrid/pkg/host"
	"github.com/panelgrid/panelgrid/pkg/panel"
)

// newServeCmd creates the serve command: host panel sessions over HTTP.
// Each session builds the scoreboard scene with players taken from the
// session parameters (comma-separated "players" key).
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host panel sessions over HTTP",
		Long: `Start the session host. Clients create sessions with POST /sessions and
replay the recorded scene operations from GET /sessions/{id}/journal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			app := func(sess *host.Session) error {
				players := []string{"Red", "Blue", "Green"}
				if p := sess.Params["players"]; p != "" {
					players = strings.Split(p, ",")
				}
				_, err := buildScoreboard(panel.New(sess.Backend), players)
				return err
			}

			server := host.NewServer(app, logger)
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           server.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("host listening", "addr", addr)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
