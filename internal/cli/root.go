// Package cli implements the satwatch command tree. Commands are thin
// wrappers over the n2yo client: they resolve the satellite selector and the
// API credential, invoke one client operation, and render the typed response.
package cli

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/signalsfoundry/satwatch/n2yo"
)

type app struct {
	apiKey  string
	baseURL string
	verbose bool

	clientOnce sync.Once
	client     *n2yo.Client
	clientErr  error

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRootCommand builds the command tree bound to the process streams.
func NewRootCommand() *cobra.Command {
	return newRootCommand(os.Stdin, os.Stdout, os.Stderr)
}

// NewRootCommandWithIO builds the command tree with injected streams. Used by
// tests.
func NewRootCommandWithIO(in io.Reader, out, errOut io.Writer) *cobra.Command {
	return newRootCommand(in, out, errOut)
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		stdin:  in,
		stdout: out,
		stderr: errOut,
	}

	cmd := &cobra.Command{
		Use:           "satwatch",
		Short:         "Track satellites through the N2YO API",
		Long:          "satwatch fetches orbital elements, position predictions, visibility passes, and objects-overhead listings, with local caching and hourly rate limiting.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.apiKey, "api-key", "", "N2YO API credential (falls back to N2YO_API_KEY, the config file, then a prompt)")
	cmd.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "override the API root")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug diagnostics on stderr")
	cmd.PersistentFlags().MarkHidden("base-url")

	cmd.AddCommand(
		newTLECmd(a),
		newPositionsCmd(a),
		newVisualPassesCmd(a),
		newRadioPassesCmd(a),
		newAboveCmd(a),
		newCategoriesCmd(a),
	)

	cmd.PersistentPostRun = func(*cobra.Command, []string) {
		if a.client != nil {
			a.client.Close()
		}
	}

	return cmd
}

// getClient lazily constructs the shared client after credential resolution.
func (a *app) getClient() (*n2yo.Client, error) {
	a.clientOnce.Do(func() {
		key, err := a.resolveAPIKey()
		if err != nil {
			a.clientErr = err
			return
		}

		opts := []n2yo.Option{}
		if a.baseURL != "" {
			opts = append(opts, n2yo.WithBaseURL(a.baseURL))
		}
		if a.verbose {
			logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
			opts = append(opts, n2yo.WithLogger(logger))
		}

		a.client, a.clientErr = n2yo.New(key, opts...)
	})
	return a.client, a.clientErr
}
