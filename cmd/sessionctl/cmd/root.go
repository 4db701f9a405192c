package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"ivr-server/internal/bootstrap"
	"ivr-server/internal/config"
	"ivr-server/internal/observability"
	"ivr-server/internal/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sessionctl",
	Short: "Inspect and prime IVR caller sessions",
	Long: `Operator tooling over the caller session store. Reads SESSION_BACKEND and the
matching DB_* or BBOLT_PATH settings from the environment (env.local outside production).`,
	SilenceUsage: true,
}

// openStore is replaced in tests.
var openStore = func() (store.Storer, error) {
	cfg, err := config.LoadSessionOnly()
	if err != nil {
		return nil, err
	}
	return bootstrap.OpenSessionStore(cfg.Session, cfg.Database, observability.NewLogger())
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// withStore opens the store for the duration of fn.
func withStore(fn func(s store.Storer) error) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer s.Close()
	return fn(s)
}

func printSession(w io.Writer, session store.Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(session)
}
