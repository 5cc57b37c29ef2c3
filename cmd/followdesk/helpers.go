// Shared helpers for followdesk CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/followdesk/followdesk/internal/sqlite"
	"github.com/followdesk/followdesk/internal/store"
)

// newLogger builds the CLI logger. Verbose gateway output goes to stderr so
// it never mixes with command output on stdout.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	return log
}

// openStore resolves the data directory, builds the persistence gateway, and
// hydrates a store from it. The caller must defer closeStore(s).
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	gw := sqlite.NewGateway(dataDir, newLogger())
	s := store.New(gw, store.WithDebounce(time.Duration(configDebounceMs)*time.Millisecond))
	s.Hydrate()

	if fallback, status := s.StorageStatus(); fallback && status != "" {
		fmt.Fprintln(os.Stderr, status)
	}
	return s, nil
}

// closeStore flushes pending writes and releases the gateway. Errors are
// reported on stderr; a failed close must not mask the command result.
func closeStore(s *store.Store) {
	if err := s.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close store:", err)
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
