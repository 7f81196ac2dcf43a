// Package main implements the prj CLI for managing project records backed
// by an in-memory or flat-file store.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prj/internal/config"
	"github.com/fyrsmithlabs/prj/internal/logging"
	"github.com/fyrsmithlabs/prj/internal/store"
)

var (
	configPath string
	backend    string
	storeDir   string

	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prj",
	Short: "Manage project records",
	Long: `prj manages project records (name, area, cost) in a local store.

Records live either in memory (gone when the process exits) or as one file
per record in a directory. The backend and directory come from the config
file, PRJ_* environment variables, or the --backend and --dir flags.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/prj/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "store backend: file or memory")
	rootCmd.PersistentFlags().StringVar(&storeDir, "dir", "", "record directory for the file backend")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(tuiCmd)
}

// setup loads configuration, applies flag overrides, and builds the logger
// and store.
func setup() (*config.Config, *zap.Logger, store.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if backend != "" {
		cfg.Store.Backend = backend
	}
	if storeDir != "" {
		cfg.Store.Dir = storeDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}

	st, err := newStore(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, st, nil
}

// newStore builds the configured backend.
func newStore(cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	case config.BackendFile:
		return store.NewFileStore(cfg.Store.Dir, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// parseCost parses a cost argument, tolerating a comma decimal separator.
func parseCost(s string) (float64, error) {
	cost, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cost %q", s)
	}
	return cost, nil
}

// reportFailures prints enumeration scan failures to stderr.
func reportFailures(failures []store.ScanFailure) {
	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "warning: skipped %s: %v\n", f.Key, f.Err)
	}
}
