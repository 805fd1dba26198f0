package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/deadwood/config"
	"github.com/lixenwraith/deadwood/core"
)

var version = "dev"

func main() {
	// Panic Recovery: ensure the terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash("DEADWOOD", r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "deadwood",
		Short:         "Survive the graveyard: zombie survival in the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger, logFile := setupLogging(cfg.Debug, cfg.LogDir)
			if logFile != nil {
				defer logFile.Close()
			}
			return runPlay(cfg, logger)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newSimCmd(), newVersionCmd())
	return root
}

func newSimCmd() *cobra.Command {
	sim := &cobra.Command{
		Use:   "sim",
		Short: "Run a headless deterministic session with a scripted player and print a JSON summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger, logFile := setupLogging(cfg.Debug, cfg.LogDir)
			if logFile != nil {
				defer logFile.Close()
			}
			return runSim(cfg, logger, cmd.OutOrStdout())
		},
	}
	config.RegisterSimFlags(sim.Flags())
	return sim
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "deadwood %s\n", version)
		},
	}
}

// resolveSeed picks a clock-derived seed when none was configured
func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}
