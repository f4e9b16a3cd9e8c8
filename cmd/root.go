package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

const defaultConfigPath = "config.toml"

// NewRootCmd собирает CLI сервиса доступности
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "availabilityd",
		Short:         "Cleaner availability service: slot browsing, next-available precompute and ranking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config.toml")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newConsumeCmd(&configPath))
	root.AddCommand(newRefreshCmd(&configPath))
	root.AddCommand(newVersionCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
