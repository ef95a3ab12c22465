package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "routined",
		Short:   "routined - daily routine and streak tracker for the terminal",
		Version: Version,
		RunE:    runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to the yaml config file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the routined version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("routined %s\n", Version)
		},
	}
}

var configPath string

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "routined.yaml"
	}
	return home + "/.routined/config.yaml"
}
