package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vigenere-backend/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "vigenere",
	Short: "Extended Vigenère cipher over a 192-symbol alphabet",
	Long: `vigenere encodes and decodes text with a passphrase using a tabula recta built
over printable ASCII, printable Latin-1 and the line feed and carriage return
characters. It can run as a command-line tool or as an HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "vigenere.yaml", "Path to the YAML configuration file")
}

// loadConfig reads the file named by --config, if the command has one.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path = ""
	}
	return config.Load(path)
}
