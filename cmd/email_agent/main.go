// Package main provides the entry point for the interview email generator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "email_agent",
	Short: "Interview invitation email generator",
	Long:  "Email Agent composes personalized interview invitation emails from a parsed job posting and a candidate matching result, via a REST API or a one-shot command.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (yaml, json or toml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
