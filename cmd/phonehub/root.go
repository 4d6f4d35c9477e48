package main

import (
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:          "phonehub",
	Short:        "PhoneHub customer support chatbot",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional file of KEY=VALUE settings")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
}
