package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inotes/inotes/internal/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the inotes version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inotes version %s\n", server.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
