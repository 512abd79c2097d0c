package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/menusmith"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of menusmith",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "menusmith version %s\n", strings.TrimSpace(menusmith.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
