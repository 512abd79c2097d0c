package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/menusmith/pkg/core"
	"github.com/spf13/cobra"
)

var (
	materialsJSON bool
)

var materialsCmd = &cobra.Command{
	Use:   "materials [pattern]",
	Short: "List the item materials the editor offers",
	Long:  `List the material vocabulary, optionally filtered by a glob such as "*_INGOT".`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		list, err := core.MatchMaterials(pattern)
		if err != nil {
			fatal("Failed to match materials", err)
		}

		out := cmd.OutOrStdout()
		if materialsJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(list); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, m := range list {
			fmt.Fprintf(out, "%s %s\n", m.Icon, m.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.Flags().BoolVar(&materialsJSON, "json", false, "Output in JSON format")
}
