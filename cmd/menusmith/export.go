package main

import (
	"context"
	"fmt"

	"github.com/aretw0/menusmith"
	"github.com/spf13/cobra"
)

var (
	exportMenu   menuFlags
	exportDir    string
	exportName   string
	exportStdout bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate a menu file from flags",
	Long: `Export builds a menu from the given flags and writes it atomically to
<dir>/<name>. The format follows the file extension (.yml, .yaml or .json).`,
	Example: `  menusmith export --title Shop --command /shop --size 27 \
    --item "4:DIAMOND:Buy" --lore "4=Click to buy" --action "4=say hi"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := exportMenu.build(
			menusmith.WithExportDir(exportDir),
			menusmith.WithExportName(exportName),
		)
		if err != nil {
			fatal("Invalid menu", err)
		}

		if exportStdout {
			data, _, err := app.Exporter.Render(app.Editor.Snapshot(), app.ExportName)
			if err != nil {
				fatal("Failed to render menu", err)
			}
			_, _ = cmd.OutOrStdout().Write(data)
			return
		}

		path, err := app.Exporter.Export(context.Background(), app.Editor.Snapshot(), app.ExportName)
		if err != nil {
			fatal("Failed to export menu", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Menu exported to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportMenu.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Output directory")
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "menu.yml", "Output file name")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Print the document instead of writing a file")
}
