package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/menusmith"
	"github.com/aretw0/menusmith/pkg/core"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	previewMenu  menuFlags
	previewCheck bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the inventory grid and generated YAML for a menu",
	Long: `Preview lays out the menu described by the flags as an inventory grid
followed by the generated configuration. With --check the configuration is
parsed back to make sure it is well-formed YAML.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := previewMenu.build()
		if err != nil {
			fatal("Invalid menu", err)
		}

		m := app.Editor.Snapshot()
		out := cmd.OutOrStdout()
		renderGrid(out, m)
		for _, it := range app.Editor.OutOfRange() {
			fmt.Fprintf(out, "warning: %s in slot %d is outside the menu\n", it.Label(), it.Slot)
		}
		for _, it := range m.Items {
			if !core.KnownMaterial(it.Material) {
				fmt.Fprintf(out, "note: %s is not in the material list, shown as %s\n", it.Material, core.FallbackIcon)
			}
		}

		doc, err := menusmith.Serialize(m)
		if err != nil {
			fatal("Failed to render menu", err)
		}
		fmt.Fprintln(out)
		_, _ = out.Write(doc)

		if previewCheck {
			if err := checkYAML(doc); err != nil {
				fatal("Generated configuration is invalid", err)
			}
			fmt.Fprintln(out, "\nok: configuration parses")
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewMenu.register(previewCmd)
	previewCmd.Flags().BoolVar(&previewCheck, "check", false, "Parse the generated YAML")
}

// renderGrid draws one bracketed cell per slot, nine per row.
func renderGrid(w io.Writer, m core.Menu) {
	fmt.Fprintf(w, "%s (%d slots)\n", m.Title, m.Size)
	cells := core.Grid(m)
	for row := 0; row < core.Rows(m.Size); row++ {
		var b strings.Builder
		for col := 0; col < core.RowWidth; col++ {
			i := row*core.RowWidth + col
			if i >= len(cells) {
				break
			}
			if cells[i].Occupied {
				b.WriteString("[" + cells[i].Icon + "]")
			} else {
				b.WriteString("[  ]")
			}
		}
		fmt.Fprintln(w, b.String())
	}
}

func checkYAML(doc []byte) error {
	var v map[string]any
	if err := yaml.Unmarshal(doc, &v); err != nil {
		return err
	}
	if _, ok := v["items"]; !ok {
		return fmt.Errorf("missing items key")
	}
	return nil
}
