package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/menusmith"
	"github.com/aretw0/menusmith/pkg/core"
	"github.com/spf13/cobra"
)

// menuFlags describes a menu on the command line.
type menuFlags struct {
	title           string
	command         string
	size            int
	requirement     string
	requirementFile string
	items           []string
	lore            []string
	actions         []string
}

func (f *menuFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.title, "title", core.DefaultTitle, "Menu title")
	flags.StringVar(&f.command, "command", core.DefaultOpenCommand, "Command that opens the menu")
	flags.IntVar(&f.size, "size", core.DefaultSize, "Slot count (9, 18, 27, 36, 45 or 54)")
	flags.StringVar(&f.requirement, "requirement", "", "Open requirement block (raw YAML)")
	flags.StringVar(&f.requirementFile, "requirement-file", "", "Read the open requirement block from a file")
	flags.StringArrayVarP(&f.items, "item", "i", nil, "Item as SLOT:MATERIAL[:DISPLAY NAME] (repeatable)")
	flags.StringArrayVar(&f.lore, "lore", nil, "Lore line as SLOT=TEXT (repeatable)")
	flags.StringArrayVar(&f.actions, "action", nil, "Click command as SLOT=COMMAND (repeatable)")
}

// build creates an application holding the described menu.
func (f *menuFlags) build(extra ...menusmith.Option) (*menusmith.App, error) {
	requirement := f.requirement
	if f.requirementFile != "" {
		data, err := os.ReadFile(f.requirementFile)
		if err != nil {
			return nil, fmt.Errorf("read requirement file: %w", err)
		}
		requirement = string(data)
	}

	opts := []menusmith.Option{
		menusmith.WithLogger(slog.Default()),
		menusmith.WithTitle(f.title),
		menusmith.WithOpenCommand(f.command),
		menusmith.WithSize(f.size),
		menusmith.WithOpenRequirement(requirement),
	}
	app, err := menusmith.New(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}

	for _, spec := range f.items {
		item, err := parseItemSpec(spec)
		if err != nil {
			return nil, err
		}
		if _, err := app.Editor.AddItem(item); err != nil {
			return nil, fmt.Errorf("item %q: %w", spec, err)
		}
	}

	if err := attachLines(app.Editor, f.lore, func(it *core.Item, line string) {
		it.Lore = append(it.Lore, line)
	}); err != nil {
		return nil, fmt.Errorf("lore: %w", err)
	}
	if err := attachLines(app.Editor, f.actions, func(it *core.Item, line string) {
		it.Actions = append(it.Actions, line)
	}); err != nil {
		return nil, fmt.Errorf("action: %w", err)
	}

	return app, nil
}

// parseItemSpec parses SLOT:MATERIAL[:DISPLAY NAME]. The display name may contain colons.
func parseItemSpec(spec string) (core.Item, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return core.Item{}, fmt.Errorf("item %q: expected SLOT:MATERIAL[:DISPLAY NAME]", spec)
	}
	slot, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Item{}, fmt.Errorf("item %q: slot is not a number", spec)
	}
	material := strings.ToUpper(strings.TrimSpace(parts[1]))
	if material == "" {
		material = core.DefaultMaterial
	}
	item := core.Item{Slot: slot, Material: material}
	if len(parts) == 3 {
		item.DisplayName = parts[2]
	}
	return item, nil
}

// parseSlotLine parses SLOT=TEXT.
func parseSlotLine(spec string) (int, string, error) {
	slotPart, text, ok := strings.Cut(spec, "=")
	if !ok {
		return 0, "", fmt.Errorf("%q: expected SLOT=TEXT", spec)
	}
	slot, err := strconv.Atoi(strings.TrimSpace(slotPart))
	if err != nil {
		return 0, "", fmt.Errorf("%q: slot is not a number", spec)
	}
	return slot, text, nil
}

func attachLines(editor *core.Editor, specs []string, add func(*core.Item, string)) error {
	for _, spec := range specs {
		slot, text, err := parseSlotLine(spec)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		item, ok := editor.ItemAt(slot)
		if !ok {
			return fmt.Errorf("%q: no item in slot %d", spec, slot)
		}
		add(&item, text)
		if _, err := editor.UpdateItem(item); err != nil {
			return err
		}
	}
	return nil
}
