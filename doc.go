// Package menusmith is the Composition Root for the menusmith application.
//
// It connects the menu document model (pkg/core) with the output adapters
// (pkg/adapters/fs) and exposes them through functional options.
//
// A menu is an inventory GUI for DeluxeMenus: a title, the command that opens
// it, a size in slots (a multiple of 9 up to 54), an optional open
// requirement block and one item per slot. The Editor is the only writer of
// the menu, so the one-item-per-slot rule holds after every change.
//
// Usage:
//
//	app, err := menusmith.New(
//		menusmith.WithTitle("Shop"),
//		menusmith.WithOpenCommand("/shop"),
//		menusmith.WithLogger(logger),
//	)
//
//	app.Editor.AddItem(menusmith.Item{Slot: 4, Material: "DIAMOND", DisplayName: "Buy"})
//	out, err := menusmith.Serialize(app.Editor.Snapshot())
package menusmith
