package menusmith_test

import (
	"fmt"
	"log"

	"github.com/aretw0/menusmith"
)

// Example_basic composes a one-item shop menu and prints its configuration.
func Example_basic() {
	app, err := menusmith.New(
		menusmith.WithTitle("Shop"),
		menusmith.WithOpenCommand("/shop"),
	)
	if err != nil {
		log.Fatal(err)
	}

	_, err = app.Editor.AddItem(menusmith.Item{
		Slot:        4,
		Material:    "DIAMOND",
		DisplayName: "Buy",
		Lore:        []string{"Click to buy"},
		Actions:     []string{"say hi"},
	})
	if err != nil {
		log.Fatal(err)
	}

	out, err := menusmith.Serialize(app.Editor.Snapshot())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(out))
	// Output:
	// menu_title: 'Shop'
	// open_command: '/shop'
	// size: 27
	// items:
	//   4:
	//     material: DIAMOND
	//     display_name: 'Buy'
	//     lore:
	//       - 'Click to buy'
	//     left_click_commands:
	//       - 'say hi'
}

// Example_slotReplacement shows that adding to an occupied slot replaces its item.
func Example_slotReplacement() {
	app, err := menusmith.New()
	if err != nil {
		log.Fatal(err)
	}

	_, _ = app.Editor.AddItem(menusmith.Item{Slot: 0, Material: "STONE"})
	_, _ = app.Editor.AddItem(menusmith.Item{Slot: 0, Material: "BARRIER"})

	for _, it := range app.Editor.Items() {
		fmt.Println(it.Slot, it.Material)
	}
	// Output:
	// 0 BARRIER
}
