package shooter

import "github.com/vovakirdan/tui-shooter/internal/registry"

// Built-in skins. Each start button swaps which side is the villain.
func init() {
	registry.Register(registry.Skin{
		ID:    "burger",
		Title: "Burger Mode",
		Hero:  "taco",
		Evil:  "burger",
		Super: "super-burger",
	})
	registry.Register(registry.Skin{
		ID:    "taco",
		Title: "Taco Mode",
		Hero:  "burger",
		Evil:  "taco",
		Super: "super-taco",
	})
}
