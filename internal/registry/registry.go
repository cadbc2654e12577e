// Package registry provides a global registry of target skins.
// Skins register themselves in init() functions, allowing the session to
// resolve the skin behind a start button by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ErrUnknownSkin is returned when a skin ID is not registered.
var ErrUnknownSkin = errors.New("registry: unknown skin")

// Skin maps the three target classes to image handles.
type Skin struct {
	ID    string
	Title string
	Hero  core.ImageID // penalised when hit
	Evil  core.ImageID // rewarded when hit
	Super core.ImageID // rare high-value evil target
}

var (
	skins = make(map[string]Skin)
	mu    sync.RWMutex
)

// Register adds a skin to the registry.
// Panics if a skin with the same ID is already registered.
func Register(s Skin) {
	mu.Lock()
	defer mu.Unlock()

	if s.ID == "" {
		panic("registry: skin without ID")
	}
	if _, exists := skins[s.ID]; exists {
		panic(fmt.Sprintf("registry: skin %q already registered", s.ID))
	}
	skins[s.ID] = s
}

// List returns all registered skins, sorted by ID.
func List() []Skin {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Skin, 0, len(skins))
	for _, s := range skins {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the skin registered under id.
func Get(id string) (Skin, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := skins[id]
	if !ok {
		return Skin{}, fmt.Errorf("%w %q", ErrUnknownSkin, id)
	}
	return s, nil
}

// Exists checks if a skin with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := skins[id]
	return ok
}
