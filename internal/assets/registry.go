package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"sync"
)

//go:embed themes/*.yaml
var themeFS embed.FS

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

func init() {
	entries, err := themeFS.ReadDir("themes")
	if err != nil {
		panic(fmt.Sprintf("assets: read embedded themes: %v", err))
	}
	for _, e := range entries {
		data, err := themeFS.ReadFile(path.Join("themes", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("assets: read %s: %v", e.Name(), err))
		}
		t, err := ParseTheme(data)
		if err != nil {
			panic(err)
		}
		Register(t)
	}
}

// Register adds a theme to the registry.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("assets: theme %q already registered", t.ID))
	}
	themes[t.ID] = t
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(themes))
	for id, t := range themes {
		result = append(result, ThemeInfo{ID: id, Title: t.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the theme with the given ID.
func Lookup(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("assets: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}

// Next returns the ID following id in sorted order, wrapping around.
// Used by the theme toggle key.
func Next(id string) string {
	list := List()
	if len(list) == 0 {
		return id
	}
	for i, info := range list {
		if info.ID == id {
			return list[(i+1)%len(list)].ID
		}
	}
	return list[0].ID
}
