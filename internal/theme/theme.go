// Package theme maps host theme names to panel color palettes.
package theme

// Palette holds the colors the panel derives from a host theme.
type Palette struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

var palettes = map[string]Palette{
	"light": {Name: "light", Background: "#ffffff", Text: "#323338"},
	"dark":  {Name: "dark", Background: "#1c1f3b", Text: "#f5f6f8"},
	"black": {Name: "black", Background: "#111111", Text: "#ffffff"},
}

// Lookup returns the palette for a host theme name; unknown names fall
// back to light.
func Lookup(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["light"]
}

// All returns every palette in a fixed order.
func All() []Palette {
	return []Palette{palettes["light"], palettes["dark"], palettes["black"]}
}
