package keymap

import (
	"github.com/dshills/keychord/internal/input/action"
	"github.com/dshills/keychord/internal/input/key"
)

// Binding represents a single chord-to-action mapping.
type Binding struct {
	// Chord is the key press that triggers this binding.
	Chord key.Chord

	// Action is the command to execute.
	// Examples: "cursor.moveDown", "mode.insert"
	Action action.Name
}

// NewBinding creates a new binding with the given chord and action.
func NewBinding(c key.Chord, a action.Name) Binding {
	return Binding{Chord: c, Action: a}
}

// Bind creates a binding from a chord specification such as "C-w".
// It panics on an invalid specification and is meant for compiled-in tables.
func Bind(spec string, a action.Name) Binding {
	return Binding{Chord: key.MustParse(spec), Action: a}
}

// String returns a readable form like "C-w -> mode.window".
func (b Binding) String() string {
	return b.Chord.String() + " -> " + b.Action.String()
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name     string
	Bindings []Binding
}

// GroupByCategory groups bindings by the category of their action,
// preserving first-seen order.
func GroupByCategory(bindings []Binding) []BindingCategory {
	categoryMap := make(map[string][]Binding)
	order := make([]string, 0)

	for _, b := range bindings {
		cat := action.Category(b.Action)
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:     name,
			Bindings: categoryMap[name],
		})
	}
	return result
}
