// Package catalog holds the fixed, compiled-in list of quiz items.
package catalog

import "strings"

// Item is a single quiz entry. Name doubles as the expected answer.
type Item struct {
	Name     string
	ImageKey string
	Symbol   string
	Number   int // atomic number
}

// Matches reports whether text names the item, ignoring case only.
// Surrounding whitespace is not stripped.
func (it Item) Matches(text string) bool {
	return strings.ToLower(text) == strings.ToLower(it.Name)
}

var elements = []Item{
	{Name: "Carbon", ImageKey: "Carbon", Symbol: "C", Number: 6},
	{Name: "Gold", ImageKey: "Gold", Symbol: "Au", Number: 79},
	{Name: "Chlorine", ImageKey: "Chlorine", Symbol: "Cl", Number: 17},
	{Name: "Sodium", ImageKey: "Sodium", Symbol: "Na", Number: 11},
}

// Elements returns a copy of the element catalog in its fixed order.
func Elements() []Item {
	out := make([]Item, len(elements))
	copy(out, elements)
	return out
}

// Lookup resolves an image key to its catalog item.
func Lookup(imageKey string) (Item, bool) {
	for _, it := range elements {
		if it.ImageKey == imageKey {
			return it, true
		}
	}
	return Item{}, false
}
