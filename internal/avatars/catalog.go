// Package avatars holds the fixed catalog of preset avatar styles a user can
// pick instead of uploading a photo. The catalog is immutable: entries are
// identified by a stable integer index and never change at runtime.
package avatars

import "errors"

// ErrInvalidPreset reports a preset index outside the catalog bounds.
var ErrInvalidPreset = errors.New("invalid preset index")

// Fill describes the background of a preset avatar.
type Fill struct {
	Name string // human-readable color name, used for terminal rendering
	Hex  string // #rrggbb, stored for UIs that can use it
}

// Style is one preset avatar: a two-letter monogram on a colored background.
type Style struct {
	ID       int
	Initials string
	Fill     Fill
}

var catalog = [...]Style{
	{ID: 0, Initials: "AB", Fill: Fill{Name: "blue", Hex: "#2563eb"}},
	{ID: 1, Initials: "CD", Fill: Fill{Name: "green", Hex: "#059669"}},
	{ID: 2, Initials: "EF", Fill: Fill{Name: "red", Hex: "#e11d48"}},
	{ID: 3, Initials: "GH", Fill: Fill{Name: "yellow", Hex: "#d97706"}},
	{ID: 4, Initials: "IJ", Fill: Fill{Name: "magenta", Hex: "#9333ea"}},
}

// Count returns the number of presets in the catalog.
func Count() int {
	return len(catalog)
}

// Valid reports whether i is a catalog index.
func Valid(i int) bool {
	return i >= 0 && i < len(catalog)
}

// ByIndex returns the preset at index i, or ErrInvalidPreset if i is out of
// range.
func ByIndex(i int) (Style, error) {
	if !Valid(i) {
		return Style{}, ErrInvalidPreset
	}
	return catalog[i], nil
}

// All returns a copy of the catalog in stable order.
func All() []Style {
	out := make([]Style, len(catalog))
	copy(out, catalog[:])
	return out
}
