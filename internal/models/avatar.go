package models

import (
	"strings"
	"unicode"

	"github.com/dchizhov/profcard/internal/avatars"
)

// AvatarMode tags the active avatar source.
type AvatarMode int

const (
	// AvatarNone means no explicit selection; display falls back to
	// name-derived initials or a placeholder.
	AvatarNone AvatarMode = iota
	// AvatarUploaded means a user-supplied photo, held as a reference to a
	// local copy of the file.
	AvatarUploaded
	// AvatarPreset means a catalog preset selected by index.
	AvatarPreset
)

// Avatar is a tagged variant over the three avatar sources. Exactly one mode
// is active at a time; constructing a new value replaces the previous mode
// entirely, so an uploaded reference and a preset index can never coexist.
type Avatar struct {
	mode     AvatarMode
	photoRef string
	preset   int
}

// NoAvatar returns the empty selection.
func NoAvatar() Avatar {
	return Avatar{mode: AvatarNone}
}

// UploadedAvatar returns a selection pointing at a local photo copy.
func UploadedAvatar(ref string) Avatar {
	return Avatar{mode: AvatarUploaded, photoRef: ref}
}

// PresetAvatar returns a selection of the catalog preset at index i.
// The index is not range-checked here; services.SelectPreset validates
// against the catalog before constructing one.
func PresetAvatar(i int) Avatar {
	return Avatar{mode: AvatarPreset, preset: i}
}

// Mode returns the active source tag.
func (a Avatar) Mode() AvatarMode {
	return a.mode
}

// PhotoRef returns the uploaded photo reference when mode is AvatarUploaded.
func (a Avatar) PhotoRef() (string, bool) {
	return a.photoRef, a.mode == AvatarUploaded
}

// Preset returns the catalog index when mode is AvatarPreset.
func (a Avatar) Preset() (int, bool) {
	return a.preset, a.mode == AvatarPreset
}

// DisplayKind classifies what the card should render in the photo slot.
type DisplayKind int

const (
	DisplayPlaceholder DisplayKind = iota
	DisplayPhoto
	DisplayPreset
	DisplayInitials
)

// Display is the resolved visual representation of an avatar selection.
// Exactly the field matching Kind is meaningful.
type Display struct {
	Kind     DisplayKind
	PhotoRef string        // DisplayPhoto
	Preset   avatars.Style // DisplayPreset
	Initials string        // DisplayInitials
}

// ResolveDisplay computes what to render for the given selection, falling
// back to the profile name. Pure function of its inputs; priority order:
//
//  1. uploaded photo reference
//  2. preset, if the stored index still resolves within the catalog
//  3. initials derived from the name
//  4. placeholder
func ResolveDisplay(a Avatar, name string) Display {
	if ref, ok := a.PhotoRef(); ok && ref != "" {
		return Display{Kind: DisplayPhoto, PhotoRef: ref}
	}
	if i, ok := a.Preset(); ok {
		if style, err := avatars.ByIndex(i); err == nil {
			return Display{Kind: DisplayPreset, Preset: style}
		}
	}
	if initials := Initials(name); initials != "" {
		return Display{Kind: DisplayInitials, Initials: initials}
	}
	return Display{Kind: DisplayPlaceholder}
}

// Initials derives a monogram from a full name: the first character of each
// of the first two whitespace-separated tokens, uppercased. Returns "" for a
// blank name.
func Initials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) > 2 {
		tokens = tokens[:2]
	}
	var b strings.Builder
	for _, tok := range tokens {
		r := []rune(tok)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
