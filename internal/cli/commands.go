package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dchizhov/profcard/internal/avatars"
	"github.com/dchizhov/profcard/internal/models"
)

// imageExts mirrors the image-only file picker of a form upload control:
// other extensions are refused at the prompt layer, not by the service.
var imageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
}

func isImagePath(path string) bool {
	_, ok := imageExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Show renders the profile card with the resolved avatar.
func (a *App) Show(ctx context.Context) error {
	renderCard(a.out, a.profile, a.avatar)
	return nil
}

// Edit walks through every field, updating only the in-memory state. A blank
// answer keeps the current value, "-" clears it. Nothing is persisted until
// the save command.
func (a *App) Edit(ctx context.Context) error {
	for _, f := range []models.Field{models.FieldName, models.FieldEmail, models.FieldMobile} {
		v, err := a.promptKeepClear(string(f), a.profile.Get(f))
		if err != nil {
			return err
		}
		a.profile.Set(f, v)
	}

	branch, err := GetChoice(a.reader, "Branch:", a.profile.Branch, models.Branches, a.out)
	if err != nil {
		return err
	}
	a.profile.Set(models.FieldBranch, branch)

	year, err := GetChoice(a.reader, "Year:", a.profile.Year, models.Years, a.out)
	if err != nil {
		return err
	}
	a.profile.Set(models.FieldYear, year)

	bio, err := GetMultiline(a.reader, "Bio (blank keeps current):", a.out)
	if err != nil {
		return err
	}
	if bio != "" {
		a.profile.Set(models.FieldBio, bio)
	}

	printlnFn("Fields updated in memory. Use 'save' to persist them.")
	return nil
}

// SetField edits one field by name. The entered value replaces the old one
// unconditionally, empty included; any string is accepted.
func (a *App) SetField(ctx context.Context, field string) error {
	f := models.Field(strings.ToLower(field))
	known := false
	for _, candidate := range models.Fields {
		if candidate == f {
			known = true
			break
		}
	}
	if !known {
		printlnFn("Unknown field:", field)
		return nil
	}

	v, err := GetSimpleText(a.reader, "Enter "+string(f), a.out)
	if err != nil {
		return err
	}
	a.profile.Set(f, v)
	return nil
}

func (a *App) promptKeepClear(label, current string) (string, error) {
	v, err := GetSimpleText(a.reader, "Enter "+label+" (blank keeps "+strconv.Quote(current)+", '-' clears)", a.out)
	if err != nil {
		return "", err
	}
	switch v {
	case "":
		return current, nil
	case "-":
		return "", nil
	}
	return v, nil
}

// AttachPhoto selects an uploaded photo, prompting for a path when none was
// given. An empty path is a silent no-op, matching a file picker dismissed
// without a selection.
func (a *App) AttachPhoto(ctx context.Context, path string) error {
	if path == "" {
		var err error
		path, err = GetSimpleText(a.reader, "Enter image path", a.out)
		if err != nil {
			return err
		}
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if !isImagePath(path) {
		printlnFn("Not an image file:", path)
		return nil
	}

	avatar, err := a.service.AttachPhoto(ctx, path)
	if err != nil {
		printlnFn("Could not attach photo:", err)
		return err
	}
	a.avatar = avatar
	printlnFn("Photo updated.")
	return nil
}

// ListPresets prints the preset avatar catalog.
func (a *App) ListPresets(ctx context.Context) error {
	renderPresetList(a.out)
	return nil
}

// SelectPreset selects a catalog avatar by index.
func (a *App) SelectPreset(ctx context.Context, arg string) error {
	index, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Not a preset number:", arg)
		return nil
	}

	avatar, err := a.service.SelectPreset(ctx, index)
	if err != nil {
		if errors.Is(err, avatars.ErrInvalidPreset) {
			printlnFn("No such preset. Use 'presets' to list them.")
			return nil
		}
		printlnFn("Could not select preset:", err)
		return err
	}
	a.avatar = avatar
	printlnFn("Preset selected.")
	return nil
}

// RemovePhoto clears the avatar selection. Calling it with nothing selected
// is a no-op.
func (a *App) RemovePhoto(ctx context.Context) error {
	avatar, err := a.service.RemovePhoto(ctx)
	if err != nil {
		printlnFn("Could not remove photo:", err)
		return err
	}
	a.avatar = avatar
	printlnFn("Photo removed.")
	return nil
}

// Save persists the six text fields and acknowledges completion.
func (a *App) Save(ctx context.Context) error {
	if err := a.service.SaveProfile(ctx, a.profile); err != nil {
		printlnFn("Could not save profile:", err)
		return err
	}
	printlnFn("Profile saved.")
	return nil
}
