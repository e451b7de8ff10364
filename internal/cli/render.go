package cli

import (
	"fmt"
	"io"

	"github.com/dchizhov/profcard/internal/avatars"
	"github.com/dchizhov/profcard/internal/models"
	"github.com/fatih/color"
)

// fillColors maps catalog fill names to terminal backgrounds. Unknown names
// fall back to white.
var fillColors = map[string]color.Attribute{
	"blue":    color.BgBlue,
	"green":   color.BgGreen,
	"red":     color.BgRed,
	"yellow":  color.BgYellow,
	"magenta": color.BgMagenta,
}

func renderBadge(w io.Writer, initials string, fill avatars.Fill) {
	bg, ok := fillColors[fill.Name]
	if !ok {
		bg = color.BgWhite
	}
	badge := color.New(bg, color.FgHiWhite, color.Bold)
	badge.Fprintf(w, " %s ", initials)
}

// renderCard prints the profile card: the resolved avatar followed by the
// field values. Resolution is re-evaluated on every call.
func renderCard(w io.Writer, p models.Profile, a models.Avatar) {
	d := models.ResolveDisplay(a, p.Name)

	switch d.Kind {
	case models.DisplayPhoto:
		fmt.Fprintf(w, "  photo: %s\n", d.PhotoRef)
	case models.DisplayPreset:
		fmt.Fprint(w, "  ")
		renderBadge(w, d.Preset.Initials, d.Preset.Fill)
		fmt.Fprintf(w, "  (preset %d, %s)\n", d.Preset.ID, d.Preset.Fill.Name)
	case models.DisplayInitials:
		fmt.Fprintf(w, "  ( %s )\n", d.Initials)
	default:
		fmt.Fprintln(w, "  ( no photo )")
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  name:   %s\n", p.Name)
	fmt.Fprintf(w, "  email:  %s\n", p.Email)
	fmt.Fprintf(w, "  mobile: %s\n", p.Mobile)
	fmt.Fprintf(w, "  branch: %s\n", p.Branch)
	fmt.Fprintf(w, "  year:   %s\n", p.Year)
	fmt.Fprintf(w, "  bio:    %s\n", p.Bio)
}

// renderPresetList prints the catalog, one preset per line.
func renderPresetList(w io.Writer) {
	for _, s := range avatars.All() {
		fmt.Fprintf(w, "  %d) ", s.ID)
		renderBadge(w, s.Initials, s.Fill)
		fmt.Fprintf(w, "  %s\n", s.Fill.Name)
	}
}
