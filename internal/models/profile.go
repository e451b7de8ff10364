// Package models defines the profile card types and the avatar display
// resolution.
package models

// Field names an editable profile field.
type Field string

const (
	FieldName   Field = "name"
	FieldEmail  Field = "email"
	FieldMobile Field = "mobile"
	FieldBranch Field = "branch"
	FieldYear   Field = "year"
	FieldBio    Field = "bio"
)

// Fields lists the editable fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMobile, FieldBranch, FieldYear, FieldBio}

// Branches and Years are the fixed choices offered by the editor. Stored
// values are not validated against them: whatever is in the store is loaded
// and rendered as-is.
var (
	Branches = []string{"CSE", "IT", "AIDS", "E&TC"}
	Years    = []string{"First Year", "Second Year", "Third Year", "Final Year"}
)

// Profile holds the six editable text fields. Zero value is a blank profile.
type Profile struct {
	Name   string
	Email  string
	Mobile string
	Branch string
	Year   string
	Bio    string
}

// Set replaces the value of field f unconditionally. Any string is accepted,
// including empty. Unknown fields are ignored.
func (p *Profile) Set(f Field, v string) {
	switch f {
	case FieldName:
		p.Name = v
	case FieldEmail:
		p.Email = v
	case FieldMobile:
		p.Mobile = v
	case FieldBranch:
		p.Branch = v
	case FieldYear:
		p.Year = v
	case FieldBio:
		p.Bio = v
	}
}

// Get returns the current value of field f, or "" for unknown fields.
func (p *Profile) Get(f Field) string {
	switch f {
	case FieldName:
		return p.Name
	case FieldEmail:
		return p.Email
	case FieldMobile:
		return p.Mobile
	case FieldBranch:
		return p.Branch
	case FieldYear:
		return p.Year
	case FieldBio:
		return p.Bio
	}
	return ""
}
