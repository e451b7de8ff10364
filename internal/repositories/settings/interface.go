// Package settings is the persistence adapter for the profile card: a
// string-keyed store of named values with one fixed key per profile field.
package settings

import (
	"context"
)

// Fixed storage keys. One key per field; the two avatar keys are mutually
// exclusive and never both present.
const (
	KeyName         = "userName"
	KeyEmail        = "userEmail"
	KeyMobile       = "userMobile"
	KeyBranch       = "userBranch"
	KeyYear         = "userYear"
	KeyBio          = "userBio"
	KeyAvatarURL    = "userAvatarUrl"
	KeyAvatarPreset = "userAvatarPreset"
)

// Repository is a key-value view over the durable settings store.
type Repository interface {
	// Get returns the stored value for key. The second result is false when
	// the key is absent; absence is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// List returns all stored key/value pairs.
	List(ctx context.Context) (map[string]string, error)

	// Clear removes every stored key.
	Clear(ctx context.Context) error

	// Update runs fn against a transactional view of the repository: either
	// every write fn makes is applied, or none are.
	Update(ctx context.Context, fn func(Repository) error) error
}
