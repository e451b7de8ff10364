// Package services implements the profile card operations on top of the
// settings repository: loading, explicit save, and the avatar selection
// transitions.
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/dchizhov/profcard/internal/avatars"
	"github.com/dchizhov/profcard/internal/filex"
	"github.com/dchizhov/profcard/internal/logging"
	"github.com/dchizhov/profcard/internal/models"
	"github.com/dchizhov/profcard/internal/repositories/settings"
	"github.com/google/uuid"
)

// fieldKeys maps each editable text field to its fixed storage key.
var fieldKeys = map[models.Field]string{
	models.FieldName:   settings.KeyName,
	models.FieldEmail:  settings.KeyEmail,
	models.FieldMobile: settings.KeyMobile,
	models.FieldBranch: settings.KeyBranch,
	models.FieldYear:   settings.KeyYear,
	models.FieldBio:    settings.KeyBio,
}

// ProfileService loads and persists the profile card.
//
// Text fields are written only by SaveProfile; the avatar operations write
// eagerly and atomically, so the two avatar keys are never both present in
// the store.
type ProfileService interface {
	// Load reads every stored field once. Absent keys leave the zero
	// defaults untouched. An unparsable or out-of-range stored preset index
	// degrades to no selection.
	Load(ctx context.Context) (models.Profile, models.Avatar, error)

	// SaveProfile writes all six text fields unconditionally, including
	// empty ones. Avatar keys are not touched.
	SaveProfile(ctx context.Context, p models.Profile) error

	// AttachPhoto copies the image at path into the managed photo directory
	// and selects it, clearing any preset both in the returned selection and
	// in the store.
	AttachPhoto(ctx context.Context, path string) (models.Avatar, error)

	// SelectPreset selects the catalog preset at index, clearing any
	// uploaded photo reference. Returns avatars.ErrInvalidPreset for an
	// out-of-range index without touching the store.
	SelectPreset(ctx context.Context, index int) (models.Avatar, error)

	// RemovePhoto clears both avatar sources. Idempotent.
	RemovePhoto(ctx context.Context) (models.Avatar, error)
}

type profileService struct {
	repo     settings.Repository
	photoDir string
	log      logging.Logger
}

// NewProfileService returns a ProfileService persisting to repo and keeping
// imported photo copies under photoDir.
func NewProfileService(repo settings.Repository, photoDir string, log logging.Logger) ProfileService {
	return &profileService{repo: repo, photoDir: photoDir, log: log}
}

func (s *profileService) Load(ctx context.Context) (models.Profile, models.Avatar, error) {
	var p models.Profile

	for _, f := range models.Fields {
		v, ok, err := s.repo.Get(ctx, fieldKeys[f])
		if err != nil {
			return models.Profile{}, models.NoAvatar(), fmt.Errorf("load profile: %w", err)
		}
		if ok {
			p.Set(f, v)
		}
	}

	avatar, err := s.loadAvatar(ctx)
	if err != nil {
		return models.Profile{}, models.NoAvatar(), err
	}

	return p, avatar, nil
}

func (s *profileService) loadAvatar(ctx context.Context) (models.Avatar, error) {
	ref, ok, err := s.repo.Get(ctx, settings.KeyAvatarURL)
	if err != nil {
		return models.NoAvatar(), fmt.Errorf("load avatar: %w", err)
	}
	if ok && ref != "" {
		return models.UploadedAvatar(ref), nil
	}

	raw, ok, err := s.repo.Get(ctx, settings.KeyAvatarPreset)
	if err != nil {
		return models.NoAvatar(), fmt.Errorf("load avatar: %w", err)
	}
	if !ok {
		return models.NoAvatar(), nil
	}

	index, convErr := strconv.Atoi(raw)
	if convErr != nil || !avatars.Valid(index) {
		s.log.Warn(ctx, "ignoring unusable stored preset index", "value", raw)
		return models.NoAvatar(), nil
	}
	return models.PresetAvatar(index), nil
}

func (s *profileService) SaveProfile(ctx context.Context, p models.Profile) error {
	err := s.repo.Update(ctx, func(r settings.Repository) error {
		for _, f := range models.Fields {
			if err := r.Set(ctx, fieldKeys[f], p.Get(f)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error(ctx, "failed to save profile", "error", err)
		return fmt.Errorf("save profile: %w", err)
	}

	s.log.Debug(ctx, "profile saved")
	return nil
}

func (s *profileService) AttachPhoto(ctx context.Context, path string) (models.Avatar, error) {
	dir, err := filex.EnsureDir(s.photoDir)
	if err != nil {
		return models.NoAvatar(), fmt.Errorf("attach photo: %w", err)
	}

	ref := filepath.Join(dir, uuid.NewString()+filepath.Ext(path))
	if err := filex.CopyFile(path, ref); err != nil {
		return models.NoAvatar(), fmt.Errorf("attach photo: %w", err)
	}

	err = s.repo.Update(ctx, func(r settings.Repository) error {
		if err := r.Set(ctx, settings.KeyAvatarURL, ref); err != nil {
			return err
		}
		return r.Delete(ctx, settings.KeyAvatarPreset)
	})
	if err != nil {
		s.log.Error(ctx, "failed to persist photo selection", "error", err)
		return models.NoAvatar(), fmt.Errorf("attach photo: %w", err)
	}

	s.log.Debug(ctx, "photo attached", "ref", ref)
	return models.UploadedAvatar(ref), nil
}

func (s *profileService) SelectPreset(ctx context.Context, index int) (models.Avatar, error) {
	if !avatars.Valid(index) {
		return models.NoAvatar(), avatars.ErrInvalidPreset
	}

	err := s.repo.Update(ctx, func(r settings.Repository) error {
		if err := r.Set(ctx, settings.KeyAvatarPreset, strconv.Itoa(index)); err != nil {
			return err
		}
		return r.Delete(ctx, settings.KeyAvatarURL)
	})
	if err != nil {
		s.log.Error(ctx, "failed to persist preset selection", "error", err)
		return models.NoAvatar(), fmt.Errorf("select preset: %w", err)
	}

	return models.PresetAvatar(index), nil
}

func (s *profileService) RemovePhoto(ctx context.Context) (models.Avatar, error) {
	err := s.repo.Update(ctx, func(r settings.Repository) error {
		if err := r.Delete(ctx, settings.KeyAvatarURL); err != nil {
			return err
		}
		return r.Delete(ctx, settings.KeyAvatarPreset)
	})
	if err != nil {
		s.log.Error(ctx, "failed to remove photo", "error", err)
		return models.NoAvatar(), fmt.Errorf("remove photo: %w", err)
	}

	return models.NoAvatar(), nil
}
