// Package fingerprint persists the command that produced each output next to it.
package fingerprint

import (
	"bytes"
	"os"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore with one plain-text sidecar per output.
// The sidecar lives at the output path with its extension replaced by ".command".
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Path returns the sidecar path for dst.
func (s *Store) Path(dst string) string {
	return domain.SidecarPath(dst, domain.CommandExt)
}

// Update writes text to the sidecar unless it already holds exactly text.
func (s *Store) Update(dst, text string) (domain.WriteStatus, error) {
	path := s.Path(dst)

	current, err := s.read(path)
	if err == nil && bytes.Equal(current, []byte(text)) {
		return domain.WriteStatusUnchanged, nil
	}

	//nolint:gosec // Path is derived from the caller's output path
	if err := os.WriteFile(path, []byte(text), domain.FilePerm); err != nil {
		return domain.WriteStatusWritten, zerr.With(zerr.Wrap(err, domain.ErrFingerprintWriteFailed.Error()), "path", path)
	}

	return domain.WriteStatusWritten, nil
}

// Matches reports whether the sidecar is readable and holds exactly text.
func (s *Store) Matches(dst, text string) bool {
	current, err := s.read(s.Path(dst))
	return err == nil && bytes.Equal(current, []byte(text))
}

// Load returns the stored command text for dst.
func (s *Store) Load(dst string) (string, error) {
	data, err := s.read(s.Path(dst))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Store) read(path string) ([]byte, error) {
	//nolint:gosec // Path is derived from the caller's output path
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFingerprintReadFailed.Error()), "path", path)
	}
	return data, nil
}
