package ports

import "go.trai.ch/rebuild/internal/core/domain"

// FingerprintStore persists the textual form of the command last used to produce an output.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type FingerprintStore interface {
	// Update writes text to the fingerprint sidecar of dst unless it already holds exactly text.
	// A sidecar that is absent or unreadable is rewritten. It returns an error only when the write fails.
	Update(dst, text string) (domain.WriteStatus, error)

	// Matches reports whether the fingerprint sidecar of dst is readable and holds exactly text.
	// It never writes.
	Matches(dst, text string) bool

	// Load returns the text held by the fingerprint sidecar of dst.
	Load(dst string) (string, error)
}
