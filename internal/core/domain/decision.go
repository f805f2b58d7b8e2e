package domain

// WriteStatus reports the outcome of a fingerprint update.
type WriteStatus uint8

const (
	// WriteStatusUnchanged means the stored fingerprint already matched; nothing was written.
	WriteStatusUnchanged WriteStatus = iota
	// WriteStatusWritten means the fingerprint was absent, unreadable, or different and has been rewritten.
	WriteStatusWritten
)

func (s WriteStatus) String() string {
	if s == WriteStatusWritten {
		return "written"
	}
	return "unchanged"
}

// Reason explains why a decision came out the way it did.
type Reason string

const (
	// ReasonCommandChanged indicates the fingerprint was absent or differed from the command.
	ReasonCommandChanged Reason = "command-changed"
	// ReasonFingerprintWriteFailed indicates the fingerprint could not be persisted.
	ReasonFingerprintWriteFailed Reason = "fingerprint-write-failed"
	// ReasonOutputMissing indicates the output is not an existing regular file.
	ReasonOutputMissing Reason = "output-missing"
	// ReasonDepsUnknown indicates no reliable dependency record exists.
	ReasonDepsUnknown Reason = "deps-unknown"
	// ReasonOutputUnreadable indicates the output's timestamp could not be resolved.
	ReasonOutputUnreadable Reason = "output-unreadable"
	// ReasonInputMissing indicates a dependency's timestamp could not be resolved.
	ReasonInputMissing Reason = "input-missing"
	// ReasonInputNewer indicates a dependency is at least as new as the output.
	ReasonInputNewer Reason = "input-newer"
	// ReasonUpToDate indicates every signal reported the output as fresh.
	ReasonUpToDate Reason = "up-to-date"
)

// Decision is the verdict for one compilation unit.
type Decision struct {
	// Rebuild is true when the output must be rebuilt.
	Rebuild bool
	// Reason is the first signal that decided the verdict.
	Reason Reason
	// Path is the file that triggered the verdict, if any.
	Path string
}

// Rebuild returns a stale decision.
func Rebuild(reason Reason, path string) Decision {
	return Decision{Rebuild: true, Reason: reason, Path: path}
}

// UpToDate returns a fresh decision.
func UpToDate() Decision {
	return Decision{Reason: ReasonUpToDate}
}

// Verdict returns the short human-readable form of the decision.
func (d Decision) Verdict() string {
	if d.Rebuild {
		return "rebuild"
	}
	return "up-to-date"
}
