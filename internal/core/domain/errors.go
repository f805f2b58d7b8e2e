package domain

import "go.trai.ch/zerr"

var (
	// ErrRebuildRequired is returned by the CLI when a unit is stale and the caller asked for an exit code.
	ErrRebuildRequired = zerr.New("rebuild required")

	// ErrUnknownToolchain is returned when a toolchain family name cannot be parsed.
	ErrUnknownToolchain = zerr.New("unknown toolchain, expected 'gnu' or 'msvc'")

	// ErrEmptyCommand is returned when a build command has no program.
	ErrEmptyCommand = zerr.New("build command is empty")

	// ErrMissingSource is returned when a compilation unit has no source path.
	ErrMissingSource = zerr.New("compilation unit is missing a source path")

	// ErrMissingOutput is returned when a compilation unit has no output path.
	ErrMissingOutput = zerr.New("compilation unit is missing an output path")

	// ErrDuplicateOutput is returned when two units of a manifest share an output stem.
	ErrDuplicateOutput = zerr.New("duplicate output path")

	// ErrDuplicateUnitName is returned when two units of a manifest share a name.
	ErrDuplicateUnitName = zerr.New("duplicate unit name")

	// ErrUnitNotFound is returned when a requested unit is not part of the manifest.
	ErrUnitNotFound = zerr.New("unit not found")

	// ErrUnsupportedVersion is returned when the manifest version is not supported.
	ErrUnsupportedVersion = zerr.New("unsupported manifest version")

	// ErrConfigReadFailed is returned when the manifest cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the manifest cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no manifest is found walking up from the working directory.
	ErrConfigNotFound = zerr.New("could not find manifest")

	// ErrFingerprintReadFailed is returned when the fingerprint sidecar exists but cannot be read.
	ErrFingerprintReadFailed = zerr.New("failed to read fingerprint")

	// ErrFingerprintWriteFailed is returned when the fingerprint sidecar cannot be written.
	ErrFingerprintWriteFailed = zerr.New("failed to write fingerprint")

	// ErrStatusFailed is returned when evaluating the manifest fails.
	ErrStatusFailed = zerr.New("status evaluation failed")
)
