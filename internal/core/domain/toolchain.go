package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Toolchain selects which dependency side-channel format a compiler family emits.
type Toolchain uint8

const (
	// ToolchainGNU covers GCC and Clang, which write Makefile rules via -MD.
	ToolchainGNU Toolchain = iota
	// ToolchainMSVC covers cl.exe, which writes JSON via /sourceDependencies.
	ToolchainMSVC
)

// ToolchainFromMSVC maps the boolean "is MSVC" flag used by callers onto a Toolchain.
func ToolchainFromMSVC(msvc bool) Toolchain {
	if msvc {
		return ToolchainMSVC
	}
	return ToolchainGNU
}

// ParseToolchain parses a toolchain family name.
// The empty string selects ToolchainGNU.
func ParseToolchain(s string) (Toolchain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gnu", "gcc", "clang":
		return ToolchainGNU, nil
	case "msvc", "cl":
		return ToolchainMSVC, nil
	default:
		return ToolchainGNU, zerr.With(zerr.Wrap(ErrUnknownToolchain, "invalid toolchain"), "toolchain", s)
	}
}

// DepsExt returns the side-channel extension the toolchain writes.
func (t Toolchain) DepsExt() string {
	if t == ToolchainMSVC {
		return JSONDepsExt
	}
	return MakeDepsExt
}

func (t Toolchain) String() string {
	if t == ToolchainMSVC {
		return "msvc"
	}
	return "gnu"
}
