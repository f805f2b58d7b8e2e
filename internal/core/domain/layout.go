package domain

import (
	"path/filepath"
	"strings"
)

const (
	// CommandExt is the extension of the fingerprint sidecar.
	CommandExt = "command"

	// JSONDepsExt is the extension of the structured (MSVC) dependency side-channel.
	JSONDepsExt = "json"

	// MakeDepsExt is the extension of the Makefile-style (GCC/Clang) dependency side-channel.
	MakeDepsExt = "dep"

	// ManifestFileName is the default name of the unit manifest.
	ManifestFileName = "rebuild.yaml"

	// FilePerm is the default permission for sidecar files (rw-r--r--).
	FilePerm = 0o644
)

// SidecarPath replaces the extension of path's final element with ext.
//
// A base name without an extension gets ext appended. A leading dot does not
// start an extension, so ".hidden" becomes ".hidden.ext". An empty ext strips
// the extension instead.
func SidecarPath(path, ext string) string {
	dir, base := filepath.Split(path)
	if base == "" || base == "." || base == ".." {
		return path
	}

	stem := base
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		stem = base[:i]
	}

	if ext == "" {
		return dir + stem
	}
	return dir + stem + "." + ext
}
