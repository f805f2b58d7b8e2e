package domain

import "path/filepath"

// Object is a single compilation unit: one source file and the artifact compiled from it.
type Object struct {
	Src string
	Dst string
}

// Key returns the identity of the unit for serialization purposes.
// Two objects with the same output stem share sidecars, so the key is the
// cleaned output path without its extension.
func (o Object) Key() string {
	return SidecarPath(filepath.Clean(o.Dst), "")
}

// Validate checks that both paths are set.
func (o Object) Validate() error {
	if o.Src == "" {
		return ErrMissingSource
	}
	if o.Dst == "" {
		return ErrMissingOutput
	}
	return nil
}
