package domain

import "go.trai.ch/zerr"

// Unit is one entry of a manifest: a compilation unit with the command that builds it.
type Unit struct {
	Name      string
	Object    Object
	Command   Command
	Toolchain Toolchain
}

// Manifest is the set of compilation units known to the tool.
type Manifest struct {
	// Root is the directory relative paths in the manifest were resolved against.
	Root  string
	Units []Unit
}

// Select returns the units matching names, in manifest order.
// An empty names slice selects every unit.
func (m *Manifest) Select(names []string) ([]Unit, error) {
	if len(names) == 0 {
		return m.Units, nil
	}

	byName := make(map[string]int, len(m.Units))
	for i, u := range m.Units {
		byName[u.Name] = i
	}

	wanted := make(map[int]bool, len(names))
	for _, name := range names {
		i, ok := byName[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrUnitNotFound, "cannot select unit"), "unit", name)
		}
		wanted[i] = true
	}

	selected := make([]Unit, 0, len(wanted))
	for i, u := range m.Units {
		if wanted[i] {
			selected = append(selected, u)
		}
	}
	return selected, nil
}
