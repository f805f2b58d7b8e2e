package config

// SupportedVersion is the only manifest version this loader understands.
const SupportedVersion = "1"

// Manifest represents the structure of the rebuild.yaml file.
type Manifest struct {
	Version   string    `yaml:"version"`
	Toolchain string    `yaml:"toolchain"`
	Units     []UnitDTO `yaml:"units"`
}

// UnitDTO represents a compilation unit in the manifest.
type UnitDTO struct {
	Name      string            `yaml:"name"`
	Src       string            `yaml:"src"`
	Dst       string            `yaml:"dst"`
	Cmd       []string          `yaml:"cmd"`
	Dir       string            `yaml:"dir"`
	Env       map[string]string `yaml:"env"`
	Toolchain string            `yaml:"toolchain"`
}
