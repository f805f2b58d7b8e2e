// Package config provides the manifest loader for rebuild.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds and parses the manifest.
func (l *Loader) Load(cwd, name string) (*domain.Manifest, error) {
	configPath, err := l.findManifest(cwd, name)
	if err != nil {
		return nil, err
	}
	l.Logger.Debug("loading manifest", "path", configPath)

	var manifest Manifest
	if err := readAndUnmarshalYAML(configPath, &manifest); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.build(filepath.Dir(configPath), &manifest)
}

func (l *Loader) findManifest(cwd, name string) (string, error) {
	if name == "" {
		name = domain.ManifestFileName
	}

	// An explicit path is not searched for.
	if filepath.IsAbs(name) || strings.ContainsRune(filepath.ToSlash(name), '/') {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		if isFile(path) {
			return filepath.Clean(path), nil
		}
		return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "manifest does not exist"), "path", path)
	}

	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, name)
		if isFile(candidate) {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no manifest in any parent directory"), "cwd", cwd), "name", name)
}

func (l *Loader) build(root string, manifest *Manifest) (*domain.Manifest, error) {
	if manifest.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "cannot load manifest"), "version", manifest.Version)
	}

	defaultToolchain, err := domain.ParseToolchain(manifest.Toolchain)
	if err != nil {
		return nil, err
	}

	if len(manifest.Units) == 0 {
		l.Logger.Warn(fmt.Sprintf("manifest in %s declares no units", root))
	}

	units := make([]domain.Unit, 0, len(manifest.Units))
	names := make(map[string]int, len(manifest.Units))
	stems := make(map[string]int, len(manifest.Units))

	for i := range manifest.Units {
		dto := &manifest.Units[i]
		unit, err := buildUnit(root, dto, defaultToolchain)
		if err != nil {
			return nil, zerr.With(err, "unit", i)
		}

		if prev, ok := names[unit.Name]; ok {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrDuplicateUnitName, "units must be uniquely named"),
				"unit", unit.Name), "first", prev)
		}
		names[unit.Name] = i

		key := unit.Object.Key()
		if prev, ok := stems[key]; ok {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrDuplicateOutput, "outputs would share sidecars"),
				"dst", dto.Dst), "first", manifest.Units[prev].Dst)
		}
		stems[key] = i

		units = append(units, unit)
	}

	return &domain.Manifest{Root: root, Units: units}, nil
}

func buildUnit(root string, dto *UnitDTO, defaultToolchain domain.Toolchain) (domain.Unit, error) {
	obj := domain.Object{
		Src: resolvePath(root, dto.Src),
		Dst: resolvePath(root, dto.Dst),
	}
	if err := obj.Validate(); err != nil {
		return domain.Unit{}, zerr.With(zerr.Wrap(err, "invalid unit"), "dst", dto.Dst)
	}

	cmd := domain.NewCommand(dto.Cmd...)
	if err := cmd.Validate(); err != nil {
		return domain.Unit{}, zerr.With(zerr.Wrap(err, "invalid unit"), "dst", dto.Dst)
	}
	cmd.Env = dto.Env
	if dto.Dir != "" {
		cmd.Dir = resolvePath(root, dto.Dir)
	}

	tc := defaultToolchain
	if dto.Toolchain != "" {
		parsed, err := domain.ParseToolchain(dto.Toolchain)
		if err != nil {
			return domain.Unit{}, zerr.With(err, "dst", dto.Dst)
		}
		tc = parsed
	}

	name := dto.Name
	if name == "" {
		name = filepath.ToSlash(filepath.Clean(dto.Dst))
	}

	return domain.Unit{
		Name:      name,
		Object:    obj,
		Command:   cmd,
		Toolchain: tc,
	}, nil
}

// resolvePath anchors a relative manifest path at root. Empty stays empty.
func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findManifest
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
