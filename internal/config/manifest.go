package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the optional project-level saha.yaml configuration. It lets a
// project pin its entrypoint and add extra directories the host searches
// for core-class providers, the way the teacher's ext.Config pins Go
// dependencies in funxy.yaml. Both fields are optional. cmd/saha does not
// load a manifest: it always runs the file named by its positional argument.
type Manifest struct {
	// Entrypoint names the project's entrypoint source file.
	Entrypoint string `yaml:"entrypoint,omitempty"`

	// CoreClassDirs lists additional directories the host scans for
	// core-class provider plugins (a forward-looking extension point;
	// no provider loader ships in this core pipeline — spec §1 scopes
	// the module system out).
	CoreClassDirs []string `yaml:"core_class_dirs,omitempty"`
}

// LoadManifest reads and parses a saha.yaml file. A missing file is not an
// error: it returns a zero-value Manifest so callers can proceed with
// CLI-supplied defaults.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
