package config

import (
	_ "embed"
	"os"
	"sort"

	"github.com/sbopak/sbopak/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed mirrors.yaml
var builtinMirrors []byte

// Mirror is a named repository preset: where to clone the descriptor mirror
// from and which branch to pin.
type Mirror struct {
	URL    string `yaml:"url"`
	Branch string `yaml:"branch"`
}

type mirrorFile struct {
	Mirrors map[string]Mirror `yaml:"mirrors"`
}

// LoadMirrors returns the named mirror presets. When path is empty the
// built-in preset table is used; otherwise the file at path replaces it.
func LoadMirrors(path string) (map[string]Mirror, error) {
	data := builtinMirrors
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read mirrors file %s", path)
		}
	}

	var mf mirrorFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigParse, "invalid mirrors file %s: %v", path, err)
	}
	if len(mf.Mirrors) == 0 {
		return nil, errors.Wrapf(errors.ErrConfigParse, "mirrors file %s defines no mirrors", path)
	}
	for name, m := range mf.Mirrors {
		if m.URL == "" || m.Branch == "" {
			return nil, errors.Wrapf(errors.ErrConfigParse, "mirror %q is missing url or branch", name)
		}
	}
	return mf.Mirrors, nil
}

// MirrorNames returns the preset names in sorted order.
func MirrorNames(mirrors map[string]Mirror) []string {
	names := make([]string, 0, len(mirrors))
	for name := range mirrors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyMirror overrides the repository origin settings with a preset.
func (c *Config) ApplyMirror(m Mirror) {
	c.RepoGitURL = m.URL
	c.RepoGitBranch = m.Branch
}
