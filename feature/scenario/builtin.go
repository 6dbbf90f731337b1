package scenario

import (
	"embed"
	"fmt"
	"path"
	"sort"
)

//go:embed scenarios/*.yaml
var builtinFS embed.FS

// Builtin returns the bundled scripts ordered by file name.
func Builtin() ([]*Script, error) {
	entries, err := builtinFS.ReadDir("scenarios")
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	scripts := make([]*Script, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("scenarios", e.Name()))
		if err != nil {
			return nil, err
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// Lookup returns the bundled script called name.
func Lookup(name string) (*Script, error) {
	scripts, err := Builtin()
	if err != nil {
		return nil, err
	}
	for _, s := range scripts {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown scenario %q", name)
}
