package cleanup

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Modes and platforms recognized in the rules file.
const (
	ModeCI  = "ci"
	ModePkg = "pkg"
)

// PatternSet holds the flattened glob pattern sets selected for one
// mode/platform combination. Patterns are matched against absolute,
// slash-separated paths.
type PatternSet struct {
	DirPatterns  []string
	FilePatterns []string
}

// rawRules mirrors the on-disk rules schema: mode -> platform -> pattern
// lists. Pattern values may be arbitrarily nested lists; YAML anchors
// aliasing whole lists produce exactly that shape.
type rawRules map[string]map[string]struct {
	DirPatterns  any `yaml:"dir_patterns"`
	FilePatterns any `yaml:"file_patterns"`
}

// LoadRules reads the rules file at path and returns the flattened pattern
// sets for the given mode ("ci" or "pkg") and platform ("windows", "darwin"
// or "linux").
func LoadRules(path, mode, platform string) (PatternSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PatternSet{}, fmt.Errorf("reading cleanup rules: %w", err)
	}
	var rules rawRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return PatternSet{}, fmt.Errorf("parsing cleanup rules %s: %w", path, err)
	}

	platforms, ok := rules[mode]
	if !ok {
		return PatternSet{}, fmt.Errorf("%w: mode %q in %s", ErrNoRuleSet, mode, path)
	}
	selected, ok := platforms[platform]
	if !ok {
		return PatternSet{}, fmt.Errorf("%w: platform %q under mode %q in %s", ErrNoRuleSet, platform, mode, path)
	}

	return PatternSet{
		DirPatterns:  flatten(selected.DirPatterns),
		FilePatterns: flatten(selected.FilePatterns),
	}, nil
}

// flatten recursively unnests list values into a flat, de-duplicated slice
// of pattern strings. First-seen order is kept so results are deterministic.
func flatten(v any) []string {
	seen := make(map[string]struct{})
	var out []string
	var walk func(v any)
	walk = func(v any) {
		switch vv := v.(type) {
		case nil:
		case []any:
			for _, item := range vv {
				walk(item)
			}
		case string:
			if _, dup := seen[vv]; !dup {
				seen[vv] = struct{}{}
				out = append(out, vv)
			}
		default:
			walk(fmt.Sprintf("%v", vv))
		}
	}
	walk(v)
	return out
}
