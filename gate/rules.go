package gate

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules is the filter's immutable configuration: blocked path suffixes and
// blocked user-agent substrings. Entries are matched lowercased; Normalize
// folds them once at construction so per-request work is bare string
// scanning.
type Rules struct {
	PathSuffixes    []string `yaml:"path_suffixes"`
	AgentSubstrings []string `yaml:"agent_substrings"`
}

// DefaultRules returns the rule set the edge ships with: probe-magnet file
// suffixes and the crawler fleet that ignores robots.txt.
func DefaultRules() Rules {
	return Rules{
		PathSuffixes: []string{
			".env",
			".sql",
			".bak",
			".config",
			".ini",
			".log",
			".git",
			".htaccess",
			".htpasswd",
		},
		AgentSubstrings: []string{
			"ahrefsbot",
			"semrushbot",
			"mj12bot",
			"dotbot",
			"blexbot",
			"petalbot",
			"dataforseobot",
			"serpstatbot",
		},
	}
}

// LoadRules reads a YAML rule file. Lists present in the file replace the
// defaults; absent lists keep them, so a file can override one side only.
func LoadRules(path string) (Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}
	var loaded Rules
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return Rules{}, fmt.Errorf("parse rules file: %w", err)
	}
	rules := DefaultRules()
	if loaded.PathSuffixes != nil {
		rules.PathSuffixes = loaded.PathSuffixes
	}
	if loaded.AgentSubstrings != nil {
		rules.AgentSubstrings = loaded.AgentSubstrings
	}
	return rules.Normalize(), nil
}

// Normalize lowercases and trims every entry, dropping empties.
func (ru Rules) Normalize() Rules {
	return Rules{
		PathSuffixes:    normalize(ru.PathSuffixes),
		AgentSubstrings: normalize(ru.AgentSubstrings),
	}
}

func normalize(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
