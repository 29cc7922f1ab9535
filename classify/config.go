package classify

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFFNames reads a plain ff_names.txt (one substring per line,
// spec.md §6) and returns its lines in file order exactly as read:
// whitespace, blank lines and duplicates are kept here and dropped by
// NewSubstringClassifier.
func LoadFFNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("classify.LoadFFNames(%q): %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("classify.LoadFFNames(%q): %w", path, err)
	}

	return lines, nil
}

// overrideFile is the optional YAML override for the substring list,
// wired via gopkg.in/yaml.v3 (the same library the run manifest and
// beadwork's config package use).
type overrideFile struct {
	SequentialPatterns []string `yaml:"sequential_patterns"`
}

// LoadYAMLOverride reads a YAML file of the form:
//
//	sequential_patterns: ["ff", "dfrtp", "sdfrtp"]
//
// and returns a SubstringClassifier built from it. Intended as an
// alternative to ff_names.txt when a run wants the pattern list
// versioned alongside other run configuration.
func LoadYAMLOverride(path string) (*SubstringClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classify.LoadYAMLOverride(%q): %w", path, err)
	}

	var ov overrideFile
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("classify.LoadYAMLOverride(%q): %w", path, err)
	}

	return NewSubstringClassifier(ov.SequentialPatterns), nil
}
