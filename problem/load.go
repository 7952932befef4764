package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Load reads a problem file, choosing the codec by extension: .yaml
// and .yml decode through yaml.v3, .json and .jsonc through a comment
// stripping pass and encoding/json. The extension is checked before
// any I/O, so an unsupported path is rejected whether or not it
// exists.
func Load(path string) (*Problem, error) {
	var parse func([]byte) (*Problem, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".json", ".jsonc":
		parse = ParseJSON
	default:
		return nil, fmt.Errorf("problem: unsupported file extension %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}

	p, err := parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return p, nil
}

// ParseYAML decodes a YAML problem document.
func ParseYAML(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &p, nil
}

// ParseJSON decodes a JSON problem document. Comments and trailing
// commas are stripped first, so JSONC files parse too.
func ParseJSON(data []byte) (*Problem, error) {
	var p Problem
	if err := json.Unmarshal(jsonc.ToJSON(data), &p); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &p, nil
}
