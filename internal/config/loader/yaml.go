package loader

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/keychord/internal/input/keymap"
)

// yaml.v3 reports positions only inside its messages.
var yamlLine = regexp.MustCompile(`line (\d+)`)

func decodeYAML(source string, data []byte) (keymap.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, yamlParseError(source, err)
	}
	if len(root.Content) == 0 {
		return keymap.Document{}, nil
	}

	// yaml.v3 drops entries with a null key while decoding into a map, and
	// "~" is the tilde key.
	if n := findNullKey(&root); n != nil {
		return nil, &ParseError{
			Path:    source,
			Line:    n.Line,
			Column:  n.Column,
			Message: "null key; quote '~' to remap the tilde key",
		}
	}

	var doc keymap.Document
	if err := root.Decode(&doc); err != nil {
		return nil, yamlParseError(source, err)
	}
	return doc, nil
}

// findNullKey returns the first mapping key in n, in document order, that
// resolves to null.
func findNullKey(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].ShortTag() == "!!null" {
				return n.Content[i]
			}
		}
	}
	for _, child := range n.Content {
		if found := findNullKey(child); found != nil {
			return found
		}
	}
	return nil
}

func yamlParseError(source string, err error) *ParseError {
	msg := err.Error()

	var te *yaml.TypeError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		msg = strings.Join(te.Errors, "; ")
	}
	msg = strings.TrimPrefix(msg, "yaml: ")

	pe := &ParseError{
		Path:    source,
		Message: msg,
		Err:     err,
	}
	if m := yamlLine.FindStringSubmatch(msg); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil {
			pe.Line = line
		}
	}
	return pe
}

func encodeYAML(doc keymap.Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding remaps: %w", err)
	}
	return data, nil
}
