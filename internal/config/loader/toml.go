package loader

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keychord/internal/input/keymap"
)

func decodeTOML(source string, data []byte) (keymap.Document, error) {
	var doc keymap.Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		pe := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return nil, pe
	}
	return doc, nil
}

func encodeTOML(doc keymap.Document) ([]byte, error) {
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding remaps: %w", err)
	}
	return data, nil
}
