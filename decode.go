package envfile

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode decodes the store's entries into the target struct or map.
// Fields match store keys through `env` struct tags (e.g. `env:"API_KEY"`).
// Input is weakly typed, so an Integer store entry can populate any numeric
// field.
func (e *Environment) Decode(target any) error {
	flat := make(map[string]any, e.store.Len())
	for _, key := range e.store.keys {
		flat[key] = e.store.values[key].native()
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "env",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}

	if err := decoder.Decode(flat); err != nil {
		return fmt.Errorf("decode configuration: %w", err)
	}
	return nil
}
