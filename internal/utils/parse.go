package utils

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DecodeTOMLFile decodes a TOML file into v and warns about keys v has no
// field for, which are usually typos.
func DecodeTOMLFile(path string, v any) error {
	md, err := toml.DecodeFile(path, v)
	if err != nil {
		log.Warnf("TOML parsing error in %s: %v. Attempting partial recovery...", path, err)
		return err
	}
	for _, key := range md.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), path)
	}
	return nil
}

// DecodeTOMLTables decodes a TOML file into generic tables so values with
// the right type can be picked out even when v's types do not match.
func DecodeTOMLTables(path string) (map[string]any, error) {
	tables := make(map[string]any)
	if _, err := toml.DecodeFile(path, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return tables, nil
}

// Table returns the named sub-table of decoded TOML data
func Table(data map[string]any, name string) (map[string]any, bool) {
	table, ok := data[name].(map[string]any)
	return table, ok
}

// Extract returns data[key] if it holds a T
func Extract[T any](data map[string]any, key string) (T, bool) {
	val, ok := data[key].(T)
	return val, ok
}

// ExtractInt returns data[key] as an int. TOML integers decode as int64.
func ExtractInt(data map[string]any, key string) (int, bool) {
	val, ok := Extract[int64](data, key)
	return int(val), ok
}
