package storage

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// GetJSON reads the file at path and decodes its JSON content into v.
func GetJSON(path string, v interface{}) error {
	data, err := Get(path)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		err = fmt.Errorf("json %s: %w", path, err)
		warn("json decode failed", path, err)
		return err
	}
	return nil
}

// PutJSON encodes v as indented JSON and writes it to path through Put, so
// parent creation and locking apply.
func PutJSON(path string, v interface{}) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		err = fmt.Errorf("json %s: %w", path, err)
		warn("json encode failed", path, err)
		return err
	}
	return Put(path, data)
}

// GetYAML reads the file at path and decodes its YAML content into v.
func GetYAML(path string, v interface{}) error {
	data, err := Get(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		err = fmt.Errorf("yaml %s: %w", path, err)
		warn("yaml decode failed", path, err)
		return err
	}
	return nil
}

// PutYAML encodes v as YAML and writes it to path through Put.
func PutYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		err = fmt.Errorf("yaml %s: %w", path, err)
		warn("yaml encode failed", path, err)
		return err
	}
	return Put(path, data)
}

// GetTOML reads the file at path and decodes its TOML content into v.
func GetTOML(path string, v interface{}) error {
	data, err := Get(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, v); err != nil {
		err = fmt.Errorf("toml %s: %w", path, err)
		warn("toml decode failed", path, err)
		return err
	}
	return nil
}

// PutTOML encodes v as TOML and writes it to path through Put.
func PutTOML(path string, v interface{}) error {
	data, err := toml.Marshal(v)
	if err != nil {
		err = fmt.Errorf("toml %s: %w", path, err)
		warn("toml encode failed", path, err)
		return err
	}
	return Put(path, data)
}
