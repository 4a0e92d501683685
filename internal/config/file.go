package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"gopkg.in/yaml.v3"
)

type itemsFile struct {
	Items []menu.Entry `toml:"items" yaml:"items"`
}

// LoadEntries reads options from path. TOML and YAML files hold an "items"
// list; YAML may also be a bare list. Any other file is one option per line
// in value=label form.
func LoadEntries(path string) ([]menu.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	entries, err := ParseEntries(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

// ParseEntries decodes data according to the file extension ext.
func ParseEntries(ext string, data []byte) ([]menu.Entry, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		var file itemsFile
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&file); err != nil {
			return nil, err
		}
		return file.Items, nil
	case ".yaml", ".yml":
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		if len(node.Content) == 0 {
			return nil, nil
		}
		root := node.Content[0]
		if root.Kind == yaml.SequenceNode {
			var entries []menu.Entry
			if err := root.Decode(&entries); err != nil {
				return nil, err
			}
			return entries, nil
		}
		var file itemsFile
		if err := root.Decode(&file); err != nil {
			return nil, err
		}
		return file.Items, nil
	default:
		return menu.ParseLines(string(data)), nil
	}
}
