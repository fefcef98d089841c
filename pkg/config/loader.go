package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	ComponentOrder *int                  `json:"componentOrder" yaml:"componentOrder"`
	CaseSensitive  *bool                 `json:"caseSensitive" yaml:"caseSensitive"`
	Components     []ComponentDefinition `json:"components" yaml:"components"`
}

// LoadFS walks fsys and merges every JSON/YAML configuration document into a
// single Config. Components are appended in walk (lexical) order. Scalar
// settings may be declared by several documents only when they agree. A nil
// fsys yields the default configuration. The merged result is validated.
func LoadFS(fsys fs.FS) (*Config, error) {
	cfg := Default()
	if fsys == nil {
		return cfg, nil
	}

	var (
		orderSource string
		caseSource  string
	)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		if doc.ComponentOrder != nil {
			if orderSource != "" && cfg.ComponentOrder != *doc.ComponentOrder {
				return fmt.Errorf("config: %s sets componentOrder %d, %s already set %d",
					path, *doc.ComponentOrder, orderSource, cfg.ComponentOrder)
			}
			cfg.ComponentOrder = *doc.ComponentOrder
			orderSource = path
		}
		if doc.CaseSensitive != nil {
			if caseSource != "" && cfg.CaseSensitive != *doc.CaseSensitive {
				return fmt.Errorf("config: %s sets caseSensitive %t, %s already set %t",
					path, *doc.CaseSensitive, caseSource, cfg.CaseSensitive)
			}
			cfg.CaseSensitive = *doc.CaseSensitive
			caseSource = path
		}
		for _, def := range doc.Components {
			def.Name = strings.TrimSpace(def.Name)
			def.TagName = strings.TrimSpace(def.TagName)
			def.Source = path
			cfg.Components = append(cfg.Components, def)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("config: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("config: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	return doc, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
