package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/emailextract/internal/extract"
	"github.com/hyperifyio/emailextract/internal/source"
)

// FileConfig is the optional YAML/JSON configuration file schema.
type FileConfig struct {
	Input struct {
		Format   string `yaml:"format" json:"format"`
		Encoding string `yaml:"encoding" json:"encoding"`
	} `yaml:"input" json:"input"`

	Dedupe  string `yaml:"dedupe" json:"dedupe"`
	Banner  *bool  `yaml:"banner" json:"banner"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig fills fields of cfg that are still unset from fc. Flags and
// env have already been applied, so they keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Format == "" && fc.Input.Format != "" {
		cfg.Format = fc.Input.Format
	}
	if cfg.Encoding == "" && fc.Input.Encoding != "" {
		cfg.Encoding = fc.Input.Encoding
	}
	if cfg.Dedupe == "" && fc.Dedupe != "" {
		cfg.Dedupe = fc.Dedupe
	}
	if !cfg.NoBanner && fc.Banner != nil && !*fc.Banner {
		cfg.NoBanner = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig checks the paths and the named format, encoding and policy.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if _, err := source.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := source.CanonicalEncoding(cfg.Encoding); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := extract.ParsePolicy(cfg.Dedupe); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
