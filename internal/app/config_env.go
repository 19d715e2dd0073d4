package app

import (
	"os"
	"strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Format == "" {
		cfg.Format = os.Getenv("EMAILEXTRACT_FORMAT")
	}
	if cfg.Encoding == "" {
		cfg.Encoding = os.Getenv("EMAILEXTRACT_ENCODING")
	}
	if cfg.Dedupe == "" {
		cfg.Dedupe = os.Getenv("EMAILEXTRACT_DEDUPE")
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.NoBanner, "EMAILEXTRACT_NO_BANNER")
	setBool(&cfg.Verbose, "VERBOSE")
}
