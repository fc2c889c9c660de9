package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// envPrefix starts every environment variable the CLI reads.
const envPrefix = "LATEX2PNG_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // LATEX2PNG_CONFIG: config file name or path
	Style      string // LATEX2PNG_STYLE: style preset name
	Assets     string // LATEX2PNG_ASSETS: custom preset directory
}

// knownEnvVars lists valid LATEX2PNG_* environment variables.
var knownEnvVars = map[string]bool{
	"LATEX2PNG_CONFIG": true,
	"LATEX2PNG_STYLE":  true,
	"LATEX2PNG_ASSETS": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("LATEX2PNG_CONFIG"),
		Style:      os.Getenv("LATEX2PNG_STYLE"),
		Assets:     os.Getenv("LATEX2PNG_ASSETS"),
	}
}

// warnUnknownEnvVars writes a warning for each unrecognized LATEX2PNG_*
// variable, catching typos like LATEX2PNG_STYEL.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills flags the user left unset from the environment.
// Precedence: CLI flags > env vars > config file > preset > defaults.
func applyEnvConfig(env *envConfig, f *cliFlags) {
	if env.ConfigPath != "" && f.config == "" {
		f.config = env.ConfigPath
	}
	if env.Style != "" && f.style == "" {
		f.style = env.Style
	}
	if env.Assets != "" && f.assets == "" {
		f.assets = env.Assets
	}
}
