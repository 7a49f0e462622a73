package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Paths Paths `yaml:"paths"`
}

// Paths names every input and output root the pipeline touches.
// All paths default to the conventional SDK repository layout so the tool
// runs without a config file when invoked from the repository root.
type Paths struct {
	Readme       string `yaml:"readme"`        // top-level README used to derive the landing page
	MetadataDir  string `yaml:"metadata_dir"`  // DocFX ManagedReference YAML files, one per type
	OverwriteDir string `yaml:"overwrite_dir"` // DocFX overwrite files mapping uids to examples
	ExamplesDir  string `yaml:"examples_dir"`  // compilable example sources with region tags
	OutputDir    string `yaml:"output_dir"`    // generated API reference pages + sidebar
	LandingDir   string `yaml:"landing_dir"`   // generated landing page
	TOC          string `yaml:"toc"`           // DocFX-generated toc.json for prune-toc
}

// Load loads configuration from the specified file.
//
// A missing config file is not an error: every path has a default. A present
// but unreadable or malformed file is.
func Load(configPath string) (*Config, error) {
	// Load .env/.env.local if present; existing process env wins.
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment variables", "path", envPath)
			break
		}
	}

	config := &Config{}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	p := &c.Paths
	if p.Readme == "" {
		p.Readme = "README.md"
	}
	if p.MetadataDir == "" {
		p.MetadataDir = "docs/api"
	}
	if p.OverwriteDir == "" {
		p.OverwriteDir = "docs/overwrite"
	}
	if p.ExamplesDir == "" {
		p.ExamplesDir = "docs/examples"
	}
	if p.OutputDir == "" {
		p.OutputDir = "docs-md/api-reference"
	}
	if p.LandingDir == "" {
		p.LandingDir = "docs-md"
	}
	if p.TOC == "" {
		p.TOC = "docs/_site/api/toc.json"
	}
}
