// Package config holds the runtime parameters of the bid tools: where the
// bid folders live, where the bid list workbook is, and how its header row
// is reconciled. Values come from built-in office defaults, then an
// optional TOML file, then command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pelletier/go-toml/v2"
)

// Header policy values accepted in config files and on the command line.
const (
	PolicyAppend    = "append"
	PolicyCanonical = "canonical"
)

// DefaultFileName is the config file looked for in the working directory
// when --config is not given.
const DefaultFileName = "bidtools.toml"

// Config carries every path and workbook parameter the tools operate on.
type Config struct {
	BidRoot      string `toml:"bid_root"`
	TemplateRoot string `toml:"template_root"`
	Workbook     string `toml:"workbook"`
	Worksheet    string `toml:"worksheet"`
	HeaderPolicy string `toml:"header_policy"`
}

// Default returns the built-in office configuration.
func Default() Config {
	return Config{
		BidRoot:      `S:\Bid Documents 2026`,
		TemplateRoot: `S:\Bid Documents 2026\26000 Proposal Templates\15 - Folder Structure`,
		Workbook:     `S:\Bid Documents 2026\26000 Proposal Templates\Bid List.xlsx`,
		Worksheet:    "Bid List",
		HeaderPolicy: PolicyCanonical,
	}
}

// Load reads a TOML config file over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the required parameters are present and that the
// header policy is one of the known values.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BidRoot, validation.Required),
		validation.Field(&c.Workbook, validation.Required),
		validation.Field(&c.Worksheet, validation.Required),
		validation.Field(&c.HeaderPolicy, validation.Required, validation.In(PolicyAppend, PolicyCanonical)),
	)
}
