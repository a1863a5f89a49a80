package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

var outputFormats = map[string]bool{"text": true, "json": true, "csv": true}

type catalogEnv struct {
	PartsSeed    string `env:"INVENTORY_PARTS_SEED"`
	ProductsSeed string `env:"INVENTORY_PRODUCTS_SEED"`
	OutputFormat string `env:"INVENTORY_OUTPUT_FORMAT" envDefault:"text"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if !outputFormats[raw.OutputFormat] {
		return nil, fmt.Errorf("INVENTORY_OUTPUT_FORMAT: unsupported format %q", raw.OutputFormat)
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) PartsSeed() string    { return cfg.raw.PartsSeed }
func (cfg *catalog) ProductsSeed() string { return cfg.raw.ProductsSeed }
func (cfg *catalog) OutputFormat() string { return cfg.raw.OutputFormat }
