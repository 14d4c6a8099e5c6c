package policy

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/davidahmann/veridict/internal/crypto"
	"github.com/davidahmann/veridict/pkg/types"
)

// Loaded couples a validated Config with its identity hash.
type Loaded struct {
	Config Config
	Hash   string
	Bytes  []byte
}

// fileConfig mirrors the YAML layout. Band bounds are strings so threshold
// values never pass through binary floats.
type fileConfig struct {
	PolicyID      string `yaml:"policy_id"`
	PolicyVersion string `yaml:"policy_version"`
	Scale         struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"scale"`
	Scoring struct {
		Method string `yaml:"method"`
	} `yaml:"scoring"`
	Bands []struct {
		Category string `yaml:"category"`
		Min      string `yaml:"min"`
		Max      string `yaml:"max"`
	} `yaml:"bands"`
	Defaults struct {
		High     string `yaml:"high"`
		Critical string `yaml:"critical"`
	} `yaml:"defaults"`
}

// Load reads a YAML policy, validates it, and computes its hash from the raw
// file bytes.
func Load(path string) (Loaded, error) {
	// #nosec G304 -- path comes from operator-configured policy path.
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Loaded{}, err
	}

	cfg, err := fc.toConfig()
	if err != nil {
		return Loaded{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Loaded{}, err
	}

	return Loaded{
		Config: cfg,
		Hash:   crypto.DigestWithPrefix(data),
		Bytes:  data,
	}, nil
}

func (fc fileConfig) toConfig() (Config, error) {
	cfg := Config{
		PolicyID:      fc.PolicyID,
		PolicyVersion: fc.PolicyVersion,
		Scale:         ScaleConfig{Min: fc.Scale.Min, Max: fc.Scale.Max},
		Scoring:       ScoringConfig{Method: fc.Scoring.Method},
		Defaults: TieBreakDefaults{
			High:     types.Decision(fc.Defaults.High),
			Critical: types.Decision(fc.Defaults.Critical),
		},
	}

	for _, band := range fc.Bands {
		min, err := decimal.NewFromString(band.Min)
		if err != nil {
			return Config{}, fmt.Errorf("band %s min %q: %w", band.Category, band.Min, err)
		}
		max, err := decimal.NewFromString(band.Max)
		if err != nil {
			return Config{}, fmt.Errorf("band %s max %q: %w", band.Category, band.Max, err)
		}
		cfg.Bands = append(cfg.Bands, Band{
			Category: types.RiskCategory(band.Category),
			Min:      min,
			Max:      max,
		})
	}

	return cfg, nil
}
