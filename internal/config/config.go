// Package config loads tally.yaml and the TALLY_* environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// FileName is the config file created by tally init.
const FileName = "tally.yaml"

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Listing ListingConfig `yaml:"listing"`
	Budget  BudgetConfig  `yaml:"budget"`
	Data    DataConfig    `yaml:"data"`
	Git     GitConfig     `yaml:"git"`
}

// ProfileConfig describes the account holder.
type ProfileConfig struct {
	Name            string `yaml:"name" validate:"max=80"`
	StartingBalance string `yaml:"starting_balance" validate:"required,numeric"`
	Currency        string `yaml:"currency" validate:"max=8"`
}

// ListingConfig controls the transactions list.
type ListingConfig struct {
	PageSize  int    `yaml:"page_size" validate:"gte=1,lte=500"`
	SortKey   string `yaml:"sort_key" validate:"oneof=date amount category"`
	SortOrder string `yaml:"sort_order" validate:"oneof=asc desc"`
	Locale    string `yaml:"locale" validate:"required,bcp47_language_tag"`
}

// BudgetConfig controls the budget overview.
type BudgetConfig struct {
	HistoryMonths int `yaml:"history_months" validate:"gte=1,lte=120"`
}

// DataConfig names the data files, relative to the data directory.
type DataConfig struct {
	EntriesFile  string `yaml:"entries_file" validate:"required"`
	ActivityFile string `yaml:"activity_file" validate:"required"`
}

// GitConfig controls versioning of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name" validate:"required_if=AutoCommit true"`
	AuthorEmail string `yaml:"author_email" validate:"required_if=AutoCommit true,omitempty,email"`
}

var validate = validator.New()

// Load reads a tally.yaml file from disk. Keys absent from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(name string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:            name,
			StartingBalance: "0.00",
			Currency:        "€",
		},
		Listing: ListingConfig{
			PageSize:  10,
			SortKey:   "date",
			SortOrder: "desc",
			Locale:    "fr",
		},
		Budget: BudgetConfig{
			HistoryMonths: 6,
		},
		Data: DataConfig{
			EntriesFile:  "entries.csv",
			ActivityFile: "activity.csv",
		},
		Git: GitConfig{
			AuthorName:  "tally",
			AuthorEmail: "tally@localhost.localdomain",
		},
	}
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	errs := make([]error, len(verrs))
	for i, fe := range verrs {
		errs[i] = fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("invalid config: %w", errors.Join(errs...))
}

// StartingBalance parses the profile's starting balance.
func (c *Config) StartingBalance() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.Profile.StartingBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing starting_balance %q: %w", c.Profile.StartingBalance, err)
	}
	return d, nil
}

// Language returns the collation language for category ordering.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Listing.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", c.Listing.Locale, err)
	}
	return tag, nil
}
