package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alvazi-dev/microgl/internal/model"
)

// Config represents the top-level microgl.yaml configuration.
type Config struct {
	Ledger       LedgerConfig    `yaml:"ledger"`
	BankFilesDir string          `yaml:"bank_files_dir"`
	ChartFile    string          `yaml:"chart_file"`
	Report       ReportConfig    `yaml:"report"`
	BankAccounts []AccountConfig `yaml:"bank_accounts"`
}

// LedgerConfig locates the GL database.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// ReportConfig controls the year-report export.
type ReportConfig struct {
	Path string `yaml:"path"`
}

// MappingRule routes a transaction to a GL account by description substring.
type MappingRule struct {
	Search  string `yaml:"search"`
	Account string `yaml:"account"`
	Partner string `yaml:"partner"`
}

// FallbackAccounts are used when no mapping rule matches a description.
type FallbackAccounts struct {
	RevenueAccount string `yaml:"revenue_account"`
	ExpenseAccount string `yaml:"expense_account"`
	UnknownPartner string `yaml:"unknown_partner"`
}

// CSVLayout describes the column layout of one bank's export files.
type CSVLayout struct {
	Separator string `yaml:"separator,omitempty"` // default ","
	HasHeader bool   `yaml:"has_header"`
	// Columns maps field names to 0-based column indexes. Recognized names:
	// date, amount, description, check_no, investment_name, investment_symbol.
	Columns    map[string]int `yaml:"columns"`
	DateFormat string         `yaml:"date_format"` // token format, e.g. "MM/DD/YYYY"
}

// AccountConfig holds the per-bank-account properties.
type AccountConfig struct {
	Code                string                `yaml:"code"`
	Currency            string                `yaml:"currency"`
	Type                model.BankAccountType `yaml:"type"` // Debit or Credit
	BalanceSheetAccount string                `yaml:"balance_sheet_account"`
	Rules               []MappingRule         `yaml:"rules,omitempty"` // order is significant: first match wins
	Fallback            FallbackAccounts      `yaml:"fallback"`
	ExcludeDescriptions []string              `yaml:"exclude_descriptions,omitempty"`
	CSV                 CSVLayout             `yaml:"csv"`
}

// Load reads a microgl.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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

// Directory provides lookup of bank account configurations by account code.
type Directory struct {
	byCode map[string]AccountConfig
}

// NewDirectory creates a Directory from a slice of account configs.
func NewDirectory(accounts []AccountConfig) *Directory {
	byCode := make(map[string]AccountConfig, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Directory{byCode: byCode}
}

// Get returns the configuration for an account code.
func (d *Directory) Get(code string) (AccountConfig, bool) {
	a, ok := d.byCode[code]
	return a, ok
}
