package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvazi-dev/microgl/internal/model"
)

const testYAML = `
ledger:
  path: data/gl.db
bank_files_dir: bank-files
chart_file: config/chart-of-accounts.csv
report:
  path: gl-report.csv
bank_accounts:
  - code: CHK
    currency: USD
    type: Debit
    balance_sheet_account: "1000"
    rules:
      - search: COFFEE
        account: "6100"
        partner: CAFE
      - search: PAYROLL
        account: "4000"
        partner: ACME
    fallback:
      revenue_account: "4900"
      expense_account: "6900"
      unknown_partner: UNKNOWN
    exclude_descriptions:
      - SWEEP
    csv:
      has_header: true
      columns:
        date: 0
        description: 1
        amount: 2
        check_no: 3
      date_format: MM/DD/YYYY
  - code: GIRO
    currency: EUR
    type: Credit
    balance_sheet_account: "1010"
    fallback:
      revenue_account: "4900"
      expense_account: "6900"
      unknown_partner: UNKNOWN
    csv:
      separator: ";"
      has_header: false
      columns:
        date: 0
        amount: 1
        description: 2
      date_format: DD.MM.YYYY
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "microgl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "data/gl.db", cfg.Ledger.Path)
	assert.Equal(t, "bank-files", cfg.BankFilesDir)
	assert.Equal(t, "config/chart-of-accounts.csv", cfg.ChartFile)
	assert.Equal(t, "gl-report.csv", cfg.Report.Path)
	require.Len(t, cfg.BankAccounts, 2)

	chk := cfg.BankAccounts[0]
	assert.Equal(t, "CHK", chk.Code)
	assert.Equal(t, model.BankAccountDebit, chk.Type)
	assert.Equal(t, "1000", chk.BalanceSheetAccount)
	require.Len(t, chk.Rules, 2)
	assert.Equal(t, "COFFEE", chk.Rules[0].Search, "rule order is preserved")
	assert.Equal(t, "6100", chk.Rules[0].Account)
	assert.Equal(t, "4900", chk.Fallback.RevenueAccount)
	assert.Equal(t, []string{"SWEEP"}, chk.ExcludeDescriptions)
	assert.Equal(t, 3, chk.CSV.Columns["check_no"])
	assert.Equal(t, "MM/DD/YYYY", chk.CSV.DateFormat)

	giro := cfg.BankAccounts[1]
	assert.Equal(t, model.BankAccountCredit, giro.Type)
	assert.Equal(t, ";", giro.CSV.Separator)
	assert.False(t, giro.CSV.HasHeader)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDirectory(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	dir := NewDirectory(cfg.BankAccounts)

	acct, ok := dir.Get("CHK")
	require.True(t, ok)
	assert.Equal(t, "USD", acct.Currency)

	_, ok = dir.Get("MYSTERY")
	assert.False(t, ok)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, Save(path, cfg))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
