package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alvazi-dev/microgl/internal/config"
	"github.com/alvazi-dev/microgl/internal/model"
)

// Column names recognized in a CSVLayout.
const (
	ColDate             = "date"
	ColAmount           = "amount"
	ColDescription      = "description"
	ColCheckNo          = "check_no"
	ColInvestmentName   = "investment_name"
	ColInvestmentSymbol = "investment_symbol"
)

// ReadFile parses a bank export file using the owning account's CSV layout.
func ReadFile(path string, acct config.AccountConfig) ([]model.BankTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bank file: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f, acct, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parsing bank file %s: %w", path, err)
	}
	return txns, nil
}

// ReadTransactions reads bank transactions from r according to the
// account's layout: picks the configured columns, translates the date
// token format, normalizes decimal commas, replaces blank descriptions
// with the sentinel, and drops rows matching the account's exclusion
// filters. Row indexes are 1-based over the data rows before filtering, so
// they stay stable regardless of filter configuration.
func ReadTransactions(r io.Reader, acct config.AccountConfig, sourceFile string) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	if acct.CSV.Separator != "" {
		cr.Comma = []rune(acct.CSV.Separator)[0]
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if acct.CSV.HasHeader && len(records) > 0 {
		records = records[1:]
	}

	dateLayout := DeriveDateLayout(acct.CSV.DateFormat)

	var txns []model.BankTransaction
	for i, rec := range records {
		txn, err := parseRow(rec, acct, dateLayout)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txn.SourceFile = sourceFile
		txn.RowIndex = i + 1

		if excluded(txn.Description, acct.ExcludeDescriptions) {
			continue
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// DeriveDateLayout translates a token date format like "MM/DD/YYYY" or
// "DD.MM.YY" into a Go reference layout.
func DeriveDateLayout(tokenFormat string) string {
	replacer := strings.NewReplacer(
		"YYYY", "2006",
		"YY", "06",
		"MM", "01",
		"DD", "02",
	)
	return replacer.Replace(tokenFormat)
}

func parseRow(rec []string, acct config.AccountConfig, dateLayout string) (model.BankTransaction, error) {
	dateStr, err := field(rec, acct, ColDate)
	if err != nil {
		return model.BankTransaction{}, err
	}
	amountStr, err := field(rec, acct, ColAmount)
	if err != nil {
		return model.BankTransaction{}, err
	}
	descStr, err := field(rec, acct, ColDescription)
	if err != nil {
		return model.BankTransaction{}, err
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", dateStr, err)
	}

	// German exports use a decimal comma.
	amountStr = strings.ReplaceAll(strings.TrimSpace(amountStr), ",", ".")
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", amountStr, err)
	}
	amount = amount.Round(2)

	desc := descStr
	if strings.TrimSpace(desc) == "" {
		desc = model.NoDescription
	}

	return model.BankTransaction{
		Date:             date,
		Amount:           amount,
		Description:      desc,
		CheckNo:          optionalField(rec, acct, ColCheckNo),
		InvestmentName:   optionalField(rec, acct, ColInvestmentName),
		InvestmentSymbol: optionalField(rec, acct, ColInvestmentSymbol),
	}, nil
}

func field(rec []string, acct config.AccountConfig, name string) (string, error) {
	idx, ok := acct.CSV.Columns[name]
	if !ok {
		return "", fmt.Errorf("account %s: layout has no %s column", acct.Code, name)
	}
	if idx < 0 || idx >= len(rec) {
		return "", fmt.Errorf("account %s: %s column %d out of range (%d fields)", acct.Code, name, idx, len(rec))
	}
	return rec[idx], nil
}

func optionalField(rec []string, acct config.AccountConfig, name string) string {
	idx, ok := acct.CSV.Columns[name]
	if !ok || idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func excluded(description string, filters []string) bool {
	for _, f := range filters {
		if f != "" && strings.Contains(description, f) {
			return true
		}
	}
	return false
}
