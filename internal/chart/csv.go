package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alvazi-dev/microgl/internal/model"
)

const (
	numFields  = 4
	colID      = 0
	colType    = 1
	colTaxable = 2
	colDesc    = 3
)

// ReadAccounts reads a chart-of-accounts CSV.
func ReadAccounts(r io.Reader) ([]model.ChartAccount, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var accounts []model.ChartAccount
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes a chart-of-accounts CSV.
func WriteAccounts(w io.Writer, accounts []model.ChartAccount) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_id", "account_type", "is_taxable", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts a ChartAccount to a CSV row.
func MarshalAccount(acct model.ChartAccount) []string {
	row := make([]string, numFields)
	row[colID] = acct.ID
	row[colType] = acct.Type
	row[colTaxable] = strconv.FormatBool(acct.Taxable)
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to a ChartAccount.
func UnmarshalAccount(record []string) (model.ChartAccount, error) {
	if len(record) != numFields {
		return model.ChartAccount{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	taxable, err := strconv.ParseBool(record[colTaxable])
	if err != nil {
		return model.ChartAccount{}, fmt.Errorf("parsing is_taxable %q: %w", record[colTaxable], err)
	}

	return model.ChartAccount{
		ID:          record[colID],
		Type:        record[colType],
		Taxable:     taxable,
		Description: record[colDesc],
	}, nil
}
