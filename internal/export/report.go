package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alvazi-dev/microgl/internal/model"
)

// YearReader is the ledger read interface the report consumes.
type YearReader interface {
	ReadYear(year int) ([]model.Posting, error)
}

// Header is the column row of the GL report.
const Header = "transaction_id,transaction_item_id,transaction_date,posting_year,posting_period,transaction_amount,currency_unit,debit_credit_indicator,transaction_description,account_id,business_partner,bank_account_code,investment_name,investment_symbol,check_no,account_type,is_taxable"

const (
	numFields     = 17
	dateFormat    = "2006-01-02"
	colTxnID      = 0
	colItemID     = 1
	colDate       = 2
	colYear       = 3
	colPeriod     = 4
	colAmount     = 5
	colCurrency   = 6
	colIndicator  = 7
	colDesc       = 8
	colAccount    = 9
	colPartner    = 10
	colBankAcct   = 11
	colInvName    = 12
	colInvSymbol  = 13
	colCheckNo    = 14
	colAcctType   = 15
	colTaxable    = 16
)

// WriteYear reads all postings for a posting year and writes the report to
// path.
func WriteYear(store YearReader, year int, path string) error {
	postings, err := store.ReadYear(year)
	if err != nil {
		return fmt.Errorf("reading postings for %d: %w", year, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	if err := WriteReport(f, postings); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// WriteReport writes postings as a report table (including header).
func WriteReport(w io.Writer, postings []model.Posting) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range postings {
		if err := cw.Write(MarshalPosting(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalPosting converts a Posting to a report row.
func MarshalPosting(p model.Posting) []string {
	row := make([]string, numFields)
	row[colTxnID] = p.TransactionID
	row[colItemID] = p.ItemID
	row[colDate] = p.Date.Format(dateFormat)
	row[colYear] = strconv.Itoa(p.PostingYear)
	row[colPeriod] = strconv.Itoa(p.PostingPeriod)
	row[colAmount] = p.Amount.StringFixed(2)
	row[colCurrency] = p.Currency
	row[colIndicator] = string(p.Indicator)
	row[colDesc] = p.Description
	row[colAccount] = p.AccountID
	row[colPartner] = p.BusinessPartner
	row[colBankAcct] = p.BankAccountCode
	row[colInvName] = p.InvestmentName
	row[colInvSymbol] = p.InvestmentSymbol
	row[colCheckNo] = p.CheckNo
	row[colAcctType] = p.AccountType
	row[colTaxable] = strconv.FormatBool(p.Taxable)
	return row
}
