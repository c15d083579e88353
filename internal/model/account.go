package model

// BankAccountType determines the sign convention of a bank export.
// Credit-card exports record expenses as positive amounts, so the
// deposit/withdrawal polarity is inverted for Credit accounts.
type BankAccountType string

const (
	BankAccountDebit  BankAccountType = "Debit"
	BankAccountCredit BankAccountType = "Credit"
)

// ChartAccount represents a row in the chart-of-accounts file.
type ChartAccount struct {
	ID          string
	Type        string
	Taxable     bool
	Description string
}
