package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the semantic direction of a bank transaction.
type Category string

const (
	CategoryDeposit    Category = "deposit"
	CategoryWithdrawal Category = "withdrawal"
)

// Indicator marks a posting as a debit or a credit.
type Indicator string

const (
	Debit  Indicator = "D"
	Credit Indicator = "C"
)

// Opposite returns the other indicator.
func (i Indicator) Opposite() Indicator {
	if i == Debit {
		return Credit
	}
	return Debit
}

// Item sequence ids of the two legs of a transaction.
const (
	PrimaryItemID    = "001"
	OffsettingItemID = "002"
)

// Posting is one leg of a double-entry GL transaction, a row in gl_items.
// The composite key is (TransactionID, ItemID).
type Posting struct {
	TransactionID    string
	ItemID           string
	Date             time.Time
	PostingYear      int
	PostingPeriod    int             // month 1-12
	Amount           decimal.Decimal // signed: positive = debit side
	Currency         string
	Indicator        Indicator
	Description      string
	AccountID        string
	BusinessPartner  string
	BankAccountCode  string
	InvestmentName   string
	InvestmentSymbol string
	CheckNo          string
	AccountType      string
	Taxable          bool
}
