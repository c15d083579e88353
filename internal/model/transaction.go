package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoDescription is the sentinel for blank or whitespace-only descriptions.
const NoDescription = "<No Description>"

// BankTransaction represents one normalized row from a bank export file.
type BankTransaction struct {
	Date             time.Time
	Amount           decimal.Decimal // signed as exported by the bank
	Description      string          // never empty, see NoDescription
	CheckNo          string          // optional, checking accounts only
	InvestmentName   string          // optional, brokerage accounts only
	InvestmentSymbol string          // optional, brokerage accounts only
	SourceFile       string
	RowIndex         int // 1-based position within the source file
}
