package gl

import (
	"errors"
	"fmt"

	"github.com/alvazi-dev/microgl/internal/config"
	"github.com/alvazi-dev/microgl/internal/model"
)

// ErrAccountNotFound reports a resolved GL account missing from the chart
// of accounts. The affected transaction is skipped, not the whole run.
var ErrAccountNotFound = errors.New("account not in chart of accounts")

// ErrUnbalanced reports two posting legs that do not sum to zero. This is a
// construction defect, never silently corrected.
var ErrUnbalanced = errors.New("posting legs do not balance")

// ChartLookup resolves GL account ids to their chart entries.
type ChartLookup interface {
	Get(id string) (model.ChartAccount, bool)
}

// BuildPostings constructs the balanced two-leg posting set for one bank
// transaction. The primary leg carries the resolved GL account; the
// offsetting leg mirrors it onto the account's balance-sheet account with
// the opposite indicator and the negated amount. The returned pair is
// ordered [primary, offsetting].
func BuildPostings(transactionID string, txn model.BankTransaction, acct config.AccountConfig, chart ChartLookup) ([]model.Posting, error) {
	category := Classify(txn.Amount, acct.Type)
	res := Resolve(txn.Description, category, acct)

	target, ok := chart.Get(res.AccountID)
	if !ok {
		return nil, fmt.Errorf("resolved account %s: %w", res.AccountID, ErrAccountNotFound)
	}
	balance, ok := chart.Get(acct.BalanceSheetAccount)
	if !ok {
		return nil, fmt.Errorf("balance-sheet account %s: %w", acct.BalanceSheetAccount, ErrAccountNotFound)
	}

	indicator := IndicatorFor(category)
	amount := txn.Amount.Abs()
	if indicator == model.Credit {
		amount = amount.Neg()
	}

	primary := model.Posting{
		TransactionID:    transactionID,
		ItemID:           model.PrimaryItemID,
		Date:             txn.Date,
		PostingYear:      txn.Date.Year(),
		PostingPeriod:    int(txn.Date.Month()),
		Amount:           amount,
		Currency:         acct.Currency,
		Indicator:        indicator,
		Description:      txn.Description,
		AccountID:        res.AccountID,
		BusinessPartner:  res.BusinessPartner,
		BankAccountCode:  acct.Code,
		InvestmentName:   txn.InvestmentName,
		InvestmentSymbol: txn.InvestmentSymbol,
		CheckNo:          txn.CheckNo,
		AccountType:      target.Type,
		Taxable:          target.Taxable,
	}

	offsetting := primary
	offsetting.ItemID = model.OffsettingItemID
	offsetting.AccountID = acct.BalanceSheetAccount
	offsetting.Indicator = indicator.Opposite()
	offsetting.Amount = amount.Neg()
	offsetting.AccountType = balance.Type
	offsetting.Taxable = balance.Taxable

	if !primary.Amount.Add(offsetting.Amount).IsZero() {
		return nil, fmt.Errorf("transaction %s: legs %s and %s: %w",
			transactionID, primary.Amount, offsetting.Amount, ErrUnbalanced)
	}

	return []model.Posting{primary, offsetting}, nil
}
