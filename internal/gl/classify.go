package gl

import (
	"github.com/shopspring/decimal"

	"github.com/alvazi-dev/microgl/internal/model"
)

// Classify derives the semantic category of a bank transaction from its raw
// signed amount and the owning account's type. For a Debit-type account a
// non-negative amount is a deposit; for a Credit-type account the polarity
// is inverted, since credit-card exports record expenses as positive
// amounts. A zero amount takes the deposit branch.
func Classify(amount decimal.Decimal, accountType model.BankAccountType) model.Category {
	deposit := !amount.IsNegative()
	if accountType == model.BankAccountCredit {
		deposit = !deposit
	}
	if deposit {
		return model.CategoryDeposit
	}
	return model.CategoryWithdrawal
}

// IndicatorFor returns the debit/credit indicator of the primary leg for a
// category: deposits (revenue, transfers in) are credited, withdrawals
// (expenses, transfers out) are debited.
func IndicatorFor(category model.Category) model.Indicator {
	if category == model.CategoryDeposit {
		return model.Credit
	}
	return model.Debit
}
