package gl

import (
	"strings"

	"github.com/alvazi-dev/microgl/internal/config"
	"github.com/alvazi-dev/microgl/internal/model"
)

// Resolution is the outcome of mapping a transaction description to a GL
// account and business partner.
type Resolution struct {
	AccountID       string
	BusinessPartner string
	Rule            *config.MappingRule // matched rule, nil when Fallback
	Fallback        bool
}

// Resolve scans the account's mapping rules in order and returns the first
// rule whose search string is contained in the description. Containment is
// case-sensitive and first-match wins, so rule order is part of the
// account's contract. When no rule matches, the category-specific default
// account and the unknown-partner sentinel are returned with Fallback set.
func Resolve(description string, category model.Category, acct config.AccountConfig) Resolution {
	for i := range acct.Rules {
		rule := &acct.Rules[i]
		if strings.Contains(description, rule.Search) {
			return Resolution{
				AccountID:       rule.Account,
				BusinessPartner: rule.Partner,
				Rule:            rule,
			}
		}
	}

	accountID := acct.Fallback.ExpenseAccount
	if category == model.CategoryDeposit {
		accountID = acct.Fallback.RevenueAccount
	}
	return Resolution{
		AccountID:       accountID,
		BusinessPartner: acct.Fallback.UnknownPartner,
		Fallback:        true,
	}
}
