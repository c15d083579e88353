package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvazi-dev/microgl/internal/model"
)

type mapChart map[string]model.ChartAccount

func (m mapChart) Get(id string) (model.ChartAccount, bool) {
	a, ok := m[id]
	return a, ok
}

func testChart() mapChart {
	return mapChart{
		"1000": {ID: "1000", Type: "asset"},
		"4900": {ID: "4900", Type: "revenue", Taxable: true},
		"6100": {ID: "6100", Type: "expense", Taxable: true},
		"6900": {ID: "6900", Type: "expense"},
	}
}

func TestBuildPostings_Expense(t *testing.T) {
	txn := model.BankTransaction{
		Date:        date(2024, 3, 1),
		Amount:      dec("-4.50"),
		Description: "COFFEE SHOP #12",
		SourceFile:  "CHK-2024-03.csv",
		RowIndex:    1,
	}

	postings, err := BuildPostings("tx1_1", txn, testAccount(), testChart())
	require.NoError(t, err)
	require.Len(t, postings, 2)

	primary, offsetting := postings[0], postings[1]

	assert.Equal(t, "tx1_1", primary.TransactionID)
	assert.Equal(t, model.PrimaryItemID, primary.ItemID)
	assert.Equal(t, "6100", primary.AccountID)
	assert.Equal(t, "CAFE", primary.BusinessPartner)
	assert.Equal(t, model.Debit, primary.Indicator)
	assert.True(t, primary.Amount.Equal(dec("4.50")))
	assert.Equal(t, "expense", primary.AccountType)
	assert.True(t, primary.Taxable)
	assert.Equal(t, 2024, primary.PostingYear)
	assert.Equal(t, 3, primary.PostingPeriod)
	assert.Equal(t, "USD", primary.Currency)
	assert.Equal(t, "CHK", primary.BankAccountCode)

	assert.Equal(t, "tx1_1", offsetting.TransactionID)
	assert.Equal(t, model.OffsettingItemID, offsetting.ItemID)
	assert.Equal(t, "1000", offsetting.AccountID)
	assert.Equal(t, model.Credit, offsetting.Indicator)
	assert.True(t, offsetting.Amount.Equal(dec("-4.50")))
	assert.Equal(t, "asset", offsetting.AccountType)
	assert.False(t, offsetting.Taxable)
	assert.Equal(t, offsetting.Description, primary.Description)
	assert.Equal(t, offsetting.BusinessPartner, primary.BusinessPartner)
}

func TestBuildPostings_Deposit(t *testing.T) {
	txn := model.BankTransaction{
		Date:        date(2024, 3, 15),
		Amount:      dec("1200.00"),
		Description: "UNMATCHED WIRE IN",
	}

	postings, err := BuildPostings("tx2_1", txn, testAccount(), testChart())
	require.NoError(t, err)

	primary, offsetting := postings[0], postings[1]
	assert.Equal(t, "4900", primary.AccountID, "fallback revenue account")
	assert.Equal(t, "UNKNOWN", primary.BusinessPartner)
	assert.Equal(t, model.Credit, primary.Indicator)
	assert.True(t, primary.Amount.Equal(dec("-1200.00")))
	assert.Equal(t, model.Debit, offsetting.Indicator)
	assert.True(t, offsetting.Amount.Equal(dec("1200.00")))
}

func TestBuildPostings_Balance(t *testing.T) {
	amounts := []string{"-42.50", "42.50", "0.00", "-0.01", "999999.99"}
	for _, a := range amounts {
		txn := model.BankTransaction{
			Date:        date(2024, 6, 1),
			Amount:      dec(a),
			Description: "SOMETHING",
		}
		postings, err := BuildPostings("tx", txn, testAccount(), testChart())
		require.NoError(t, err, "amount %s", a)
		assert.True(t, postings[0].Amount.Add(postings[1].Amount).IsZero(), "amount %s", a)
		assert.Equal(t, postings[0].Indicator.Opposite(), postings[1].Indicator, "amount %s", a)
		assert.Equal(t, postings[0].Currency, postings[1].Currency, "amount %s", a)
	}
}

func TestBuildPostings_CreditAccount(t *testing.T) {
	acct := testAccount()
	acct.Code = "CARD"
	acct.Type = model.BankAccountCredit
	acct.BalanceSheetAccount = "1000"

	// Credit-card exports record expenses as positive amounts.
	txn := model.BankTransaction{
		Date:        date(2024, 4, 2),
		Amount:      dec("42.50"),
		Description: "UNMATCHED CARD PURCHASE",
	}

	postings, err := BuildPostings("tx3_1", txn, acct, testChart())
	require.NoError(t, err)
	assert.Equal(t, "6900", postings[0].AccountID, "fallback expense account")
	assert.Equal(t, model.Debit, postings[0].Indicator)
	assert.True(t, postings[0].Amount.Equal(dec("42.50")))
}

func TestBuildPostings_InvestmentFieldsMirrored(t *testing.T) {
	txn := model.BankTransaction{
		Date:             date(2024, 5, 1),
		Amount:           dec("-500.00"),
		Description:      "BUY VTSAX",
		InvestmentName:   "Vanguard Total Stock Market",
		InvestmentSymbol: "VTSAX",
		CheckNo:          "1042",
	}

	postings, err := BuildPostings("tx4_1", txn, testAccount(), testChart())
	require.NoError(t, err)
	for _, p := range postings {
		assert.Equal(t, "Vanguard Total Stock Market", p.InvestmentName)
		assert.Equal(t, "VTSAX", p.InvestmentSymbol)
		assert.Equal(t, "1042", p.CheckNo)
	}
}

func TestBuildPostings_ResolvedAccountMissing(t *testing.T) {
	ch := testChart()
	delete(ch, "6100")

	txn := model.BankTransaction{
		Date:        date(2024, 3, 1),
		Amount:      dec("-4.50"),
		Description: "COFFEE SHOP #12",
	}

	_, err := BuildPostings("tx5_1", txn, testAccount(), ch)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Contains(t, err.Error(), "6100")
}

func TestBuildPostings_BalanceSheetAccountMissing(t *testing.T) {
	ch := testChart()
	delete(ch, "1000")

	txn := model.BankTransaction{
		Date:        date(2024, 3, 1),
		Amount:      dec("-4.50"),
		Description: "COFFEE SHOP #12",
	}

	_, err := BuildPostings("tx6_1", txn, testAccount(), ch)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Contains(t, err.Error(), "1000")
}
