package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/alvazi-dev/microgl/internal/model"
)

// ErrDuplicateKey reports an insert that collided with an existing posting.
// This only happens when an Exists check went stale; the stored row stays
// authoritative.
var ErrDuplicateKey = errors.New("posting already exists")

const dateFormat = "2006-01-02"

// Amounts are persisted as scaled integers (cents) so decimals round-trip
// exactly. Inserting an amount with more than 2 decimal places is an error.
const schema = `
CREATE TABLE IF NOT EXISTS gl_items (
	transaction_id TEXT NOT NULL,
	transaction_item_id TEXT NOT NULL,
	transaction_date TEXT NOT NULL,
	posting_year INTEGER NOT NULL,
	posting_period INTEGER NOT NULL,
	transaction_amount INTEGER NOT NULL,
	currency_unit TEXT NOT NULL,
	debit_credit_indicator TEXT NOT NULL,
	transaction_description TEXT NOT NULL,
	account_id TEXT NOT NULL,
	business_partner TEXT NOT NULL,
	bank_account_code TEXT NOT NULL,
	investment_name TEXT,
	investment_symbol TEXT,
	check_no TEXT,
	account_type TEXT NOT NULL,
	is_taxable INTEGER NOT NULL,
	PRIMARY KEY (transaction_id, transaction_item_id)
)`

const insertSQL = `
INSERT INTO gl_items (
	transaction_id, transaction_item_id, transaction_date, posting_year,
	posting_period, transaction_amount, currency_unit,
	debit_credit_indicator, transaction_description, account_id,
	business_partner, bank_account_code, investment_name,
	investment_symbol, check_no, account_type, is_taxable
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Store persists GL postings in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the ledger database, creating the file and the gl_items table
// if needed. WAL mode is enabled.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL", path))
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging ledger: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating gl_items table: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Reset drops and recreates the gl_items table. Destructive; used only at
// the start of a full reprocessing run.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DROP TABLE IF EXISTS gl_items"); err != nil {
		return fmt.Errorf("dropping gl_items table: %w", err)
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("recreating gl_items table: %w", err)
	}
	return nil
}

// Exists reports whether any posting with the transaction id is stored.
func (s *Store) Exists(transactionID string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM gl_items WHERE transaction_id = ?", transactionID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking transaction %s: %w", transactionID, err)
	}
	return count > 0, nil
}

// Insert persists a posting set atomically: either every leg is stored or
// none is. A primary-key collision is reported as ErrDuplicateKey.
func (s *Store) Insert(postings []model.Posting) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning ledger transaction: %w", err)
	}

	for _, p := range postings {
		cents, err := toCents(p.Amount)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("posting %s/%s: %w", p.TransactionID, p.ItemID, err)
		}
		_, err = tx.Exec(insertSQL,
			p.TransactionID,
			p.ItemID,
			p.Date.Format(dateFormat),
			p.PostingYear,
			p.PostingPeriod,
			cents,
			p.Currency,
			string(p.Indicator),
			p.Description,
			p.AccountID,
			p.BusinessPartner,
			p.BankAccountCode,
			p.InvestmentName,
			p.InvestmentSymbol,
			p.CheckNo,
			p.AccountType,
			p.Taxable,
		)
		if err != nil {
			tx.Rollback()
			var serr sqlite3.Error
			if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
				return fmt.Errorf("posting %s/%s: %w", p.TransactionID, p.ItemID, ErrDuplicateKey)
			}
			return fmt.Errorf("inserting posting %s/%s: %w", p.TransactionID, p.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing posting insert: %w", err)
	}
	return nil
}

// ReadYear returns all postings for a posting year, ordered by transaction
// and item id. This is the read interface the report export consumes.
func (s *Store) ReadYear(year int) ([]model.Posting, error) {
	rows, err := s.db.Query(`
		SELECT transaction_id, transaction_item_id, transaction_date,
			posting_year, posting_period, transaction_amount, currency_unit,
			debit_credit_indicator, transaction_description, account_id,
			business_partner, bank_account_code, investment_name,
			investment_symbol, check_no, account_type, is_taxable
		FROM gl_items
		WHERE posting_year = ?
		ORDER BY transaction_date, transaction_id, transaction_item_id`, year)
	if err != nil {
		return nil, fmt.Errorf("querying postings for %d: %w", year, err)
	}
	defer rows.Close()

	var postings []model.Posting
	for rows.Next() {
		var (
			p         model.Posting
			dateStr   string
			cents     int64
			indicator string
		)
		err := rows.Scan(
			&p.TransactionID,
			&p.ItemID,
			&dateStr,
			&p.PostingYear,
			&p.PostingPeriod,
			&cents,
			&p.Currency,
			&indicator,
			&p.Description,
			&p.AccountID,
			&p.BusinessPartner,
			&p.BankAccountCode,
			&p.InvestmentName,
			&p.InvestmentSymbol,
			&p.CheckNo,
			&p.AccountType,
			&p.Taxable,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning posting row: %w", err)
		}
		p.Date, err = time.Parse(dateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing stored date %q: %w", dateStr, err)
		}
		p.Amount = fromCents(cents)
		p.Indicator = model.Indicator(indicator)
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading posting rows: %w", err)
	}
	return postings, nil
}

func toCents(d decimal.Decimal) (int64, error) {
	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than 2 decimal places", d)
	}
	return cents.IntPart(), nil
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
