package ingest

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alvazi-dev/microgl/internal/config"
	"github.com/alvazi-dev/microgl/internal/gl"
	"github.com/alvazi-dev/microgl/internal/importer"
	"github.com/alvazi-dev/microgl/internal/ledger"
	"github.com/alvazi-dev/microgl/internal/model"
)

// Store is the durable idempotent sink for posting sets.
type Store interface {
	Exists(transactionID string) (bool, error)
	Insert(postings []model.Posting) error
}

// Summary reports what a run did.
type Summary struct {
	FilesProcessed int
	FilesSkipped   int
	Posted         int
	Duplicates     int
	RecordErrors   int
}

// Processor drives bank files through the posting pipeline into the store.
type Processor struct {
	log          zerolog.Logger
	directory    *config.Directory
	chart        gl.ChartLookup
	store        Store
	bankFilesDir string
}

// NewProcessor creates a Processor.
func NewProcessor(log zerolog.Logger, directory *config.Directory, chart gl.ChartLookup, store Store, bankFilesDir string) *Processor {
	return &Processor{
		log:          log,
		directory:    directory,
		chart:        chart,
		store:        store,
		bankFilesDir: bankFilesDir,
	}
}

// Run processes every bank export file in the configured directory. File
// and record problems are logged and skipped; only storage failures abort
// the run. Re-running over the same files is a no-op for already-posted
// transactions.
func (p *Processor) Run() (Summary, error) {
	log := p.log.With().Str("run_id", uuid.NewString()).Logger()

	files, err := importer.Scan(p.bankFilesDir)
	if err != nil {
		return Summary{}, fmt.Errorf("discovering bank files: %w", err)
	}
	log.Info().Int("files", len(files)).Str("dir", p.bankFilesDir).Msg("starting ingestion run")

	var sum Summary
	for _, f := range files {
		acct, ok := p.directory.Get(f.AccountCode)
		if !ok {
			log.Warn().Str("file", f.Name).Str("account", f.AccountCode).
				Msg("no configuration for bank account, skipping file")
			sum.FilesSkipped++
			continue
		}

		txns, err := importer.ReadFile(f.Path, acct)
		if err != nil {
			log.Error().Err(err).Str("file", f.Name).Msg("cannot parse bank file, skipping file")
			sum.FilesSkipped++
			continue
		}

		log.Info().Str("file", f.Name).Str("account", acct.Code).Int("records", len(txns)).
			Msg("processing bank file")
		if err := p.processFile(log, txns, acct, &sum); err != nil {
			return sum, err
		}
		sum.FilesProcessed++
	}

	log.Info().
		Int("files_processed", sum.FilesProcessed).
		Int("files_skipped", sum.FilesSkipped).
		Int("posted", sum.Posted).
		Int("duplicates", sum.Duplicates).
		Int("record_errors", sum.RecordErrors).
		Msg("ingestion run complete")
	return sum, nil
}

// processFile posts one file's transactions. The duplicate-ordinal batch is
// scoped to the file so re-ingesting an overlapping file resolves each
// transaction to the identity it was first posted under.
func (p *Processor) processFile(log zerolog.Logger, txns []model.BankTransaction, acct config.AccountConfig, sum *Summary) error {
	batch := gl.NewBatch()

	for _, txn := range txns {
		rowLog := log.With().
			Str("file", txn.SourceFile).
			Int("row", txn.RowIndex).
			Str("amount", txn.Amount.StringFixed(2)).
			Str("description", txn.Description).
			Logger()

		digest := gl.Digest(txn.Date, txn.Amount, txn.Description, acct.Code)
		transactionID := batch.NextIdentity(digest)

		postings, err := gl.BuildPostings(transactionID, txn, acct, p.chart)
		if err != nil {
			rowLog.Error().Err(err).Msg("cannot build postings, skipping record")
			sum.RecordErrors++
			continue
		}

		exists, err := p.store.Exists(transactionID)
		if err != nil {
			return fmt.Errorf("checking transaction %s: %w", transactionID, err)
		}
		if exists {
			rowLog.Info().Str("transaction_id", transactionID).Msg("duplicate transaction, already posted")
			sum.Duplicates++
			continue
		}

		if err := p.store.Insert(postings); err != nil {
			if errors.Is(err, ledger.ErrDuplicateKey) {
				rowLog.Warn().Str("transaction_id", transactionID).
					Msg("posting appeared after existence check, keeping stored row")
				sum.Duplicates++
				continue
			}
			return fmt.Errorf("inserting transaction %s: %w", transactionID, err)
		}

		rowLog.Info().
			Str("transaction_id", transactionID).
			Str("account", postings[0].AccountID).
			Str("offset_account", postings[1].AccountID).
			Str("currency", postings[0].Currency).
			Msg("posted transaction")
		sum.Posted++
	}
	return nil
}
