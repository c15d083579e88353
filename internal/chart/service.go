package chart

import (
	"fmt"
	"os"

	"github.com/alvazi-dev/microgl/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.ChartAccount
	byID     map[string]model.ChartAccount
}

// NewService creates a Service from a slice of chart accounts.
func NewService(accounts []model.ChartAccount) *Service {
	byID := make(map[string]model.ChartAccount, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}
	return &Service{accounts: accounts, byID: byID}
}

// Load reads a chart-of-accounts CSV file and returns a Service.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts %s: %w", path, err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.ChartAccount {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id string) (model.ChartAccount, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}
