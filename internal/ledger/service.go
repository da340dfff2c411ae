package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abgdnv/storekeeper/internal/currency"
	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/abgdnv/storekeeper/internal/record"
	"github.com/abgdnv/storekeeper/internal/search"
	"github.com/abgdnv/storekeeper/internal/stats"
	"github.com/abgdnv/storekeeper/internal/store"
	"github.com/abgdnv/storekeeper/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ExpenseService defines the operations of the expense ledger.
type ExpenseService interface {
	// Add validates and records a new expense.
	// Returns ErrValidation if the name is blank or the value is not positive.
	Add(ctx context.Context, expense ExpenseCreateDto) (Expense, error)

	// List returns all expenses in ledger order together with their running total.
	List(ctx context.Context) ([]Expense, decimal.Decimal)

	// Statistics summarises the ledger. Returns ErrEmptyInput if it holds no expenses.
	Statistics(ctx context.Context) (stats.Summary, error)

	// Sort reorders the ledger ascending by value.
	Sort(ctx context.Context)

	// Convert projects every expense into another currency without changing the ledger.
	Convert(ctx context.Context, rate currency.Rate) (currency.Conversion, error)

	SearchByLabel(ctx context.Context, query string) []Expense
	Remove(ctx context.Context, code string) bool
	Rename(ctx context.Context, code, name string) (Expense, error)
}

// ExpenseCreateDto carries the fields of an expense to be recorded.
type ExpenseCreateDto struct {
	Name  string          `json:"name"  validate:"required"`
	Value decimal.Decimal `json:"value" validate:"gt=0"`
}

var _ ExpenseService = (*Service)(nil)

// Service implements ExpenseService on top of a record store.
type Service struct {
	store    store.Store[Expense]
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a new instance of ExpenseService backed by s.
func NewService(s store.Store[Expense], logger *slog.Logger) *Service {
	return &Service{
		store:    s,
		validate: validation.New(),
		logger:   logger.With("component", "ledger"),
	}
}

// Add records a new expense.
func (s *Service) Add(ctx context.Context, expense ExpenseCreateDto) (Expense, error) {
	expense.Name = strings.TrimSpace(expense.Name)
	if err := validation.Struct(s.validate, expense); err != nil {
		s.logger.WarnContext(ctx, "Rejected expense", "name", expense.Name, "error", err)
		return Expense{}, fmt.Errorf("failed to add expense: %w", err)
	}
	e := s.store.Add(func(code string) Expense {
		return Expense{Code: code, Name: expense.Name, Value: expense.Value}
	})
	s.logger.DebugContext(ctx, "Expense added", "code", e.Code, "name", e.Name, "value", e.Value.String())
	return e, nil
}

// List returns every expense and their total.
func (s *Service) List(_ context.Context) ([]Expense, decimal.Decimal) {
	list := s.store.List()
	return list, record.Total(record.Entries(list))
}

// Statistics computes sum, average and extremes of the ledger.
func (s *Service) Statistics(ctx context.Context) (stats.Summary, error) {
	summary, err := stats.Compute(record.Entries(s.store.List()))
	if err != nil {
		s.logger.DebugContext(ctx, "Statistics requested on empty ledger")
		return stats.Summary{}, fmt.Errorf("failed to compute statistics: %w", err)
	}
	return summary, nil
}

// Sort bubble-sorts the ledger ascending by value.
func (s *Service) Sort(ctx context.Context) {
	s.store.SortByAmount()
	s.logger.InfoContext(ctx, "Ledger sorted", "count", s.store.Len())
}

// Convert divides every expense by the rate.
func (s *Service) Convert(ctx context.Context, rate currency.Rate) (currency.Conversion, error) {
	c, err := currency.Convert(record.Entries(s.store.List()), rate)
	if err != nil {
		return currency.Conversion{}, fmt.Errorf("failed to convert to %s: %w", rate.Unit, err)
	}
	s.logger.DebugContext(ctx, "Ledger converted", "unit", rate.Unit, "rate", rate.PerUnit.String())
	return c, nil
}

// SearchByLabel returns expenses whose name contains query, ignoring case.
func (s *Service) SearchByLabel(_ context.Context, query string) []Expense {
	return search.ByLabel(s.store.List(), query)
}

// Remove deletes an expense by its code.
func (s *Service) Remove(ctx context.Context, code string) bool {
	removed := s.store.Remove(code)
	s.logger.InfoContext(ctx, "Expense removal requested", "code", code, "removed", removed)
	return removed
}

// Rename changes the name of an expense.
func (s *Service) Rename(ctx context.Context, code, name string) (Expense, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Var(name, "required"); err != nil {
		return Expense{}, fmt.Errorf("%w: name %v", storeerrors.ErrValidation, err)
	}
	e, err := s.store.Update(code, func(e *Expense) error {
		e.Name = name
		return nil
	})
	if err != nil {
		return Expense{}, fmt.Errorf("failed to rename expense %s: %w", code, err)
	}
	s.logger.InfoContext(ctx, "Expense renamed", "code", code, "name", name)
	return e, nil
}
