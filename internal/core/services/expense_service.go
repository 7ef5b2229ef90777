package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/google/uuid"
)

const defaultExpenseListLimit = 50

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense stores an expense dated today unless the request carries a date.
func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(req.Description)
	category := strings.TrimSpace(req.Category)
	if description == "" || category == "" {
		return nil, fmt.Errorf("%w: expense description and category are required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	now := s.now()
	date := now
	if req.Date != nil && !req.Date.IsZero() {
		date = req.Date.UTC()
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      userID,
		Description: description,
		Amount:      req.Amount,
		Category:    category,
		Date:        date,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string, limit int) ([]domain.Expense, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultExpenseListLimit
	}
	expenses, err := s.expenseRepo.FindExpensesByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, userID, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	return nil
}
