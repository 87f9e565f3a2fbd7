package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

// AddTransactionInput carries the fields of a new transaction.
type AddTransactionInput struct {
	Title    string
	Amount   decimal.Decimal
	Type     entity.TransactionType
	Category string
	Date     string
}

// AddTransaction inserts a transaction remotely and prepends the stored
// row locally. The amount is stored as an unsigned magnitude.
func (s *Store) AddTransaction(ctx context.Context, input AddTransactionInput) (*entity.Transaction, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.ErrInvalidTransactionType
	}
	if input.Date == "" {
		input.Date = entity.LocalDate(time.Now())
	}
	if _, err := time.Parse(entity.DateLayout, input.Date); err != nil {
		return nil, domainerror.ErrInvalidDate
	}

	tx := entity.NewTransaction(session.UserID, input.Title, input.Amount, input.Type, input.Category, input.Date)
	if !s.isDemo() {
		stored, err := s.repos.Transactions.Create(ctx, tx)
		if err != nil {
			return nil, err
		}
		tx = stored
	}

	s.mu.Lock()
	s.transactions = append([]*entity.Transaction{tx.Clone()}, s.transactions...)
	s.mu.Unlock()
	return tx, nil
}

// DeleteTransaction removes the transaction locally and issues the remote
// delete. No resync path; a remote failure is logged only.
func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) (Outcome, error) {
	s.mu.Lock()
	kept := s.transactions[:0:0]
	found := false
	for _, t := range s.transactions {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	s.transactions = kept
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrTransactionNotFound
	}
	return s.remoteDelete(ctx, "transaction", id, func(session *entity.Session) error {
		return s.repos.Transactions.Delete(ctx, session.UserID, id)
	})
}

// AddGoalInput carries the fields of a new saving goal.
type AddGoalInput struct {
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Color         string
	Deadline      string
}

// AddGoal inserts a saving goal remotely and appends the stored row locally.
func (s *Store) AddGoal(ctx context.Context, input AddGoalInput) (*entity.SavingGoal, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}

	goal := entity.NewSavingGoal(session.UserID, input.Title, input.TargetAmount, input.CurrentAmount, input.Color, input.Deadline)
	if !s.isDemo() {
		stored, err := s.repos.Goals.Create(ctx, goal)
		if err != nil {
			return nil, err
		}
		goal = stored
	}

	s.mu.Lock()
	s.goals = append(s.goals, goal.Clone())
	s.mu.Unlock()
	return goal, nil
}

// UpdateGoal applies a shallow merge locally and issues the remote patch.
// Over-saving is allowed; CurrentAmount is never clamped to the target.
func (s *Store) UpdateGoal(ctx context.Context, id uuid.UUID, patch adapter.GoalPatch) (Outcome, error) {
	s.mu.Lock()
	found := false
	for _, g := range s.goals {
		if g.ID != id {
			continue
		}
		found = true
		if patch.Title != nil {
			g.Title = *patch.Title
		}
		if patch.TargetAmount != nil {
			g.TargetAmount = *patch.TargetAmount
		}
		if patch.CurrentAmount != nil {
			g.CurrentAmount = *patch.CurrentAmount
		}
		if patch.Color != nil {
			g.Color = *patch.Color
		}
		if patch.Deadline != nil {
			g.Deadline = *patch.Deadline
		}
		break
	}
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrGoalNotFound
	}

	outcome := Outcome{AppliedLocally: true}
	if s.isDemo() {
		return outcome, nil
	}
	session, err := s.currentSession()
	if err != nil {
		return outcome, err
	}
	if err := s.repos.Goals.Update(ctx, session.UserID, id, patch); err != nil {
		s.logger.Warn("goal update persist failed", "goal_id", id, "error", err)
	} else {
		outcome.PersistedRemotely = true
	}
	return outcome, nil
}

// DeleteGoal removes the goal locally and issues the remote delete. No
// resync path; a remote failure is logged only.
func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) (Outcome, error) {
	s.mu.Lock()
	kept := s.goals[:0:0]
	found := false
	for _, g := range s.goals {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	s.goals = kept
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrGoalNotFound
	}
	return s.remoteDelete(ctx, "goal", id, func(session *entity.Session) error {
		return s.repos.Goals.Delete(ctx, session.UserID, id)
	})
}

// AddDebtInput carries the fields of a new debt.
type AddDebtInput struct {
	Title        string
	TotalAmount  decimal.Decimal
	PaidAmount   decimal.Decimal
	InterestRate decimal.Decimal
}

// AddDebt inserts a debt remotely and appends the stored row locally.
func (s *Store) AddDebt(ctx context.Context, input AddDebtInput) (*entity.Debt, error) {
	session, err := s.currentSession()
	if err != nil {
		return nil, err
	}

	debt := entity.NewDebt(session.UserID, input.Title, input.TotalAmount, input.PaidAmount, input.InterestRate)
	if !s.isDemo() {
		stored, err := s.repos.Debts.Create(ctx, debt)
		if err != nil {
			return nil, err
		}
		debt = stored
	}

	s.mu.Lock()
	s.debts = append(s.debts, debt.Clone())
	s.mu.Unlock()
	return debt, nil
}

// UpdateDebt applies a shallow merge locally and issues the remote patch.
// Paying past the total is not prevented.
func (s *Store) UpdateDebt(ctx context.Context, id uuid.UUID, patch adapter.DebtPatch) (Outcome, error) {
	s.mu.Lock()
	found := false
	for _, d := range s.debts {
		if d.ID != id {
			continue
		}
		found = true
		if patch.Title != nil {
			d.Title = *patch.Title
		}
		if patch.TotalAmount != nil {
			d.TotalAmount = *patch.TotalAmount
		}
		if patch.PaidAmount != nil {
			d.PaidAmount = *patch.PaidAmount
		}
		if patch.InterestRate != nil {
			d.InterestRate = *patch.InterestRate
		}
		break
	}
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrDebtNotFound
	}

	outcome := Outcome{AppliedLocally: true}
	if s.isDemo() {
		return outcome, nil
	}
	session, err := s.currentSession()
	if err != nil {
		return outcome, err
	}
	if err := s.repos.Debts.Update(ctx, session.UserID, id, patch); err != nil {
		s.logger.Warn("debt update persist failed", "debt_id", id, "error", err)
	} else {
		outcome.PersistedRemotely = true
	}
	return outcome, nil
}

// DeleteDebt removes the debt locally and issues the remote delete. No
// resync path; a remote failure is logged only.
func (s *Store) DeleteDebt(ctx context.Context, id uuid.UUID) (Outcome, error) {
	s.mu.Lock()
	kept := s.debts[:0:0]
	found := false
	for _, d := range s.debts {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	s.debts = kept
	s.mu.Unlock()

	if !found {
		return Outcome{}, domainerror.ErrDebtNotFound
	}
	return s.remoteDelete(ctx, "debt", id, func(session *entity.Session) error {
		return s.repos.Debts.Delete(ctx, session.UserID, id)
	})
}

// remoteDelete runs the shared no-resync delete tail: skip in demo mode,
// log failures without propagating them.
func (s *Store) remoteDelete(_ context.Context, kind string, id uuid.UUID, del func(*entity.Session) error) (Outcome, error) {
	outcome := Outcome{AppliedLocally: true}
	if s.isDemo() {
		return outcome, nil
	}
	session, err := s.currentSession()
	if err != nil {
		return outcome, err
	}
	if err := del(session); err != nil {
		s.logger.Warn(kind+" delete failed", "id", id, "error", err)
		return outcome, nil
	}
	outcome.PersistedRemotely = true
	return outcome, nil
}
