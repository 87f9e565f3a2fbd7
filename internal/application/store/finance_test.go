package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
)

func TestAddTransaction(t *testing.T) {
	f := newFixture(t)

	tx, err := f.store.AddTransaction(context.Background(), AddTransactionInput{
		Title:    "groceries",
		Amount:   decimal.NewFromInt(-120), // sign is stripped on intake
		Type:     entity.TransactionTypeExpense,
		Category: "food",
		Date:     "2024-05-10",
	})
	if err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected the amount stored as a magnitude, got %s", tx.Amount)
	}
	if !tx.SignedAmount().Equal(decimal.NewFromInt(-120)) {
		t.Errorf("expected a negative signed amount for an expense, got %s", tx.SignedAmount())
	}
	if f.transactions.createCalls != 1 {
		t.Errorf("expected 1 remote insert, got %d", f.transactions.createCalls)
	}
	// Finance mutations never award XP.
	if got := f.store.Profile().XP; got != 0 {
		t.Errorf("expected no XP for a transaction, got %d", got)
	}
}

func TestAddTransactionValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.AddTransaction(ctx, AddTransactionInput{Title: "x", Type: "transfer"})
	if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
		t.Errorf("expected ErrInvalidTransactionType, got %v", err)
	}
	_, err = f.store.AddTransaction(ctx, AddTransactionInput{Title: "x", Type: entity.TransactionTypeIncome, Date: "yesterday"})
	if !errors.Is(err, domainerror.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if f.transactions.createCalls != 0 {
		t.Errorf("expected no remote insert for rejected input, got %d", f.transactions.createCalls)
	}
}

func TestDeleteTransactionNoResync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tx, _ := f.store.AddTransaction(ctx, AddTransactionInput{
		Title: "salary", Amount: decimal.NewFromInt(1000), Type: entity.TransactionTypeIncome,
	})
	f.transactions.deleteErr = errors.New("delete rejected")

	outcome, err := f.store.DeleteTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("expected the delete failure to be absorbed, got %v", err)
	}
	if !outcome.AppliedLocally || outcome.PersistedRemotely || outcome.Resynced {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	// No corrective re-fetch for transactions; local and remote diverge.
	if f.transactions.findCalls != 1 { // the bootstrap fetch only
		t.Errorf("expected no re-fetch after a failed delete, got %d fetches", f.transactions.findCalls)
	}
	if len(f.store.Transactions()) != 0 {
		t.Error("expected the transaction to stay removed locally")
	}
}

func TestGoalsAppendInOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, _ := f.store.AddGoal(ctx, AddGoalInput{Title: "laptop", TargetAmount: decimal.NewFromInt(1500)})
	second, _ := f.store.AddGoal(ctx, AddGoalInput{Title: "trip", TargetAmount: decimal.NewFromInt(800)})

	goals := f.store.Goals()
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[0].ID != first.ID || goals[1].ID != second.ID {
		t.Error("expected goals appended in insertion order")
	}
}

func TestUpdateGoalAllowsOverSaving(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	goal, _ := f.store.AddGoal(ctx, AddGoalInput{Title: "laptop", TargetAmount: decimal.NewFromInt(1500)})

	over := decimal.NewFromInt(2000)
	outcome, err := f.store.UpdateGoal(ctx, goal.ID, adapter.GoalPatch{CurrentAmount: &over})
	if err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}
	if !outcome.AppliedLocally || !outcome.PersistedRemotely {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
	got := f.store.Goals()[0]
	if !got.CurrentAmount.Equal(over) {
		t.Errorf("expected the current amount uncapped at %s, got %s", over, got.CurrentAmount)
	}
	if !got.TargetAmount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("untouched field changed: %s", got.TargetAmount)
	}
}

func TestUpdateGoalUnknownID(t *testing.T) {
	f := newFixture(t)

	amount := decimal.NewFromInt(10)
	_, err := f.store.UpdateGoal(context.Background(), uuid.New(), adapter.GoalPatch{CurrentAmount: &amount})
	if !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestUpdateDebtAllowsOverpayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	debt, _ := f.store.AddDebt(ctx, AddDebtInput{
		Title:       "car loan",
		TotalAmount: decimal.NewFromInt(5000),
		PaidAmount:  decimal.NewFromInt(1000),
	})

	paid := decimal.NewFromInt(6000)
	if _, err := f.store.UpdateDebt(ctx, debt.ID, adapter.DebtPatch{PaidAmount: &paid}); err != nil {
		t.Fatalf("UpdateDebt failed: %v", err)
	}
	got := f.store.Debts()[0]
	if !got.PaidAmount.Equal(paid) {
		t.Errorf("expected the paid amount uncapped at %s, got %s", paid, got.PaidAmount)
	}
	if !got.Remaining().Equal(decimal.NewFromInt(-1000)) {
		t.Errorf("expected a negative remainder after overpayment, got %s", got.Remaining())
	}
}

func TestDeleteGoalNoResync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	goal, _ := f.store.AddGoal(ctx, AddGoalInput{Title: "laptop", TargetAmount: decimal.NewFromInt(1500)})
	f.goals.deleteErr = errors.New("delete rejected")

	outcome, err := f.store.DeleteGoal(ctx, goal.ID)
	if err != nil {
		t.Fatalf("expected the delete failure to be absorbed, got %v", err)
	}
	if outcome.Resynced {
		t.Error("expected no resync for goal deletes")
	}
	if f.goals.findCalls != 1 { // the bootstrap fetch only
		t.Errorf("expected no re-fetch after a failed delete, got %d fetches", f.goals.findCalls)
	}
}

func TestGoalsSnapshotIsolatedFromUpdates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	goal, _ := f.store.AddGoal(ctx, AddGoalInput{Title: "laptop", TargetAmount: decimal.NewFromInt(1500)})

	snapshot := f.store.Goals()

	saved := decimal.NewFromInt(400)
	if _, err := f.store.UpdateGoal(ctx, goal.ID, adapter.GoalPatch{CurrentAmount: &saved}); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	if !snapshot[0].CurrentAmount.IsZero() {
		t.Errorf("expected the snapshot untouched by the update, got %s", snapshot[0].CurrentAmount)
	}
	if !f.store.Goals()[0].CurrentAmount.Equal(saved) {
		t.Error("expected the store to carry the update")
	}
}
