package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/planify/backend/internal/application/adapter"
	"github.com/planify/backend/internal/domain/entity"
	domainerror "github.com/planify/backend/internal/domain/error"
	"github.com/planify/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&model.UserModel{},
		&model.UserProfileModel{},
		&model.TaskModel{},
		&model.HabitModel{},
		&model.NoteModel{},
		&model.TransactionModel{},
		&model.SavingGoalModel{},
		&model.DebtModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestTaskRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	task := entity.NewTask(userID, "write report", entity.PriorityHigh, "2024-05-10", "09:30")
	task.Tags = []string{"work", "deep"}

	stored, err := repo.Create(ctx, task)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if stored.ID != task.ID {
		t.Errorf("expected the id preserved, got %s", stored.ID)
	}

	found, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("FindByUserID failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 task, got %d", len(found))
	}
	got := found[0]
	if got.Title != "write report" || got.Priority != entity.PriorityHigh {
		t.Errorf("fields lost in round trip: %+v", got)
	}
	if got.Date != "2024-05-10" || got.TimeBlock != "09:30" {
		t.Errorf("date fields lost in round trip: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "work" {
		t.Errorf("tags lost in round trip: %v", got.Tags)
	}
	if got.Completed {
		t.Error("expected a fresh task to be incomplete")
	}
}

func TestTaskRepositoryUpdateRenamesColumns(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	task := entity.NewTask(userID, "x", entity.PriorityMedium, "2024-05-10", "")
	if _, err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	completed := true
	block := "14:00"
	tags := []string{"later"}
	err := repo.Update(ctx, userID, task.ID, adapter.TaskPatch{
		Completed: &completed,
		TimeBlock: &block,
		Tags:      &tags,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// Assert directly against the storage columns.
	var row model.TaskModel
	if err := db.Where("id = ?", task.ID).First(&row).Error; err != nil {
		t.Fatalf("row lookup failed: %v", err)
	}
	if !row.IsCompleted {
		t.Error("expected is_completed set")
	}
	if row.TimeBlock != "14:00" {
		t.Errorf("expected time_block 14:00, got %q", row.TimeBlock)
	}
	if len(row.Tags) != 1 || row.Tags[0] != "later" {
		t.Errorf("expected tags rewritten, got %v", row.Tags)
	}
}

func TestTaskRepositoryOwnerScoping(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	task := entity.NewTask(owner, "private", entity.PriorityLow, "2024-05-10", "")
	if _, err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	completed := true
	if err := repo.Update(ctx, intruder, task.ID, adapter.TaskPatch{Completed: &completed}); !errors.Is(err, domainerror.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for a foreign update, got %v", err)
	}
	if err := repo.Delete(ctx, intruder, task.ID); !errors.Is(err, domainerror.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for a foreign delete, got %v", err)
	}
	found, err := repo.FindByUserID(ctx, intruder)
	if err != nil {
		t.Fatalf("FindByUserID failed: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("expected no rows for another user, got %d", len(found))
	}
}

func TestTaskRepositoryCreateBatch(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	tasks := []*entity.Task{
		entity.NewTask(userID, "one", entity.PriorityMedium, "2024-05-10", ""),
		entity.NewTask(userID, "two", entity.PriorityMedium, "2024-05-10", ""),
	}
	stored, err := repo.CreateBatch(ctx, tasks)
	if err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored rows, got %d", len(stored))
	}

	found, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("FindByUserID failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 rows, got %d", len(found))
	}
}

func TestHabitRepositoryCompletedDates(t *testing.T) {
	db := openTestDB(t)
	repo := NewHabitRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	habit := entity.NewHabit(userID, "run", "#fff")
	if _, err := repo.Create(ctx, habit); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	dates := []string{"2024-05-09", "2024-05-10"}
	if err := repo.Update(ctx, userID, habit.ID, adapter.HabitPatch{CompletedDates: &dates}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("FindByUserID failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(found))
	}
	got := found[0].CompletedDates
	if len(got) != 2 || got[0] != "2024-05-09" || got[1] != "2024-05-10" {
		t.Errorf("completed dates lost in round trip: %v", got)
	}

	// Clearing works the same way: the empty list overwrites.
	empty := []string{}
	if err := repo.Update(ctx, userID, habit.ID, adapter.HabitPatch{CompletedDates: &empty}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	found, _ = repo.FindByUserID(ctx, userID)
	if len(found[0].CompletedDates) != 0 {
		t.Errorf("expected the list cleared, got %v", found[0].CompletedDates)
	}
}

func TestProfileRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := repo.FindByID(ctx, userID); !errors.Is(err, domainerror.ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound for a missing row, got %v", err)
	}

	profile := entity.NewDefaultProfile(userID, "user@example.com")
	if err := repo.Create(ctx, profile); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	xp := 105
	level := 2
	if err := repo.Update(ctx, userID, adapter.ProfilePatch{XP: &xp, Level: &level}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.FindByID(ctx, userID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.XP != 105 || got.Level != 2 {
		t.Errorf("expected xp=105 level=2, got xp=%d level=%d", got.XP, got.Level)
	}
	if got.Role != entity.RoleUser || !got.IsActive {
		t.Errorf("unexpected profile defaults: %+v", got)
	}
}

func TestTransactionRepositoryOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	older := entity.NewTransaction(userID, "rent", decimal.NewFromInt(900), entity.TransactionTypeExpense, "housing", "2024-05-01")
	newer := entity.NewTransaction(userID, "salary", decimal.NewFromInt(3000), entity.TransactionTypeIncome, "income", "2024-05-09")
	if _, err := repo.Create(ctx, older); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("FindByUserID failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(found))
	}
	if found[0].Date != "2024-05-09" {
		t.Errorf("expected the most recent date first, got %s", found[0].Date)
	}
	if !found[0].Amount.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("amount lost in round trip: %s", found[0].Amount)
	}
}

func TestGoalAndDebtRepositories(t *testing.T) {
	db := openTestDB(t)
	goals := NewGoalRepository(db)
	debts := NewDebtRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	goal := entity.NewSavingGoal(userID, "laptop", decimal.NewFromInt(1500), decimal.Zero, "#0af", "2024-12-31")
	if _, err := goals.Create(ctx, goal); err != nil {
		t.Fatalf("goal Create failed: %v", err)
	}
	current := decimal.NewFromInt(2000)
	if err := goals.Update(ctx, userID, goal.ID, adapter.GoalPatch{CurrentAmount: &current}); err != nil {
		t.Fatalf("goal Update failed: %v", err)
	}
	foundGoals, err := goals.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("goal FindByUserID failed: %v", err)
	}
	if !foundGoals[0].CurrentAmount.Equal(current) {
		t.Errorf("expected current_amount %s, got %s", current, foundGoals[0].CurrentAmount)
	}

	debt := entity.NewDebt(userID, "car loan", decimal.NewFromInt(5000), decimal.NewFromInt(1000), decimal.NewFromFloat(12.5))
	if _, err := debts.Create(ctx, debt); err != nil {
		t.Fatalf("debt Create failed: %v", err)
	}
	foundDebts, err := debts.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("debt FindByUserID failed: %v", err)
	}
	if !foundDebts[0].InterestRate.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("interest_rate lost in round trip: %s", foundDebts[0].InterestRate)
	}
	if !foundDebts[0].Remaining().Equal(decimal.NewFromInt(4000)) {
		t.Errorf("expected remaining 4000, got %s", foundDebts[0].Remaining())
	}

	if err := debts.Delete(ctx, userID, debt.ID); err != nil {
		t.Fatalf("debt Delete failed: %v", err)
	}
	if err := debts.Delete(ctx, userID, debt.ID); !errors.Is(err, domainerror.ErrDebtNotFound) {
		t.Errorf("expected ErrDebtNotFound on double delete, got %v", err)
	}
}

func TestUserRepositoryEmailLookup(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("User@Example.com", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.FindByEmail(ctx, "user@example.COM")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if got.ID != user.ID {
		t.Error("expected case-insensitive email lookup to find the account")
	}

	exists, err := repo.ExistsByEmail(ctx, "USER@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if !exists {
		t.Error("expected ExistsByEmail to be case-insensitive")
	}

	if _, err := repo.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
