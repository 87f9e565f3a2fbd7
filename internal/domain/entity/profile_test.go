package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{1050, 11},
	}

	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.level {
			t.Errorf("LevelForXP(%d) = %d, expected %d", c.xp, got, c.level)
		}
	}
}

func TestNewDefaultProfile(t *testing.T) {
	userID := uuid.New()
	p := NewDefaultProfile(userID, "user@example.com")

	if p.ID != userID {
		t.Errorf("expected profile id to equal user id")
	}
	if p.Role != RoleUser {
		t.Errorf("expected role user, got %s", p.Role)
	}
	if !p.IsActive {
		t.Error("expected new profile to be active")
	}
	if p.XP != 0 || p.Level != 1 {
		t.Errorf("expected xp 0 level 1, got xp %d level %d", p.XP, p.Level)
	}
	if p.IsAdmin() {
		t.Error("default profile must not be admin")
	}
	if !p.HasAccess() {
		t.Error("default profile must have access")
	}
}

func TestDebtRemaining(t *testing.T) {
	d := &Debt{}
	d.TotalAmount = decimalFromInt(1000)
	d.PaidAmount = decimalFromInt(250)

	if got := d.Remaining(); !got.Equal(decimalFromInt(750)) {
		t.Errorf("expected remaining 750, got %s", got)
	}

	// Overpayment is allowed; remaining goes negative.
	d.PaidAmount = decimalFromInt(1200)
	if got := d.Remaining(); !got.Equal(decimalFromInt(-200)) {
		t.Errorf("expected remaining -200, got %s", got)
	}
}
