package flutter

import (
	"testing"

	"github.com/vovakirdan/mystic-flutter/internal/config"
)

func newTestTimeControl() TimeControl {
	return NewTimeControl(config.DefaultFlutterConfig().TimeControl)
}

func TestTimeControlInitial(t *testing.T) {
	tc := newTestTimeControl()
	if tc.State() != TimeIdle || tc.Scale() != 1 || !tc.Available() {
		t.Errorf("unexpected initial state %v scale %f", tc.State(), tc.Scale())
	}
	if s := tc.Advance(); s != 1 {
		t.Errorf("idle advance scale = %f, want 1", s)
	}
	if tc.Timer() != 0 {
		t.Errorf("idle timer = %d, want 0", tc.Timer())
	}
}

func TestTimeControlActiveDuration(t *testing.T) {
	tc := newTestTimeControl()
	if !tc.Trigger() {
		t.Fatal("trigger from idle should succeed")
	}
	if tc.State() != TimeActive || tc.Scale() != 0.6 {
		t.Fatalf("after trigger: state %v scale %f", tc.State(), tc.Scale())
	}

	// int(180 * 0.6) = 108 frames stay active; the 109th ends it.
	for i := 1; i <= 108; i++ {
		if s := tc.Advance(); s != 0.6 {
			t.Fatalf("frame %d: scale %f, want 0.6", i, s)
		}
	}
	if tc.State() != TimeActive {
		t.Fatalf("state after 108 frames = %v, want active", tc.State())
	}
	if s := tc.Advance(); s != 1 {
		t.Errorf("scale on the ending frame = %f, want 1", s)
	}
	if tc.State() != TimeCooldown || tc.Timer() != 0 {
		t.Errorf("after active phase: state %v timer %d", tc.State(), tc.Timer())
	}
}

func TestTimeControlTriggerNoOp(t *testing.T) {
	tc := newTestTimeControl()
	tc.Trigger()
	for i := 0; i < 10; i++ {
		tc.Advance()
	}

	if tc.Trigger() {
		t.Error("trigger while active should fail")
	}
	if tc.State() != TimeActive || tc.Timer() != 10 {
		t.Errorf("trigger while active changed state: %v timer %d", tc.State(), tc.Timer())
	}

	for tc.State() == TimeActive {
		tc.Advance()
	}
	for i := 0; i < 5; i++ {
		tc.Advance()
	}
	if tc.Trigger() {
		t.Error("trigger during cooldown should fail")
	}
	if tc.State() != TimeCooldown || tc.Timer() != 5 {
		t.Errorf("trigger during cooldown changed state: %v timer %d", tc.State(), tc.Timer())
	}
}

func TestTimeControlCooldownLength(t *testing.T) {
	tc := newTestTimeControl()
	tc.Trigger()
	for tc.State() == TimeActive {
		tc.Advance()
	}

	for i := 1; i <= 600; i++ {
		tc.Advance()
		if tc.State() != TimeCooldown {
			t.Fatalf("cooldown ended early at frame %d", i)
		}
		if tc.Available() {
			t.Fatalf("available during cooldown at frame %d", i)
		}
	}
	tc.Advance()
	if tc.State() != TimeIdle || !tc.Available() {
		t.Errorf("state after 601 cooldown frames = %v, want idle", tc.State())
	}
	if !tc.Trigger() {
		t.Error("trigger after cooldown should succeed")
	}
}

func TestTimeControlCooldownSeconds(t *testing.T) {
	tc := newTestTimeControl()
	if got := tc.CooldownSeconds(60); got != 0 {
		t.Errorf("idle cooldown seconds = %d, want 0", got)
	}

	tc.Trigger()
	for tc.State() == TimeActive {
		tc.Advance()
	}

	tests := []struct {
		advance int
		want    int
	}{
		{0, 10},
		{59, 10},
		{1, 9},
		{539, 1},
		{1, 0},
	}
	for _, tt := range tests {
		for i := 0; i < tt.advance; i++ {
			tc.Advance()
		}
		if got := tc.CooldownSeconds(60); got != tt.want {
			t.Errorf("timer %d: cooldown seconds = %d, want %d", tc.Timer(), got, tt.want)
		}
	}
}

func TestTimeControlReset(t *testing.T) {
	tc := newTestTimeControl()
	tc.Trigger()
	tc.Advance()
	tc.Reset()
	if tc.State() != TimeIdle || tc.Timer() != 0 || tc.Scale() != 1 {
		t.Errorf("reset left state %v timer %d scale %f", tc.State(), tc.Timer(), tc.Scale())
	}
}
