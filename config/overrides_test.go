package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}
	return path
}

func TestLoadOverridesAppliesOnlySetKeys(t *testing.T) {
	savedPlayer, savedPhysics, savedCamera := Player, Physics, Camera
	t.Cleanup(func() {
		Player, Physics, Camera = savedPlayer, savedPhysics, savedCamera
	})

	path := writeTuning(t, `
player:
  jumpImpulse: 6.5
camera:
  marginY: 60
`)
	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	if Player.JumpImpulse != 6.5 {
		t.Errorf("JumpImpulse = %v, want 6.5", Player.JumpImpulse)
	}
	if Player.BoostWith != savedPlayer.BoostWith {
		t.Errorf("BoostWith changed to %v", Player.BoostWith)
	}
	if Camera.MarginY != 60 {
		t.Errorf("MarginY = %v, want 60", Camera.MarginY)
	}
	if Camera.LeadRight != savedCamera.LeadRight {
		t.Errorf("LeadRight changed to %v", Camera.LeadRight)
	}
	if Physics != savedPhysics {
		t.Errorf("Physics changed to %+v", Physics)
	}
}

func TestLoadOverridesErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "player: [unclosed"},
		{"zero frame delta", "physics:\n  maxFrameDelta: 0\n"},
		{"negative iris", "session:\n  irisDuration: -1\n"},
		{"zero tps", "window:\n  tps: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := LoadOverrides(writeTuning(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	if err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStateIDString(t *testing.T) {
	if got := StartEndJump.String(); got != "start_end_jump" {
		t.Errorf("StartEndJump.String() = %q", got)
	}
	if got := StateID(99).String(); got != "unknown" {
		t.Errorf("StateID(99).String() = %q", got)
	}
}
