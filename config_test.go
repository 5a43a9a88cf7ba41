package main

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("SALESCOPE_MAX_ATTEMPTS", "")
	t.Setenv("SALESCOPE_TOP_K", "")

	cfg := LoadConfig()
	if cfg.MaxAttempts != 3 {
		t.Errorf("expected default of 3 attempts, got %d", cfg.MaxAttempts)
	}
	if cfg.TopK != 2 {
		t.Errorf("expected default top-k of 2, got %d", cfg.TopK)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("SALESCOPE_MAX_ATTEMPTS", "5")
	t.Setenv("SALESCOPE_TOP_K", "1")

	cfg := LoadConfig()
	if cfg.Provider != "claude" {
		t.Errorf("expected provider claude, got %q", cfg.Provider)
	}
	if cfg.MaxAttempts != 5 {
		t.Errorf("expected 5 attempts, got %d", cfg.MaxAttempts)
	}
	if cfg.TopK != 1 {
		t.Errorf("expected top-k of 1, got %d", cfg.TopK)
	}
}

func TestEnvIntRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "three"},
		{"zero", "0"},
		{"negative", "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SALESCOPE_MAX_ATTEMPTS", tt.value)
			if got := envInt("SALESCOPE_MAX_ATTEMPTS", 3); got != 3 {
				t.Errorf("expected fallback 3, got %d", got)
			}
		})
	}
}
