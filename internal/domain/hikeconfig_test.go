package domain

import (
	"strings"
	"testing"
	"time"
)

func validConfig() HikeConfig {
	return HikeConfig{
		StartDate:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Strategy:            StrategyDaylightOnly,
		TargetDistanceMiles: 2190,
		PaceMPH:             2.5,
		BreakEfficiency:     DefaultBreakEfficiency,
		RestAllowanceHours:  DefaultRestAllowanceHours,
		MaxDays:             DefaultMaxDays,
		MaxPlausiblePaceMPH: DefaultMaxPlausiblePaceMPH,
	}
}

func TestHikeConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*HikeConfig)
		wantErr string
	}{
		{"valid", func(c *HikeConfig) {}, ""},
		{"zero start date", func(c *HikeConfig) { c.StartDate = time.Time{} }, "start date"},
		{"unknown strategy", func(c *HikeConfig) { c.Strategy = "sprint" }, "strategy"},
		{"zero distance", func(c *HikeConfig) { c.TargetDistanceMiles = 0 }, "target distance"},
		{"negative pace", func(c *HikeConfig) { c.PaceMPH = -1 }, "pace"},
		{"zero efficiency", func(c *HikeConfig) { c.BreakEfficiency = 0 }, "break efficiency"},
		{"efficiency above one", func(c *HikeConfig) { c.BreakEfficiency = 1.01 }, "break efficiency"},
		{"full efficiency allowed", func(c *HikeConfig) { c.BreakEfficiency = 1.0 }, ""},
		{"negative rest", func(c *HikeConfig) { c.RestAllowanceHours = -0.5 }, "rest allowance"},
		{"rest consumes the day", func(c *HikeConfig) { c.RestAllowanceHours = 24 }, "rest allowance"},
		{"zero rest allowed", func(c *HikeConfig) { c.RestAllowanceHours = 0 }, ""},
		{"zero max days", func(c *HikeConfig) { c.MaxDays = 0 }, "max days"},
		{"zero pace ceiling", func(c *HikeConfig) { c.MaxPlausiblePaceMPH = 0 }, "max plausible pace"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"round_the_clock", StrategyRoundTheClock, false},
		{"daylight_only", StrategyDaylightOnly, false},
		{"", "", true},
		{"Daylight_Only", "", true},
		{"nonstop", "", true},
	}

	for _, tc := range tests {
		got, err := ParseStrategy(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseStrategy(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseStrategy(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
