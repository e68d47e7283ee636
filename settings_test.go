package finance

import (
	"context"
	"encoding/json"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Currency != "BRL" {
		t.Errorf("Currency = %q, want BRL", s.Currency)
	}
	if s.DarkMode {
		t.Error("DarkMode defaults to true, want false")
	}
	if !s.BudgetAlerts || !s.GoalAlerts {
		t.Error("alert toggles default to off, want on")
	}
	if s.BackupFrequency != Weekly {
		t.Errorf("BackupFrequency = %s, want weekly", s.BackupFrequency)
	}
	for _, name := range ModuleNames {
		if !s.ModuleEnabled(name) {
			t.Errorf("module %q defaults to disabled, want enabled", name)
		}
	}
	if s.ModuleEnabled("no-such-module") {
		t.Error("unknown module reports enabled, want disabled")
	}
}

func TestLoadSettingsEmptyStore(t *testing.T) {
	s := newTestStore(t)

	got, err := LoadSettings(context.Background(), s)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if got.Currency != "BRL" || got.BackupFrequency != Weekly {
		t.Errorf("empty store loaded %+v, want the defaults", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	settings := DefaultSettings()
	settings.DarkMode = true
	settings.Currency = "EUR"
	settings.BackupFrequency = Daily
	settings.SetModule("planning", false)

	if err := SaveSettings(ctx, s, settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	got, err := LoadSettings(ctx, s)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}

	if !got.DarkMode || got.Currency != "EUR" || got.BackupFrequency != Daily {
		t.Errorf("loaded %+v, want the saved values back", got)
	}
	if got.ModuleEnabled("planning") {
		t.Error("planning module enabled after round trip, want disabled")
	}
	if !got.ModuleEnabled("transactions") {
		t.Error("transactions module disabled after round trip, want still enabled")
	}
}

func TestLoadSettingsMergesPartialModuleRow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// A persisted modules row naming a single module must not wipe the
	// default state of the others.
	row := Setting{Key: "modules", Value: json.RawMessage(`{"budget":false}`)}
	if err := s.PutSetting(ctx, row); err != nil {
		t.Fatalf("PutSetting() failed: %v", err)
	}

	got, err := LoadSettings(ctx, s)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if got.ModuleEnabled("budget") {
		t.Error("budget module enabled, want disabled by the persisted row")
	}
	for _, name := range []string{"transactions", "goals", "reports"} {
		if !got.ModuleEnabled(name) {
			t.Errorf("module %q disabled, want default enabled", name)
		}
	}
}

func TestLoadSettingsSingleKeyRow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.PutSetting(ctx, Setting{Key: "darkMode", Value: json.RawMessage(`true`)}); err != nil {
		t.Fatalf("PutSetting() failed: %v", err)
	}

	got, err := LoadSettings(ctx, s)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if !got.DarkMode {
		t.Error("DarkMode not overlaid from the persisted row")
	}
	if got.Currency != "BRL" {
		t.Errorf("Currency = %q, want the untouched default BRL", got.Currency)
	}
}

func TestLoadSettingsIgnoresUnknownKey(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.PutSetting(ctx, Setting{Key: "legacyKey", Value: json.RawMessage(`"stale"`)}); err != nil {
		t.Fatalf("PutSetting() failed: %v", err)
	}
	if _, err := LoadSettings(ctx, s); err != nil {
		t.Errorf("LoadSettings() failed on unknown key: %v", err)
	}
}
