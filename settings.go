package finance

import (
	"context"
	"encoding/json"
	"fmt"
)

// ModuleNames lists every feature module that can be toggled on or off.
var ModuleNames = []string{
	"transactions",
	"categories",
	"budget",
	"goals",
	"reports",
	"planning",
	"investments",
	"notifications",
}

// Settings is the application configuration. It is persisted as one row per
// top-level key, not as a single blob, so a saved row that only changes one
// key leaves the others untouched.
type Settings struct {
	DarkMode        bool            `json:"darkMode"`
	Currency        string          `json:"currency"`
	BudgetAlerts    bool            `json:"budgetAlerts"`
	GoalAlerts      bool            `json:"goalAlerts"`
	BackupFrequency Frequency       `json:"backupFrequency"`
	Modules         map[string]bool `json:"modules"`
}

// DefaultSettings returns the hard-coded defaults every load starts from.
func DefaultSettings() Settings {
	modules := make(map[string]bool, len(ModuleNames))
	for _, name := range ModuleNames {
		modules[name] = true
	}
	return Settings{
		DarkMode:        false,
		Currency:        "BRL",
		BudgetAlerts:    true,
		GoalAlerts:      true,
		BackupFrequency: Weekly,
		Modules:         modules,
	}
}

// ModuleEnabled reports whether the named module is enabled. Unknown names
// report false.
func (s Settings) ModuleEnabled(name string) bool { return s.Modules[name] }

// SetModule flips one module flag.
//
// Known limitation: two concurrent load-modify-save sequences can race and
// silently drop one update; the store does not serialize writers.
func (s *Settings) SetModule(name string, enabled bool) {
	if s.Modules == nil {
		s.Modules = make(map[string]bool)
	}
	s.Modules[name] = enabled
}

// merge overlays one persisted row onto the settings. The modules map is
// merged key by key, so a row that only disables one module does not clear
// the others. Unknown keys are ignored.
func (s *Settings) merge(row Setting) error {
	switch row.Key {
	case "darkMode":
		return json.Unmarshal(row.Value, &s.DarkMode)
	case "currency":
		return json.Unmarshal(row.Value, &s.Currency)
	case "budgetAlerts":
		return json.Unmarshal(row.Value, &s.BudgetAlerts)
	case "goalAlerts":
		return json.Unmarshal(row.Value, &s.GoalAlerts)
	case "backupFrequency":
		return json.Unmarshal(row.Value, &s.BackupFrequency)
	case "modules":
		var modules map[string]bool
		if err := json.Unmarshal(row.Value, &modules); err != nil {
			return err
		}
		if s.Modules == nil {
			s.Modules = make(map[string]bool)
		}
		for name, enabled := range modules {
			s.Modules[name] = enabled
		}
		return nil
	}
	return nil
}

// rows serializes the settings into one row per top-level key.
func (s Settings) rows() ([]Setting, error) {
	keys := []struct {
		key   string
		value any
	}{
		{"darkMode", s.DarkMode},
		{"currency", s.Currency},
		{"budgetAlerts", s.BudgetAlerts},
		{"goalAlerts", s.GoalAlerts},
		{"backupFrequency", s.BackupFrequency},
		{"modules", s.Modules},
	}
	rows := make([]Setting, 0, len(keys))
	for _, k := range keys {
		data, err := json.Marshal(k.value)
		if err != nil {
			return nil, fmt.Errorf("cannot marshal setting %q: %w", k.key, err)
		}
		rows = append(rows, Setting{Key: k.key, Value: data})
	}
	return rows, nil
}

// LoadSettings reads all settings rows and overlays them onto the defaults.
// A missing or empty settings collection yields the defaults unchanged.
func LoadSettings(ctx context.Context, s *Store) (Settings, error) {
	settings := DefaultSettings()
	rows, err := s.SettingRows(ctx)
	if err != nil {
		return settings, err
	}
	for _, row := range rows {
		if err := settings.merge(row); err != nil {
			return settings, fmt.Errorf("cannot read setting %q: %w", row.Key, err)
		}
	}
	return settings, nil
}

// SaveSettings writes every top-level key as an independent row, upserting
// by key. The loop is not transactional: an interrupted save leaves the
// already-written rows in place.
func SaveSettings(ctx context.Context, s *Store, settings Settings) error {
	rows, err := settings.rows()
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := s.PutSetting(ctx, row); err != nil {
			return err
		}
	}
	return nil
}
