package finance

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Frequency is the cadence of the automatic backup.
type Frequency int

const (
	Never Frequency = iota
	Daily
	Weekly
	Monthly
)

func (f Frequency) String() string {
	switch f {
	case Never:
		return "never"
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// Interval returns the duration between two backups, or 0 for Never.
// A month is counted as 30 days.
func (f Frequency) Interval() time.Duration {
	switch f {
	case Daily:
		return 24 * time.Hour
	case Weekly:
		return 7 * 24 * time.Hour
	case Monthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// MarshalJSON encodes the frequency as its string name, the form used by
// the settings rows and the export document.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Frequency) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	p, err := ParseFrequency(str)
	if err != nil {
		return err
	}
	*f = p
	return nil
}

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never":
		return Never, nil
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Never, fmt.Errorf("unknown backup frequency %q", s)
	}
}
