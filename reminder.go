package finance

import (
	"fmt"
	"strings"
)

// ReminderType classifies a reminder.
type ReminderType string

const (
	Payment      ReminderType = "payment"
	IncomeDue    ReminderType = "income"
	Contribution ReminderType = "investment"
	Review       ReminderType = "review"
	Misc         ReminderType = "other"
)

// ParseReminderType parses a string into a ReminderType.
func ParseReminderType(s string) (ReminderType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "payment":
		return Payment, nil
	case "income":
		return IncomeDue, nil
	case "investment":
		return Contribution, nil
	case "review":
		return Review, nil
	case "other":
		return Misc, nil
	default:
		return "", fmt.Errorf("unknown reminder type: %q", s)
	}
}

// Reminder is a dated note the user can mark as completed.
type Reminder struct {
	Record
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        Date         `gorm:"index;type:text" json:"date"`
	Type        ReminderType `gorm:"index" json:"type"`
	Completed   bool         `json:"completed"`
}

// Toggle returns a copy of the reminder with the completed flag flipped.
func (r Reminder) Toggle() Reminder {
	r.Completed = !r.Completed
	return r
}

// DueReminders returns the reminders dated today that are not completed yet.
func DueReminders(reminders []Reminder, today Date) []Reminder {
	var due []Reminder
	for _, r := range reminders {
		if r.Date == today && !r.Completed {
			due = append(due, r)
		}
	}
	return due
}
