package finance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// this file handles the import/export format: the whole database in a
// single versioned JSON document, human readable and safe to re-import.

// DocumentVersion is the version written to every export document.
const DocumentVersion = "2.0"

// Document is the import/export format. Identifiers are carried for
// reference but discarded on import: every record is re-inserted and gets a
// fresh identifier. This is safe because cross-collection references are by
// category name, never by identifier.
type Document struct {
	Transactions []Transaction `json:"transactions"`
	Categories   []Category    `json:"categories"`
	Budgets      []Budget      `json:"budgets"`
	Goals        []Goal        `json:"goals"`
	Investments  []Investment  `json:"investments"`
	Reminders    []Reminder    `json:"reminders"`
	Settings     []Setting     `json:"settings"`
	ExportDate   time.Time     `json:"exportDate"`
	Version      string        `json:"version"`
}

// BackupFilename is the conventional name of an export written on a given
// date.
func BackupFilename(on Date) string {
	return fmt.Sprintf("finance-data-%s.json", on)
}

// Export reads every collection and assembles an export document dated now.
func Export(ctx context.Context, s *Store) (*Document, error) {
	doc := &Document{
		ExportDate: time.Now().UTC(),
		Version:    DocumentVersion,
	}
	var err error
	if doc.Transactions, err = All[Transaction](ctx, s); err != nil {
		return nil, err
	}
	if doc.Categories, err = All[Category](ctx, s); err != nil {
		return nil, err
	}
	if doc.Budgets, err = All[Budget](ctx, s); err != nil {
		return nil, err
	}
	if doc.Goals, err = All[Goal](ctx, s); err != nil {
		return nil, err
	}
	if doc.Investments, err = All[Investment](ctx, s); err != nil {
		return nil, err
	}
	if doc.Reminders, err = All[Reminder](ctx, s); err != nil {
		return nil, err
	}
	if doc.Settings, err = s.SettingRows(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// EncodeDocument writes the document as indented JSON.
func EncodeDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot write export document: %w", err)
	}
	return nil
}

// DecodeDocument parses and validates an export document. A document
// without a version or export date is rejected with ErrInvalid.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse export document: %w", err)
	}
	if doc.Version == "" || doc.ExportDate.IsZero() {
		return nil, fmt.Errorf("export document misses version or exportDate: %w", ErrInvalid)
	}
	return &doc, nil
}

// ClearAll removes every record of every collection, record by record.
// There is no rollback: an interrupted clear leaves the store partially
// emptied.
func ClearAll(ctx context.Context, s *Store) error {
	if err := Clear[Transaction](ctx, s); err != nil {
		return err
	}
	if err := Clear[Category](ctx, s); err != nil {
		return err
	}
	if err := Clear[Budget](ctx, s); err != nil {
		return err
	}
	if err := Clear[Goal](ctx, s); err != nil {
		return err
	}
	if err := Clear[Investment](ctx, s); err != nil {
		return err
	}
	if err := Clear[Reminder](ctx, s); err != nil {
		return err
	}
	return s.ClearSettings(ctx)
}

// Import clears the store and repopulates it from the document. Every
// record is stripped of its identifier and re-inserted, so the store
// assigns fresh ones. Like ClearAll, the sequence is not transactional.
func Import(ctx context.Context, s *Store, doc *Document) error {
	if err := ClearAll(ctx, s); err != nil {
		return err
	}
	for _, c := range doc.Categories {
		c.ID = 0
		if _, err := Create(ctx, s, &c); err != nil {
			return err
		}
	}
	for _, tx := range doc.Transactions {
		tx.ID = 0
		if _, err := Create(ctx, s, &tx); err != nil {
			return err
		}
	}
	for _, b := range doc.Budgets {
		b.ID = 0
		if _, err := Create(ctx, s, &b); err != nil {
			return err
		}
	}
	for _, g := range doc.Goals {
		g.ID = 0
		if _, err := Create(ctx, s, &g); err != nil {
			return err
		}
	}
	for _, inv := range doc.Investments {
		inv.ID = 0
		if _, err := Create(ctx, s, &inv); err != nil {
			return err
		}
	}
	for _, r := range doc.Reminders {
		r.ID = 0
		if _, err := Create(ctx, s, &r); err != nil {
			return err
		}
	}
	for _, row := range doc.Settings {
		if err := s.PutSetting(ctx, row); err != nil {
			return err
		}
	}
	return nil
}
