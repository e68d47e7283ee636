package finance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setting is one persisted settings row: a top-level settings key and its
// value as raw JSON. Unlike the other collections, settings are keyed by
// name, not by a store-assigned identifier.
type Setting struct {
	Key   string          `gorm:"primarykey" json:"key"`
	Value json.RawMessage `gorm:"type:text" json:"value"`
}

// Entity is implemented by every record type stored in an id-keyed
// collection, via the embedded Record.
type Entity interface {
	RecordID() uint
}

// Store gives CRUD access to the seven collections over a local sqlite
// database, one table per collection.
//
// Individual operations are atomic, but the store gives no transactionality
// across calls: a sequence of Remove calls used to clear a collection may
// partially complete if interrupted.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database at path and migrates the
// collection tables. Use ":memory:" for a throwaway in-memory store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	if err := db.AutoMigrate(
		&Transaction{},
		&Category{},
		&Budget{},
		&Goal{},
		&Investment{},
		&Reminder{},
		&Setting{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// ready guards every operation against use before Open.
func (s *Store) ready() error {
	if s == nil || s.db == nil {
		return ErrStoreUnavailable
	}
	return nil
}

// Create inserts a record and returns the identifier the store assigned to
// it. The record must not carry an identifier already; passing one is
// undefined behavior.
func Create[T Entity](ctx context.Context, s *Store, rec *T) (uint, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return 0, fmt.Errorf("failed to create record: %w", err)
	}
	return (*rec).RecordID(), nil
}

// Replace overwrites the full record carrying the same identifier.
// It returns ErrNotFound when no such record exists.
func Replace[T Entity](ctx context.Context, s *Store, rec T) error {
	if err := s.ready(); err != nil {
		return err
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", rec.RecordID()).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up record %d: %w", rec.RecordID(), err)
	}
	if count == 0 {
		return fmt.Errorf("replace id %d: %w", rec.RecordID(), ErrNotFound)
	}
	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to replace record %d: %w", rec.RecordID(), err)
	}
	return nil
}

// Remove deletes the record with the given identifier.
// It returns ErrNotFound when no such record exists.
func Remove[T Entity](ctx context.Context, s *Store, id uint) error {
	if err := s.ready(); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete id %d: %w", id, ErrNotFound)
	}
	return nil
}

// Get fetches one record by identifier. It returns ErrNotFound when no such
// record exists.
func Get[T Entity](ctx context.Context, s *Store, id uint) (T, error) {
	var rec T
	if err := s.ready(); err != nil {
		return rec, err
	}
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rec, fmt.Errorf("get id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return rec, fmt.Errorf("failed to get record %d: %w", id, err)
	}
	return rec, nil
}

// All returns every record of the collection, in identifier order.
func All[T Entity](ctx context.Context, s *Store) ([]T, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var out []T
	if err := s.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return out, nil
}

// ByField returns the records whose column equals value. The column must be
// one of the indexed column names of the collection (date, category, type,
// month, deadline); it is interpolated into the query, never user input.
func ByField[T Entity](ctx context.Context, s *Store, column string, value any) ([]T, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var out []T
	if err := s.db.WithContext(ctx).Where(column+" = ?", value).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list records by %s: %w", column, err)
	}
	return out, nil
}

// ByTag returns the transactions carrying the given tag. Tags are stored as
// a JSON array in one column, so this narrows with a substring match and
// filters exactly in memory.
func ByTag(ctx context.Context, s *Store, tag string) ([]Transaction, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var candidates []Transaction
	pattern := "%" + tag + "%"
	if err := s.db.WithContext(ctx).Where("tags LIKE ?", pattern).Order("id").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list records by tag: %w", err)
	}
	var out []Transaction
	for _, tx := range candidates {
		if tx.Tags.Contains(tag) {
			out = append(out, tx)
		}
	}
	return out, nil
}

// Clear removes every record of the collection one by one, mirroring the
// way a user-driven clear works. It may partially complete on failure; the
// first error is returned.
func Clear[T Entity](ctx context.Context, s *Store) error {
	recs, err := All[T](ctx, s)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if err := Remove[T](ctx, s, rec.RecordID()); err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaultCategories inserts the default category set when the categories
// collection is empty. It is a no-op otherwise.
func (s *Store) SeedDefaultCategories(ctx context.Context) error {
	existing, err := All[Category](ctx, s)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, c := range DefaultCategories() {
		if _, err := Create(ctx, s, &c); err != nil {
			return err
		}
	}
	return nil
}

// SettingRows returns every persisted settings row.
func (s *Store) SettingRows(ctx context.Context) ([]Setting, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var rows []Setting
	if err := s.db.WithContext(ctx).Order("key").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return rows, nil
}

// PutSetting upserts one settings row by key.
func (s *Store) PutSetting(ctx context.Context, row Setting) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save setting %q: %w", row.Key, err)
	}
	return nil
}

// ClearSettings removes the settings rows one by one, like Clear.
func (s *Store) ClearSettings(ctx context.Context) error {
	rows, err := s.SettingRows(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := s.db.WithContext(ctx).Delete(&Setting{}, "key = ?", row.Key).Error; err != nil {
			return fmt.Errorf("failed to delete setting %q: %w", row.Key, err)
		}
	}
	return nil
}
