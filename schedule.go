package finance

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"
)

// reminderScanInterval is how often the due-reminder scan runs.
const reminderScanInterval = time.Minute

// Scheduler runs the background tasks: periodic auto-backup at the
// configured cadence and a due-reminder scan every minute. Both tasks
// swallow and log errors so a failing tick never stops the loop.
type Scheduler struct {
	store     *Store
	backupDir string
	notify    func(title, message string)
	stop      chan struct{}
	done      chan struct{}
}

// NewScheduler creates a scheduler writing backups into backupDir and
// reporting due reminders through notify. A nil notify discards them.
func NewScheduler(store *Store, backupDir string, notify func(title, message string)) *Scheduler {
	if notify == nil {
		notify = func(string, string) {}
	}
	return &Scheduler{
		store:     store,
		backupDir: backupDir,
		notify:    notify,
	}
}

// Start launches the background loops. The backup loop is skipped entirely
// when the frequency is Never. Start is not reentrant; call Stop first.
func (s *Scheduler) Start(ctx context.Context, settings Settings) {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	interval := settings.BackupFrequency.Interval()

	go func() {
		defer close(s.done)

		reminderTicker := time.NewTicker(reminderScanInterval)
		defer reminderTicker.Stop()

		var backupC <-chan time.Time
		if interval > 0 {
			backupTicker := time.NewTicker(interval)
			defer backupTicker.Stop()
			backupC = backupTicker.C
		}

		log.Printf("scheduler started (backup %s)", settings.BackupFrequency)
		for {
			select {
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			case <-backupC:
				if err := s.BackupNow(ctx); err != nil {
					log.Printf("auto-backup failed: %v", err)
				}
			case <-reminderTicker.C:
				if err := s.scanReminders(ctx); err != nil {
					log.Printf("reminder scan failed: %v", err)
				}
			}
		}
	}()
}

// Stop terminates the background loops and waits for them to finish.
func (s *Scheduler) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
}

// BackupNow exports the whole store into a dated file in the backup
// directory, overwriting a previous backup of the same day.
func (s *Scheduler) BackupNow(ctx context.Context) error {
	doc, err := Export(ctx, s.store)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.backupDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(s.backupDir, BackupFilename(Today()))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := EncodeDocument(f, doc); err != nil {
		return err
	}
	log.Printf("backup written to %s", path)
	return nil
}

// scanReminders notifies once per tick for every reminder due today and
// not completed.
func (s *Scheduler) scanReminders(ctx context.Context) error {
	reminders, err := All[Reminder](ctx, s.store)
	if err != nil {
		return err
	}
	for _, r := range DueReminders(reminders, Today()) {
		s.notify("Reminder: "+r.Title, r.Description)
	}
	return nil
}
