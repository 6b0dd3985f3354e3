package gonepali

import (
	"context"
	sql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	// sqlite
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedFS embed.FS

// DictStore is a user exception dictionary kept in a SQLite file.
// Its entries are layered over the built-in dictionary with
// WithEntrySource.
type DictStore struct {
	db  *sql.DB
	log *zap.Logger

	entropyMu sync.Mutex
	entropy   *rand.Rand
}

// OpenDictStore opens or creates the store at path and brings its
// schema up to date
func OpenDictStore(path string, log *zap.Logger) (*DictStore, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dictionary dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}

	store := &DictStore{
		db:      db,
		log:     log.With(zap.String("dictionary", path)),
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate dictionary: %w", err)
	}

	return store, nil
}

func (s *DictStore) migrate(ctx context.Context) error {
	migrationsFS, err := fs.Sub(embedFS, "migrations")
	if err != nil {
		return err
	}

	mg, err := initMigrate(ctx, s.db, migrationsFS)
	if err != nil {
		return err
	}

	ran, err := mg.run(ctx)
	if err != nil {
		return err
	}
	if ran > 0 {
		s.log.Info("dictionary migrated", zap.Int("migrations", ran))
	}
	return nil
}

func (s *DictStore) newID() string {
	s.entropyMu.Lock()
	defer s.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Close the store
func (s *DictStore) Close() error {
	return s.db.Close()
}

// Learn stores one word, replacing any earlier form of it
func (s *DictStore) Learn(ctx context.Context, roman string, devanagari string, class WordClass) error {
	entry, err := NormalizeEntry(Entry{roman, devanagari, class})
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (roman, devanagari, class, learned_on)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(roman) DO UPDATE SET
			devanagari = excluded.devanagari,
			class = excluded.class,
			learned_on = excluded.learned_on,
			import_id = NULL
	`, entry.Roman, entry.Devanagari, int(entry.Class), time.Now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("learn %q: %w", entry.Roman, err)
	}

	s.log.Debug("learned", zap.String("roman", entry.Roman), zap.String("devanagari", entry.Devanagari))

	return nil
}

// Unlearn removes a word. ErrNotFound if it isn't there.
func (s *DictStore) Unlearn(ctx context.Context, roman string) error {
	key, err := normalizeRoman(roman)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE roman = ?", key)
	if err != nil {
		return fmt.Errorf("unlearn %q: %w", key, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("unlearn %q: %w", key, ErrNotFound)
	}

	s.log.Debug("unlearned", zap.String("roman", key))

	return nil
}

// Import stores entries in one transaction under a new import id.
// Nothing is stored if any entry is invalid.
func (s *DictStore) Import(ctx context.Context, entries []Entry) (string, int, error) {
	normalized := make([]Entry, 0, len(entries))
	for i, entry := range entries {
		n, err := NormalizeEntry(entry)
		if err != nil {
			return "", 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
		normalized = append(normalized, n)
	}

	importID := s.newID()
	now := time.Now().UTC().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, "INSERT INTO imports (id, entries, imported_on) VALUES (?, ?, ?)", importID, len(normalized), now)
	if err != nil {
		return "", 0, fmt.Errorf("record import: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (roman, devanagari, class, learned_on, import_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(roman) DO UPDATE SET
			devanagari = excluded.devanagari,
			class = excluded.class,
			learned_on = excluded.learned_on,
			import_id = excluded.import_id
	`)
	if err != nil {
		return "", 0, err
	}
	defer stmt.Close()

	for _, entry := range normalized {
		if _, err := stmt.ExecContext(ctx, entry.Roman, entry.Devanagari, int(entry.Class), now, importID); err != nil {
			return "", 0, fmt.Errorf("import %q: %w", entry.Roman, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", 0, err
	}

	s.log.Info("imported", zap.String("import", importID), zap.Int("entries", len(normalized)))

	return importID, len(normalized), nil
}

// Lookup finds one stored word
func (s *DictStore) Lookup(ctx context.Context, roman string) (Entry, error) {
	key, err := normalizeRoman(roman)
	if err != nil {
		return Entry{}, err
	}

	var (
		entry Entry
		class int
	)
	err = s.db.QueryRowContext(ctx, "SELECT roman, devanagari, class FROM entries WHERE roman = ?", key).
		Scan(&entry.Roman, &entry.Devanagari, &class)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("lookup %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return Entry{}, err
	}
	entry.Class = WordClass(class)

	return entry, nil
}

// Entries returns every stored word sorted by Roman form
func (s *DictStore) Entries(ctx context.Context) ([]Entry, error) {
	return s.queryEntries(ctx, "SELECT roman, devanagari, class FROM entries ORDER BY roman")
}

// ImportedEntries returns the words stored by one import
func (s *DictStore) ImportedEntries(ctx context.Context, importID string) ([]Entry, error) {
	return s.queryEntries(ctx, "SELECT roman, devanagari, class FROM entries WHERE import_id = ? ORDER BY roman", importID)
}

func (s *DictStore) queryEntries(ctx context.Context, query string, args ...interface{}) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry Entry
			class int
		)
		if err := rows.Scan(&entry.Roman, &entry.Devanagari, &class); err != nil {
			return nil, err
		}
		entry.Class = WordClass(class)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
