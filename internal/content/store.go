package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/estateview/estateview/internal/models"
)

// Store persists one cached text blob per (city, kind) pair on top of the
// primary SQL database.
type Store struct {
	db *gorm.DB
}

// NewStore constructs a cache store once a database handle is supplied.
func NewStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("content store: db is required")
	}
	return &Store{db: db}, nil
}

func validKind(kind models.ContentKind) error {
	switch kind {
	case models.KindDailyNews, models.KindTrendingNews, models.KindInvestmentInfo:
		return nil
	default:
		return fmt.Errorf("content store: unknown content kind %q", kind)
	}
}

// Get performs an exact-match lookup. A missing entry is a normal outcome,
// reported through the boolean rather than an error.
func (s *Store) Get(ctx context.Context, city string, kind models.ContentKind) (*models.ContentCacheEntry, bool, error) {
	if s == nil {
		return nil, false, errors.New("content store: not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(city) == "" {
		return nil, false, errors.New("content store: city is required")
	}
	if err := validKind(kind); err != nil {
		return nil, false, err
	}

	var entry models.ContentCacheEntry
	err := s.db.WithContext(ctx).Take(&entry, "city = ? AND kind = ?", city, kind).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &entry, true, nil
}

// Upsert inserts or replaces the content for a (city, kind) pair. The write
// is atomic with respect to the pair's uniqueness constraint: a concurrent
// writer for the same key resolves last-writer-wins instead of surfacing a
// constraint violation. CreatedAt is preserved from the first insert;
// UpdatedAt reflects the latest write.
func (s *Store) Upsert(ctx context.Context, city string, kind models.ContentKind, text string) (*models.ContentCacheEntry, error) {
	if s == nil {
		return nil, errors.New("content store: not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(city) == "" {
		return nil, errors.New("content store: city is required")
	}
	if err := validKind(kind); err != nil {
		return nil, err
	}

	entry := models.ContentCacheEntry{
		City:    city,
		Kind:    kind,
		Content: text,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "city"}, {Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	// Re-read so callers see the canonical row: on a conflicting write the
	// surviving id and created_at belong to the original insert.
	var stored models.ContentCacheEntry
	err = s.db.WithContext(ctx).Take(&stored, "city = ? AND kind = ?", city, kind).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// A concurrent Invalidate landed between the write and the
		// re-read. The write itself succeeded, so hand back what we wrote.
		return &entry, nil
	}
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Invalidate removes cached entries for a city. With no kinds supplied every
// kind for that city is dropped. Missing entries are not an error.
func (s *Store) Invalidate(ctx context.Context, city string, kinds ...models.ContentKind) error {
	if s == nil {
		return errors.New("content store: not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(city) == "" {
		return errors.New("content store: city is required")
	}
	for _, kind := range kinds {
		if err := validKind(kind); err != nil {
			return err
		}
	}

	q := s.db.WithContext(ctx).Where("city = ?", city)
	if len(kinds) > 0 {
		q = q.Where("kind IN ?", kinds)
	}
	return q.Delete(&models.ContentCacheEntry{}).Error
}

// PruneOlderThan removes entries whose last write is older than the supplied
// age and reports how many rows were dropped. Used by the maintenance
// scheduler; never triggered implicitly by reads.
func (s *Store) PruneOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	if s == nil {
		return 0, errors.New("content store: not initialised")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if age <= 0 {
		return 0, errors.New("content store: prune age must be positive")
	}

	cutoff := time.Now().Add(-age)
	result := s.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&models.ContentCacheEntry{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
