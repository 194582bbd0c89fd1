package stats

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/estateview/estateview/internal/models"
)

const (
	topAgentLimit        = 5
	recentPropertyLimit  = 5
	cityDistributionSize = 10
	monthlyWindowMonths  = 6
)

// priceRange is a half-open [Min, Max) bucket; Max < 0 marks the open-ended
// top bucket. Every price falls into exactly one range.
type priceRange struct {
	Label string
	Min   float64
	Max   float64
}

var priceRanges = []priceRange{
	{Label: "Below 50L", Min: 0, Max: 5_000_000},
	{Label: "50L - 1Cr", Min: 5_000_000, Max: 10_000_000},
	{Label: "1Cr - 2Cr", Min: 10_000_000, Max: 20_000_000},
	{Label: "2Cr - 5Cr", Min: 20_000_000, Max: 50_000_000},
	{Label: "Above 5Cr", Min: 50_000_000, Max: -1},
}

// Reader exposes the read-only aggregate queries behind the dashboard.
// Each accessor is independently computable; the aggregator composes them.
type Reader struct {
	db  *gorm.DB
	now func() time.Time
}

// ReaderOption customises the Reader.
type ReaderOption func(*Reader)

// WithNow overrides the clock used for the monthly window, primarily for tests.
func WithNow(now func() time.Time) ReaderOption {
	return func(r *Reader) {
		if now != nil {
			r.now = now
		}
	}
}

// NewReader constructs a stats reader once a database handle is supplied.
func NewReader(db *gorm.DB, opts ...ReaderOption) (*Reader, error) {
	if db == nil {
		return nil, errors.New("stats reader: db is required")
	}

	reader := &Reader{db: db, now: time.Now}
	for _, opt := range opts {
		opt(reader)
	}
	return reader, nil
}

// withTx returns a Reader bound to the supplied transaction handle, so a
// batch of accessor calls reads one consistent database state.
func (r *Reader) withTx(tx *gorm.DB) *Reader {
	return &Reader{db: tx, now: r.now}
}

func ensuredContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// CountProperties returns the total number of properties.
func (r *Reader) CountProperties(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ensuredContext(ctx)).Model(&models.Property{}).Count(&count).Error
	return count, err
}

// CountPropertiesByStatus counts properties in a single status.
func (r *Reader) CountPropertiesByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Property{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// CountFeatured counts featured properties.
func (r *Reader) CountFeatured(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Property{}).
		Where("is_featured = ?", true).
		Count(&count).Error
	return count, err
}

// CountPublished counts published properties.
func (r *Reader) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Property{}).
		Where("is_published = ?", true).
		Count(&count).Error
	return count, err
}

// TotalPropertyValue sums price across all properties.
func (r *Reader) TotalPropertyValue(ctx context.Context) (float64, error) {
	return r.sumPrice(ctx, "")
}

// PropertyValueByStatus sums price across properties in one status.
func (r *Reader) PropertyValueByStatus(ctx context.Context, status string) (float64, error) {
	return r.sumPrice(ctx, status)
}

func (r *Reader) sumPrice(ctx context.Context, status string) (float64, error) {
	q := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Property{}).
		Select("COALESCE(SUM(price), 0)")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total float64
	err := q.Scan(&total).Error
	return total, err
}

// AveragePrice returns total value divided by property count, and 0 for an
// empty portfolio.
func (r *Reader) AveragePrice(ctx context.Context) (float64, error) {
	count, err := r.CountProperties(ctx)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	total, err := r.TotalPropertyValue(ctx)
	if err != nil {
		return 0, err
	}
	return total / float64(count), nil
}

// CountActiveAgents counts agents currently marked active.
func (r *Reader) CountActiveAgents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Agent{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// CountRegistrationsPending counts draft and submitted registrations.
func (r *Reader) CountRegistrationsPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Registration{}).
		Where("status IN ?", []string{models.RegistrationStatusDraft, models.RegistrationStatusSubmitted}).
		Count(&count).Error
	return count, err
}

// CountRegistrationsByStatus counts registrations in a single status.
func (r *Reader) CountRegistrationsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Registration{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// CategoryDistribution returns per-category property counts. Categories with
// no properties are omitted entirely.
func (r *Reader) CategoryDistribution(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Property{}).
		Select("categories.name AS name, COUNT(*) AS count").
		Joins("JOIN categories ON categories.id = properties.category_id").
		Group("categories.name").
		Order("categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CityDistribution returns the top cities by property count together with
// the combined listing value per city.
func (r *Reader) CityDistribution(ctx context.Context) ([]CityStat, error) {
	var rows []CityStat
	err := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Property{}).
		Select("city, COUNT(*) AS count, COALESCE(SUM(price), 0) AS total_value").
		Where("city <> ''").
		Group("city").
		Order("count DESC").
		Limit(cityDistributionSize).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyAdditions returns property creation counts for the trailing six
// calendar months including the current one, grouped by month in
// chronological order. Months without any additions are omitted. The window
// is anchored at the first of the oldest month so month-end clocks never
// shave its leading days. The bucketing runs in Go so the query stays
// identical across sqlite, postgres and mysql.
func (r *Reader) MonthlyAdditions(ctx context.Context) ([]MonthlyCount, error) {
	now := r.now()
	since := time.Date(now.Year(), now.Month()-monthlyWindowMonths+1, 1, 0, 0, 0, 0, now.Location())

	var createdAts []time.Time
	err := r.db.WithContext(ensuredContext(ctx)).
		Model(&models.Property{}).
		Where("created_at >= ?", since).
		Pluck("created_at", &createdAts).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]int64)
	for _, created := range createdAts {
		month := time.Date(created.Year(), created.Month(), 1, 0, 0, 0, 0, time.UTC)
		buckets[month]++
	}

	months := make([]time.Time, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	rows := make([]MonthlyCount, 0, len(months))
	for _, month := range months {
		rows = append(rows, MonthlyCount{
			Month: month.Format("Jan 2006"),
			Count: buckets[month],
		})
	}
	return rows, nil
}

// PriceDistribution counts properties per fixed price bucket. All five
// buckets are always emitted in order, zero counts included, so charts keep
// a stable axis.
func (r *Reader) PriceDistribution(ctx context.Context) ([]PriceBucket, error) {
	ctx = ensuredContext(ctx)

	rows := make([]PriceBucket, 0, len(priceRanges))
	for _, bucket := range priceRanges {
		q := r.db.WithContext(ctx).
			Model(&models.Property{}).
			Where("price >= ?", bucket.Min)
		if bucket.Max >= 0 {
			q = q.Where("price < ?", bucket.Max)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return nil, err
		}
		rows = append(rows, PriceBucket{Label: bucket.Label, Count: count})
	}
	return rows, nil
}

// TopAgents returns the agents with the most closed deals, best first.
func (r *Reader) TopAgents(ctx context.Context) ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.WithContext(ensuredContext(ctx)).
		Order("total_deals DESC").
		Limit(topAgentLimit).
		Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}

// RecentProperties returns the most recently created properties, newest first.
func (r *Reader) RecentProperties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.WithContext(ensuredContext(ctx)).
		Preload("Category").
		Order("created_at DESC").
		Limit(recentPropertyLimit).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}
