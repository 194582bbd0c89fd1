package models

// ContentKind distinguishes the cached AI content flavours.
type ContentKind string

// Supported content kinds.
const (
	KindDailyNews      ContentKind = "daily_news"
	KindTrendingNews   ContentKind = "trending_news"
	KindInvestmentInfo ContentKind = "investment_info"
)

// TrendingCitySentinel is the reserved city value used to key trending
// content that is not tied to any city. Caller-supplied cities must never
// equal it; see content.Service.
const TrendingCitySentinel = "*"

// ContentCacheEntry stores one generated text blob per (city, kind) pair.
// The composite unique index makes the pair the logical primary key;
// writers must go through an atomic upsert so a second write for the same
// pair replaces content instead of violating the constraint.
type ContentCacheEntry struct {
	BaseModel

	City    string      `gorm:"type:varchar(120);not null;uniqueIndex:idx_content_cache_city_kind" json:"city"`
	Kind    ContentKind `gorm:"type:varchar(32);not null;uniqueIndex:idx_content_cache_city_kind" json:"kind"`
	Content string      `gorm:"type:text;not null" json:"content"`
}
