package stats

// DashboardSnapshot is the fully assembled dashboard payload. It is
// recomputed from entity state on every request and never persisted.
// Every field is concrete so a missing section is a compile error, not a
// silent hole in a chart.
type DashboardSnapshot struct {
	Stats            Totals           `json:"stats"`
	Charts           Charts           `json:"charts"`
	TopAgents        []AgentRank      `json:"top_agents"`
	RecentProperties []RecentProperty `json:"recent_properties"`
	CurrencySymbol   string           `json:"currency_symbol"`
}

// Totals carries the headline counters and monetary aggregates.
type Totals struct {
	TotalProperties int64 `json:"total_properties"`
	Available       int64 `json:"available"`
	Sold            int64 `json:"sold"`
	Rented          int64 `json:"rented"`
	Featured        int64 `json:"featured"`
	Published       int64 `json:"published"`

	TotalValue     float64 `json:"total_value"`
	AvailableValue float64 `json:"available_value"`
	SoldValue      float64 `json:"sold_value"`
	AveragePrice   float64 `json:"avg_price"`

	TotalAgents int64 `json:"total_agents"`

	PendingRegistrations  int64 `json:"pending_registrations"`
	ApprovedRegistrations int64 `json:"approved_registrations"`
	RejectedRegistrations int64 `json:"rejected_registrations"`
}

// Charts groups the distribution series rendered as dashboard charts.
type Charts struct {
	Categories  []CategoryCount `json:"category_data"`
	Cities      []CityStat      `json:"city_data"`
	Monthly     []MonthlyCount  `json:"monthly_data"`
	PriceRanges []PriceBucket   `json:"price_distribution"`
}

// CategoryCount is one category slice; categories without properties are
// never included.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CityStat aggregates property count and combined value for one city.
type CityStat struct {
	City       string  `json:"city"`
	Count      int64   `json:"count"`
	TotalValue float64 `json:"total_value"`
}

// MonthlyCount is the number of properties created in one calendar month,
// labelled in short month-year form ("Jan 2026").
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// PriceBucket is one of the five fixed price ranges. All five are always
// present, in order, even when empty.
type PriceBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// AgentRank is one row of the top-agents leaderboard.
type AgentRank struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Deals            int     `json:"deals"`
	SalesVolume      float64 `json:"sales_volume"`
	ActiveProperties int     `json:"active_properties"`
}

// RecentProperty is one row of the recently-added list.
type RecentProperty struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	Category string  `json:"category"`
}
