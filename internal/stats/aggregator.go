package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/estateview/estateview/internal/models"
	"github.com/estateview/estateview/pkg/metrics"
)

// Aggregator composes every Reader accessor into one DashboardSnapshot.
// There is no caching: each call reflects entity state at call time. All
// sub-queries run inside a single read transaction, so counts, sums and
// distributions describe one database state and writes landing mid-call
// cannot skew one chart against another. A failure in any sub-query fails
// the whole snapshot; a dashboard with silently missing sections is worse
// than a visible error.
type Aggregator struct {
	reader         *Reader
	currencySymbol string
}

// NewAggregator constructs the dashboard aggregator.
func NewAggregator(reader *Reader, currencySymbol string) (*Aggregator, error) {
	if reader == nil {
		return nil, errors.New("dashboard aggregator: reader is required")
	}
	if currencySymbol == "" {
		currencySymbol = "₹"
	}
	return &Aggregator{reader: reader, currencySymbol: currencySymbol}, nil
}

// Snapshot computes the full dashboard payload from one read transaction.
func (a *Aggregator) Snapshot(ctx context.Context) (*DashboardSnapshot, error) {
	if a == nil {
		return nil, errors.New("dashboard aggregator: not initialised")
	}
	ctx = ensuredContext(ctx)

	start := time.Now()
	defer func() {
		metrics.SnapshotDuration.Observe(time.Since(start).Seconds())
	}()

	var snapshot *DashboardSnapshot
	err := a.reader.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		snapshot, txErr = a.assemble(ctx, a.reader.withTx(tx))
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (a *Aggregator) assemble(ctx context.Context, reader *Reader) (*DashboardSnapshot, error) {
	var (
		snapshot DashboardSnapshot
		err      error
	)
	snapshot.CurrencySymbol = a.currencySymbol

	if snapshot.Stats.TotalProperties, err = reader.CountProperties(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: total properties: %w", err)
	}
	if snapshot.Stats.Available, err = reader.CountPropertiesByStatus(ctx, models.PropertyStatusAvailable); err != nil {
		return nil, fmt.Errorf("dashboard: available properties: %w", err)
	}
	if snapshot.Stats.Sold, err = reader.CountPropertiesByStatus(ctx, models.PropertyStatusSold); err != nil {
		return nil, fmt.Errorf("dashboard: sold properties: %w", err)
	}
	if snapshot.Stats.Rented, err = reader.CountPropertiesByStatus(ctx, models.PropertyStatusRented); err != nil {
		return nil, fmt.Errorf("dashboard: rented properties: %w", err)
	}
	if snapshot.Stats.Featured, err = reader.CountFeatured(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: featured properties: %w", err)
	}
	if snapshot.Stats.Published, err = reader.CountPublished(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: published properties: %w", err)
	}

	if snapshot.Stats.TotalValue, err = reader.TotalPropertyValue(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: total value: %w", err)
	}
	if snapshot.Stats.AvailableValue, err = reader.PropertyValueByStatus(ctx, models.PropertyStatusAvailable); err != nil {
		return nil, fmt.Errorf("dashboard: available value: %w", err)
	}
	if snapshot.Stats.SoldValue, err = reader.PropertyValueByStatus(ctx, models.PropertyStatusSold); err != nil {
		return nil, fmt.Errorf("dashboard: sold value: %w", err)
	}
	if snapshot.Stats.AveragePrice, err = reader.AveragePrice(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: average price: %w", err)
	}

	if snapshot.Stats.TotalAgents, err = reader.CountActiveAgents(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: active agents: %w", err)
	}

	if snapshot.Stats.PendingRegistrations, err = reader.CountRegistrationsPending(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: pending registrations: %w", err)
	}
	if snapshot.Stats.ApprovedRegistrations, err = reader.CountRegistrationsByStatus(ctx, models.RegistrationStatusApproved); err != nil {
		return nil, fmt.Errorf("dashboard: approved registrations: %w", err)
	}
	if snapshot.Stats.RejectedRegistrations, err = reader.CountRegistrationsByStatus(ctx, models.RegistrationStatusRejected); err != nil {
		return nil, fmt.Errorf("dashboard: rejected registrations: %w", err)
	}

	if snapshot.Charts.Categories, err = reader.CategoryDistribution(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: category distribution: %w", err)
	}
	if snapshot.Charts.Cities, err = reader.CityDistribution(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: city distribution: %w", err)
	}
	if snapshot.Charts.Monthly, err = reader.MonthlyAdditions(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: monthly additions: %w", err)
	}
	if snapshot.Charts.PriceRanges, err = reader.PriceDistribution(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: price distribution: %w", err)
	}

	agents, err := reader.TopAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top agents: %w", err)
	}
	snapshot.TopAgents = make([]AgentRank, 0, len(agents))
	for _, agent := range agents {
		snapshot.TopAgents = append(snapshot.TopAgents, AgentRank{
			ID:               agent.ID,
			Name:             agent.Name,
			Deals:            agent.TotalDeals,
			SalesVolume:      agent.TotalSalesVolume,
			ActiveProperties: agent.ActivePropertyCount,
		})
	}

	recents, err := reader.RecentProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: recent properties: %w", err)
	}
	snapshot.RecentProperties = make([]RecentProperty, 0, len(recents))
	for _, property := range recents {
		category := "N/A"
		if property.Category != nil {
			category = property.Category.Name
		}
		snapshot.RecentProperties = append(snapshot.RecentProperties, RecentProperty{
			ID:       property.ID,
			Name:     property.Name,
			City:     property.City,
			Price:    property.Price,
			Status:   property.Status,
			Category: category,
		})
	}

	return &snapshot, nil
}
