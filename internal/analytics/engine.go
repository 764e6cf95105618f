package analytics

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/iliyamo/property-management/internal/model"
)

// ErrInvalidOwner is returned when a snapshot is requested for a zero owner
// id. This is the only failure the engine surfaces; everything else
// degrades to zero-valued output.
var ErrInvalidOwner = errors.New("invalid owner id")

// Snapshot is the full analytics result for one owner at one instant. It is
// JSON-serializable as-is: money as plain numbers, dates as ISO-8601
// strings, percentages as plain numbers.
type Snapshot struct {
	OwnerID     uint64             `json:"owner_id"`
	GeneratedAt string             `json:"generated_at"`
	KPIs        KPIBlock           `json:"kpis"`
	CashFlow    []CashFlowBucket   `json:"cash_flow"`
	Revenue     RevenueComparison  `json:"revenue"`
	Alerts      AlertBlock         `json:"alerts"`
	Properties  []PropertyOverview `json:"properties"`
}

// Engine computes analytics snapshots. It is stateless per request: each
// invocation fetches fresh collections and recomputes, so there is no cache
// to invalidate and concurrent requests for different owners share nothing.
type Engine struct {
	gw Gateway

	// Now supplies the reference instant for a whole snapshot. It is a
	// field so tests can pin it; the zero value falls back to time.Now.
	// A single instant is captured per request and threaded through every
	// component, otherwise a request spanning a clock tick could bucket
	// one payment into two different "current months".
	Now func() time.Time

	// Months is the cash-flow window length; zero means
	// DefaultCashFlowMonths.
	Months int
}

// NewEngine constructs an Engine over the given gateway and panics when the
// gateway is nil.
func NewEngine(gw Gateway) *Engine {
	if gw == nil {
		panic("nil gateway passed to NewEngine")
	}
	return &Engine{gw: gw}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now().UTC()
	}
	return time.Now().UTC()
}

func (e *Engine) months() int {
	if e.Months > 0 {
		return e.Months
	}
	return DefaultCashFlowMonths
}

// collections is the result of the four gateway reads.
type collections struct {
	properties []model.Property
	contracts  []model.Contract
	payments   []model.Payment
	requests   []model.MaintenanceRequest
}

// fetch issues the four list reads concurrently; they have no ordering
// dependency on one another. A read that fails is absorbed into an empty
// collection (logged), so a partially-available data layer still yields a
// complete, merely zero-valued, snapshot.
func (e *Engine) fetch(ctx context.Context, ownerID uint64) collections {
	var (
		wg  sync.WaitGroup
		col collections
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		items, err := e.gw.ListProperties(ctx, ownerID)
		if err != nil {
			log.Printf("analytics: list properties owner=%d: %v", ownerID, err)
			return
		}
		col.properties = items
	}()
	go func() {
		defer wg.Done()
		items, err := e.gw.ListContracts(ctx, ownerID)
		if err != nil {
			log.Printf("analytics: list contracts owner=%d: %v", ownerID, err)
			return
		}
		col.contracts = items
	}()
	go func() {
		defer wg.Done()
		items, err := e.gw.ListPayments(ctx, ownerID)
		if err != nil {
			log.Printf("analytics: list payments owner=%d: %v", ownerID, err)
			return
		}
		col.payments = items
	}()
	go func() {
		defer wg.Done()
		items, err := e.gw.ListMaintenanceRequests(ctx, ownerID)
		if err != nil {
			log.Printf("analytics: list maintenance owner=%d: %v", ownerID, err)
			return
		}
		col.requests = items
	}()
	wg.Wait()
	return col
}

// Snapshot computes the full analytics snapshot for one owner. The revenue
// comparison defaults to the current year and month of the reference
// instant.
func (e *Engine) Snapshot(ctx context.Context, ownerID uint64) (*Snapshot, error) {
	if ownerID == 0 {
		return nil, ErrInvalidOwner
	}
	now := e.now()
	col := e.fetch(ctx, ownerID)

	return &Snapshot{
		OwnerID:     ownerID,
		GeneratedAt: now.Format(time.RFC3339),
		KPIs:        BuildKPIs(col.properties, col.contracts, col.payments, col.requests),
		CashFlow:    BuildCashFlowSeries(col.payments, col.requests, now, e.months()),
		Revenue:     BuildRevenueComparison(col.payments, now.Year(), now.Month()),
		Alerts:      BuildAlerts(col.contracts, col.requests, col.payments, now),
		Properties:  BuildOverview(col.properties, col.contracts),
	}, nil
}

// CashFlow computes only the trailing series, with an explicit bucket count.
func (e *Engine) CashFlow(ctx context.Context, ownerID uint64, months int) ([]CashFlowBucket, error) {
	if ownerID == 0 {
		return nil, ErrInvalidOwner
	}
	now := e.now()
	col := e.fetch(ctx, ownerID)
	if months <= 0 {
		months = e.months()
	}
	return BuildCashFlowSeries(col.payments, col.requests, now, months), nil
}

// RevenueReport computes only the revenue comparison block for an explicit
// reference period. Zero year/month default to the current ones.
func (e *Engine) RevenueReport(ctx context.Context, ownerID uint64, year int, month time.Month) (*RevenueComparison, error) {
	if ownerID == 0 {
		return nil, ErrInvalidOwner
	}
	now := e.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	col := e.fetch(ctx, ownerID)
	cmp := BuildRevenueComparison(col.payments, year, month)
	return &cmp, nil
}
