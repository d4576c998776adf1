// Package processor aggregates call history into dashboard metrics.
package processor

import (
	"context"
	"errors"
	"time"

	"voice-server/internal/observability"
	"voice-server/internal/store"
)

// ErrInvalidFilter indicates an unknown dashboard time filter.
var ErrInvalidFilter = errors.New("invalid analytics filter")

// Dashboard time filters.
const (
	FilterDay     = "day"
	FilterWeek    = "week"
	FilterMonth   = "month"
	FilterOverall = "overall"
)

//go:generate mockgen -source=processor.go -destination=mocks_test.go -package=processor

// Store is the call log persistence surface.
type Store interface {
	CreateCallLog(ctx context.Context, params store.CreateCallLogParams) (store.CallLog, error)
	ListCallLogs(ctx context.Context, userID string, filter store.CallLogFilter) ([]store.CallLog, error)
	GetCallStats(ctx context.Context, userID string, from, to *time.Time) (store.CallStats, error)
	ListAgentCallStats(ctx context.Context, userID string, from, to *time.Time) ([]store.AgentCallStats, error)
	GetProviderCosts(ctx context.Context, userID string, from, to *time.Time) (store.ProviderCosts, error)
	ListCallTypeCounts(ctx context.Context, userID string, from, to *time.Time) ([]store.CallTypeCount, error)
}

// AnalyticsProcessor owns call log ingestion and dashboard queries.
type AnalyticsProcessor struct {
	store  Store
	logger *observability.Logger
	now    func() time.Time
}

// NewAnalyticsProcessor creates an AnalyticsProcessor.
func NewAnalyticsProcessor(analyticsStore Store, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  analyticsStore,
		logger: logger,
		now:    time.Now,
	}
}

// Dashboard summarizes a window of calls against the preceding window
// of the same length.
type Dashboard struct {
	Filter              string                 `json:"filter"`
	TotalCalls          int                    `json:"total_calls"`
	TotalDuration       float64                `json:"total_duration"`
	TotalCost           float64                `json:"total_cost"`
	AverageCostPerCall  float64                `json:"average_cost_per_call"`
	TotalCallsChange    float64                `json:"total_calls_change"`
	TotalDurationChange float64                `json:"total_duration_change"`
	TotalCostChange     float64                `json:"total_cost_change"`
	Agents              []store.AgentCallStats `json:"agents"`
	ProviderCosts       store.ProviderCosts    `json:"provider_costs"`
	CallTypes           []store.CallTypeCount  `json:"call_types"`
}

// RecordCall ingests one finished call.
func (p AnalyticsProcessor) RecordCall(ctx context.Context, params store.CreateCallLogParams) (store.CallLog, error) {
	return p.store.CreateCallLog(ctx, params)
}

// ListCallLogs returns the user's call history with optional filters.
func (p AnalyticsProcessor) ListCallLogs(ctx context.Context, userID string, filter store.CallLogFilter) ([]store.CallLog, error) {
	return p.store.ListCallLogs(ctx, userID, filter)
}

// windowLength returns the rolling window for a filter, zero for overall.
func windowLength(filter string) (time.Duration, error) {
	switch filter {
	case FilterDay:
		return 24 * time.Hour, nil
	case FilterWeek:
		return 7 * 24 * time.Hour, nil
	case FilterMonth:
		return 30 * 24 * time.Hour, nil
	case FilterOverall:
		return 0, nil
	default:
		return 0, ErrInvalidFilter
	}
}

// GetDashboard aggregates the window named by filter. For day, week
// and month it also reports the percentage change against the window
// immediately before it; overall has no comparison window.
func (p AnalyticsProcessor) GetDashboard(ctx context.Context, userID, filter string) (Dashboard, error) {
	window, err := windowLength(filter)
	if err != nil {
		return Dashboard{}, err
	}

	var from, to *time.Time
	if window > 0 {
		now := p.now().UTC()
		start := now.Add(-window)
		from, to = &start, &now
	}

	current, err := p.store.GetCallStats(ctx, userID, from, to)
	if err != nil {
		return Dashboard{}, err
	}
	agents, err := p.store.ListAgentCallStats(ctx, userID, from, to)
	if err != nil {
		return Dashboard{}, err
	}
	providerCosts, err := p.store.GetProviderCosts(ctx, userID, from, to)
	if err != nil {
		return Dashboard{}, err
	}
	callTypes, err := p.store.ListCallTypeCounts(ctx, userID, from, to)
	if err != nil {
		return Dashboard{}, err
	}

	dashboard := Dashboard{
		Filter:        filter,
		TotalCalls:    current.TotalCalls,
		TotalDuration: current.TotalDuration,
		TotalCost:     current.TotalCost,
		Agents:        agents,
		ProviderCosts: providerCosts,
		CallTypes:     callTypes,
	}
	if current.TotalCalls > 0 {
		dashboard.AverageCostPerCall = current.TotalCost / float64(current.TotalCalls)
	}

	// Overall has no preceding window to compare against.
	if window > 0 {
		prevStart := from.Add(-window)
		previous, err := p.store.GetCallStats(ctx, userID, &prevStart, from)
		if err != nil {
			return Dashboard{}, err
		}
		dashboard.TotalCallsChange = percentChange(float64(previous.TotalCalls), float64(current.TotalCalls))
		dashboard.TotalDurationChange = percentChange(previous.TotalDuration, current.TotalDuration)
		dashboard.TotalCostChange = percentChange(previous.TotalCost, current.TotalCost)
	}

	return dashboard, nil
}

// percentChange reports growth from previous to current. A zero
// previous window reads as 100% growth when anything happened at all.
func percentChange(previous, current float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}
