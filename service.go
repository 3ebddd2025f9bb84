package finboard

import (
	"context"

	"github.com/rs/zerolog"
)

// BalancePoint is one sample of the daily balance series.
type BalancePoint struct {
	Date    Date
	Balance Money
}

// BalanceView is the daily running-balance view model.
type BalanceView struct {
	Current Money
	Series  []BalancePoint
}

// DefaultBalanceWindowDays is the trailing window of the balance chart.
const DefaultBalanceWindowDays = 30

// Dashboard produces the aggregated view models the presentation layer
// consumes. Every call recomputes from storage; there is no cache.
//
// The error policy is degrade-to-empty: a missing user or a failed read
// yields a zero view model and a log entry, never an error. A chart goes
// blank instead of the page crashing. Only materialization surfaces its
// failures, through Materializer.Run.
type Dashboard struct {
	store  Reader
	log    zerolog.Logger
	window BucketWindow
	days   int
	now    func() Date
}

// NewDashboard creates a dashboard over the given reader with the default
// bucket and balance windows.
func NewDashboard(store Reader, log zerolog.Logger) *Dashboard {
	return &Dashboard{
		store:  store,
		log:    log,
		window: DefaultBucketWindow,
		days:   DefaultBalanceWindowDays,
		now:    Today,
	}
}

// SetBucketWindow overrides the monthly overview window.
func (d *Dashboard) SetBucketWindow(w BucketWindow) { d.window = w }

// SetBalanceWindow overrides the trailing balance window, in days.
func (d *Dashboard) SetBalanceWindow(days int) { d.days = days }

// MonthlyOverview returns the calendar-month bucket series around the
// current month: actual totals in past and current months, actuals plus
// projected recurring occurrences in future ones.
func (d *Dashboard) MonthlyOverview(ctx context.Context, user string) []MonthBucket {
	if user == "" {
		return nil
	}
	now := d.now()
	span := NewRange(now.AddMonths(-d.window.Back).MonthOf().Start(), now.AddMonths(d.window.Ahead).MonthOf().End())

	txs, err := d.store.Transactions(ctx, user, TransactionFilter{Range: span})
	if err != nil {
		d.log.Warn().Err(err).Str("user", user).Msg("monthly overview: transaction read failed")
		txs = nil
	}
	defs, err := d.store.ActiveDefinitions(ctx, user)
	if err != nil {
		d.log.Warn().Err(err).Str("user", user).Msg("monthly overview: definition read failed")
		defs = nil
	}
	return MonthlyBuckets(now, d.window, txs, defs)
}

// Categories returns the category breakdown of one month's transactions of
// one type, largest total first.
func (d *Dashboard) Categories(ctx context.Context, user string, month MonthKey, tp TransactionType) []CategoryTotal {
	if user == "" {
		return nil
	}
	txs, err := d.store.Transactions(ctx, user, TransactionFilter{
		Range: NewRange(month.Start(), month.End()),
		Type:  tp,
	})
	if err != nil {
		d.log.Warn().Err(err).Str("user", user).Msg("category breakdown: transaction read failed")
		return nil
	}
	return CategoryBreakdown(txs)
}

// BalanceHistory returns the current all-time balance and the daily running
// balance over the trailing window.
func (d *Dashboard) BalanceHistory(ctx context.Context, user string) BalanceView {
	if user == "" {
		return BalanceView{}
	}
	now := d.now()

	accounts, err := d.store.Accounts(ctx, user)
	if err != nil {
		d.log.Warn().Err(err).Str("user", user).Msg("balance history: account read failed")
		return BalanceView{}
	}
	all, err := d.store.Transactions(ctx, user, TransactionFilter{Range: Range{To: now}})
	if err != nil {
		d.log.Warn().Err(err).Str("user", user).Msg("balance history: transaction read failed")
		return BalanceView{}
	}

	current := CurrentBalance(accounts, all, now)

	window := NewRange(now.Add(-d.days), now)
	recent := make(Transactions, 0)
	for tx := range all.Filter(InRange(window)) {
		recent = append(recent, tx)
	}

	view := BalanceView{Current: current}
	for on, v := range DailyBalances(current, recent, now).Values() {
		view.Series = append(view.Series, BalancePoint{Date: on, Balance: v})
	}
	return view
}

// TradingSummary returns the trading performance statistics. Without saved
// settings the growth figures are computed against a zero initial balance.
func (d *Dashboard) TradingSummary(ctx context.Context, user string) TradingStats {
	if user == "" {
		return TradingStats{}
	}
	trades, err := d.store.Trades(ctx, user, TradeFilter{})
	if err != nil {
		d.log.Warn().Err(err).Str("user", user).Msg("trading summary: trade read failed")
		return TradingStats{}
	}
	settings, ok, err := d.store.Settings(ctx, user)
	if err != nil {
		d.log.Warn().Err(err).Str("user", user).Msg("trading summary: settings read failed")
	}
	if !ok {
		settings = TradingSettings{User: user}
	}
	return ComputeTradingStats(trades, settings)
}
