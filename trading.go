package finboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TradeSide is the direction of a position.
type TradeSide string

const (
	Long  TradeSide = "LONG"
	Short TradeSide = "SHORT"
)

// ParseTradeSide parses a trade side name.
func ParseTradeSide(s string) (TradeSide, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG":
		return Long, nil
	case "SHORT":
		return Short, nil
	default:
		return "", fmt.Errorf("unknown trade side %q", s)
	}
}

// TradeStatus is the lifecycle state of a trade.
type TradeStatus string

const (
	Open   TradeStatus = "OPEN"
	Closed TradeStatus = "CLOSED"
)

// ErrTradeClosed is returned when closing a trade that is already closed.
var ErrTradeClosed = errors.New("trade already closed")

// Trade is one position in the trading ledger. Result stays zero while the
// trade is open; Close fixes it once, and it is never recomputed from prices
// afterward.
type Trade struct {
	ID         string
	User       string
	Symbol     string
	Side       TradeSide
	Quantity   Quantity
	EntryPrice Money
	ExitPrice  Money
	EntryDate  Date
	ExitDate   Date
	Status     TradeStatus
	Result     Money
}

// NewTrade opens a position.
func NewTrade(id, user, symbol string, side TradeSide, quantity Quantity, entry Money, on Date) Trade {
	return Trade{
		ID:         id,
		User:       user,
		Symbol:     symbol,
		Side:       side,
		Quantity:   quantity,
		EntryPrice: entry,
		EntryDate:  on,
		Status:     Open,
	}
}

// Close transitions the trade from OPEN to CLOSED, fixing exit price, exit
// date and result in one step. The transition is one-way: closing a closed
// trade returns ErrTradeClosed and leaves it untouched.
func (t *Trade) Close(exit Money, on Date) error {
	if t.Status == Closed {
		return ErrTradeClosed
	}
	t.ExitPrice = exit
	t.ExitDate = on
	switch t.Side {
	case Short:
		t.Result = t.EntryPrice.Sub(exit).Mul(t.Quantity)
	default:
		t.Result = exit.Sub(t.EntryPrice).Mul(t.Quantity)
	}
	t.Status = Closed
	return nil
}

// legacyUndefinedProfitFactor is the sentinel the original dashboards render
// when every closed trade won. Kept for wire compatibility, see
// ProfitFactor.Legacy.
var legacyUndefinedProfitFactor = decimal.NewFromInt(999)

// ProfitFactor is the ratio of gross profit to gross loss across closed
// trades. The zero-loss edge is carried as an explicit undefined case rather
// than a magic number or an infinity.
type ProfitFactor struct {
	ratio     decimal.Decimal
	undefined bool
}

// FiniteProfitFactor returns a defined ratio.
func FiniteProfitFactor(ratio decimal.Decimal) ProfitFactor {
	return ProfitFactor{ratio: ratio}
}

// UndefinedProfitFactor marks the edge where gross loss is zero while gross
// profit is positive.
func UndefinedProfitFactor() ProfitFactor {
	return ProfitFactor{undefined: true}
}

// IsUndefined reports whether the factor is the zero-loss edge case.
func (p ProfitFactor) IsUndefined() bool { return p.undefined }

// Ratio returns the finite ratio and true, or zero and false when undefined.
func (p ProfitFactor) Ratio() (decimal.Decimal, bool) {
	if p.undefined {
		return decimal.Decimal{}, false
	}
	return p.ratio, true
}

// Legacy returns the numeric value the original dashboards expect: the ratio
// when defined, 999 when undefined.
func (p ProfitFactor) Legacy() decimal.Decimal {
	if p.undefined {
		return legacyUndefinedProfitFactor
	}
	return p.ratio
}

func (p ProfitFactor) String() string {
	if p.undefined {
		return "∞"
	}
	return p.ratio.StringFixed(2)
}

// TradingSettings holds the per-user trading preferences, one row per user.
type TradingSettings struct {
	User           string
	InitialBalance Money
	Currency       string
}

// TradingStats is the derived performance summary of a trade ledger.
type TradingStats struct {
	TotalTrades    int
	OpenTrades     int
	ClosedTrades   int
	WinningTrades  int
	WinRate        Percent
	GrossProfit    Money
	GrossLoss      Money
	TotalResult    Money
	ProfitFactor   ProfitFactor
	InitialBalance Money
	CurrentBalance Money
	Growth         Percent
}

// ComputeTradingStats derives win rate, profit factor, gross and net results
// and balance growth from the trade set. Only closed trades contribute to
// the ratios; the edge cases never divide by zero: win rate is 0 with no
// closed trades, the profit factor is undefined when there are profits but
// no losses and 0 when there are neither.
func ComputeTradingStats(trades []Trade, settings TradingSettings) TradingStats {
	stats := TradingStats{
		TotalTrades:    len(trades),
		InitialBalance: settings.InitialBalance,
	}

	for _, t := range trades {
		if t.Status != Closed {
			stats.OpenTrades++
			continue
		}
		stats.ClosedTrades++
		switch {
		case t.Result.IsPositive():
			stats.WinningTrades++
			stats.GrossProfit = stats.GrossProfit.Add(t.Result)
		case t.Result.IsNegative():
			stats.GrossLoss = stats.GrossLoss.Add(t.Result.Abs())
		}
	}

	if stats.ClosedTrades > 0 {
		stats.WinRate = Percent(100 * float64(stats.WinningTrades) / float64(stats.ClosedTrades))
	}

	switch {
	case stats.GrossLoss.IsPositive():
		stats.ProfitFactor = FiniteProfitFactor(stats.GrossProfit.DivAmount(stats.GrossLoss))
	case stats.GrossProfit.IsPositive():
		stats.ProfitFactor = UndefinedProfitFactor()
	default:
		stats.ProfitFactor = FiniteProfitFactor(decimal.Zero)
	}

	stats.TotalResult = stats.GrossProfit.Sub(stats.GrossLoss)
	stats.CurrentBalance = settings.InitialBalance.Add(stats.TotalResult)
	if settings.InitialBalance.IsPositive() {
		growth := stats.CurrentBalance.Sub(settings.InitialBalance).DivAmount(settings.InitialBalance)
		stats.Growth = Percent(100 * growth.InexactFloat64())
	}
	return stats
}
