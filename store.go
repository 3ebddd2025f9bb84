package finboard

import (
	"context"
	"errors"
)

// ErrStaleDefinition is returned by Writer.AdvanceDefinition when the stored
// pointer no longer matches the expected value, meaning a concurrent
// materialization already advanced past it.
var ErrStaleDefinition = errors.New("recurring definition pointer is stale")

// TransactionFilter narrows a transaction read. Zero fields match everything.
type TransactionFilter struct {
	Range Range
	Type  TransactionType
}

// Matches reports whether the transaction passes the filter.
func (f TransactionFilter) Matches(tx Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if !f.Range.From.IsZero() && tx.Date.Before(f.Range.From) {
		return false
	}
	if !f.Range.To.IsZero() && tx.Date.After(f.Range.To) {
		return false
	}
	return true
}

// TradeFilter narrows a trade read. Zero fields match everything.
type TradeFilter struct {
	Range  Range // filters on the entry date
	Symbol string
	Status TradeStatus
}

// Matches reports whether the trade passes the filter.
func (f TradeFilter) Matches(t Trade) bool {
	if f.Symbol != "" && t.Symbol != f.Symbol {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if !f.Range.From.IsZero() && t.EntryDate.Before(f.Range.From) {
		return false
	}
	if !f.Range.To.IsZero() && t.EntryDate.After(f.Range.To) {
		return false
	}
	return true
}

// Reader is the read side of the storage collaborator. Implementations
// return only records owned by the given user.
type Reader interface {
	Accounts(ctx context.Context, user string) ([]Account, error)
	Transactions(ctx context.Context, user string, f TransactionFilter) (Transactions, error)
	ActiveDefinitions(ctx context.Context, user string) ([]RecurringDefinition, error)
	Trades(ctx context.Context, user string, f TradeFilter) ([]Trade, error)
	// Settings returns the user's trading settings and whether any were saved.
	Settings(ctx context.Context, user string) (TradingSettings, bool, error)
}

// Writer is the write side of the storage collaborator.
type Writer interface {
	InsertTransaction(ctx context.Context, tx Transaction) error
	// AdvanceDefinition moves a definition's NextOccurrence from 'from' to
	// 'to', but only if the stored pointer still equals 'from'. It returns
	// ErrStaleDefinition otherwise. This is the optimistic-concurrency guard
	// backing materialization.
	AdvanceDefinition(ctx context.Context, id string, from, to Date) error
	// MaterializeOccurrence atomically inserts tx and advances the
	// definition's pointer from 'from' to 'to' under the same optimistic
	// guard as AdvanceDefinition. When the stored pointer no longer equals
	// 'from' it returns ErrStaleDefinition and inserts nothing, so a writer
	// racing from a stale snapshot cannot duplicate an occurrence.
	MaterializeOccurrence(ctx context.Context, tx Transaction, id string, from, to Date) error
	SetDefinitionActive(ctx context.Context, id string, active bool) error
	SaveTrade(ctx context.Context, t Trade) error
	UpsertSettings(ctx context.Context, s TradingSettings) error
}

// Store combines both sides of the storage collaborator.
type Store interface {
	Reader
	Writer
}
