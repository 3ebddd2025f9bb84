// Package gormstore is the relational storage collaborator of the engine,
// backed by GORM over SQLite. It implements the finboard.Store contracts:
// filtered reads of a user's records and the writes materialization and the
// CRUD layer need.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/finboard/finboard"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store is a finboard.Store over a GORM database handle.
type Store struct {
	db *gorm.DB
}

var _ finboard.Store = (*Store)(nil)

// Open opens (creating if needed) the SQLite database at path and migrates
// the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&accountRow{}, &transactionRow{}, &recurringRow{}, &tradeRow{}, &settingsRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Accounts returns all of the user's accounts.
func (s *Store) Accounts(ctx context.Context, user string) ([]finboard.Account, error) {
	var rows []accountRow
	if err := s.db.WithContext(ctx).Where("user = ?", user).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	accounts := make([]finboard.Account, 0, len(rows))
	for _, r := range rows {
		a, err := r.domain()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// Transactions returns the user's transactions matching the filter, oldest
// first.
func (s *Store) Transactions(ctx context.Context, user string, f finboard.TransactionFilter) (finboard.Transactions, error) {
	q := s.db.WithContext(ctx).Where("user = ?", user)
	if f.Type != "" {
		q = q.Where("type = ?", string(f.Type))
	}
	// ISO dates compare correctly as text.
	if !f.Range.From.IsZero() {
		q = q.Where("date >= ?", f.Range.From.String())
	}
	if !f.Range.To.IsZero() {
		q = q.Where("date <= ?", f.Range.To.String())
	}
	var rows []transactionRow
	if err := q.Order("date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	txs := make(finboard.Transactions, 0, len(rows))
	for _, r := range rows {
		tx, err := r.domain()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ActiveDefinitions returns the user's active recurring definitions.
func (s *Store) ActiveDefinitions(ctx context.Context, user string) ([]finboard.RecurringDefinition, error) {
	var rows []recurringRow
	if err := s.db.WithContext(ctx).Where("user = ? AND active = ?", user, true).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read recurring definitions: %w", err)
	}
	defs := make([]finboard.RecurringDefinition, 0, len(rows))
	for _, r := range rows {
		d, err := r.domain()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// Trades returns the user's trades matching the filter, oldest entry first.
func (s *Store) Trades(ctx context.Context, user string, f finboard.TradeFilter) ([]finboard.Trade, error) {
	q := s.db.WithContext(ctx).Where("user = ?", user)
	if f.Symbol != "" {
		q = q.Where("symbol = ?", f.Symbol)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if !f.Range.From.IsZero() {
		q = q.Where("entry_date >= ?", f.Range.From.String())
	}
	if !f.Range.To.IsZero() {
		q = q.Where("entry_date <= ?", f.Range.To.String())
	}
	var rows []tradeRow
	if err := q.Order("entry_date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read trades: %w", err)
	}
	trades := make([]finboard.Trade, 0, len(rows))
	for _, r := range rows {
		t, err := r.domain()
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, nil
}

// Settings returns the user's trading settings and whether a row exists.
func (s *Store) Settings(ctx context.Context, user string) (finboard.TradingSettings, bool, error) {
	var row settingsRow
	err := s.db.WithContext(ctx).Where("user = ?", user).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return finboard.TradingSettings{}, false, nil
	}
	if err != nil {
		return finboard.TradingSettings{}, false, fmt.Errorf("failed to read trading settings: %w", err)
	}
	settings, err := row.domain()
	if err != nil {
		return finboard.TradingSettings{}, false, err
	}
	return settings, true, nil
}

// InsertTransaction writes one transaction record.
func (s *Store) InsertTransaction(ctx context.Context, tx finboard.Transaction) error {
	row := transactionRowFrom(tx)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// SaveAccount inserts or updates an account.
func (s *Store) SaveAccount(ctx context.Context, a finboard.Account) error {
	row := accountRowFrom(a)
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// SaveDefinition inserts or updates a recurring definition.
func (s *Store) SaveDefinition(ctx context.Context, d finboard.RecurringDefinition) error {
	row := recurringRowFrom(d)
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save recurring definition: %w", err)
	}
	return nil
}

// AdvanceDefinition moves the definition's pointer from 'from' to 'to' only
// if the stored pointer still equals 'from'. A stale or missing row yields
// finboard.ErrStaleDefinition.
func (s *Store) AdvanceDefinition(ctx context.Context, id string, from, to finboard.Date) error {
	res := s.db.WithContext(ctx).Model(&recurringRow{}).
		Where("id = ? AND next_occurrence = ?", id, from.String()).
		Update("next_occurrence", to.String())
	if res.Error != nil {
		return fmt.Errorf("failed to advance definition %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return finboard.ErrStaleDefinition
	}
	return nil
}

// MaterializeOccurrence inserts the occurrence's transaction and advances the
// definition's pointer in one database transaction. The conditional pointer
// update runs first: a stale or missing row yields finboard.ErrStaleDefinition
// and rolls everything back, so no transaction row survives a lost race.
func (s *Store) MaterializeOccurrence(ctx context.Context, t finboard.Transaction, id string, from, to finboard.Date) error {
	row := transactionRowFrom(t)
	return s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		res := db.Model(&recurringRow{}).
			Where("id = ? AND next_occurrence = ?", id, from.String()).
			Update("next_occurrence", to.String())
		if res.Error != nil {
			return fmt.Errorf("failed to advance definition %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return finboard.ErrStaleDefinition
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert occurrence transaction: %w", err)
		}
		return nil
	})
}

// SetDefinitionActive freezes or resumes a definition. The pointer is left
// untouched either way, so resuming an overdue definition catches up on the
// next materialization pass.
func (s *Store) SetDefinitionActive(ctx context.Context, id string, active bool) error {
	res := s.db.WithContext(ctx).Model(&recurringRow{}).
		Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return fmt.Errorf("failed to toggle definition %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("recurring definition %s not found", id)
	}
	return nil
}

// SaveTrade inserts or updates a trade.
func (s *Store) SaveTrade(ctx context.Context, t finboard.Trade) error {
	row := tradeRowFrom(t)
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save trade: %w", err)
	}
	return nil
}

// UpsertSettings writes the user's trading settings, one row per user.
func (s *Store) UpsertSettings(ctx context.Context, settings finboard.TradingSettings) error {
	row := settingsRowFrom(settings)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert trading settings: %w", err)
	}
	return nil
}
