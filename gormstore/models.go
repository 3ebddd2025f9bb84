package gormstore

import (
	"fmt"

	"github.com/finboard/finboard"
)

// Rows persist dates as ISO-8601 strings (they compare correctly as text)
// and amounts as decimal strings, so nothing goes through floats.

type accountRow struct {
	ID             string `gorm:"primaryKey"`
	User           string `gorm:"index"`
	Name           string
	OpeningBalance string
	CurrentBalance string
	Currency       string
}

func (r accountRow) domain() (finboard.Account, error) {
	opening, err := finboard.ParseMoney(r.OpeningBalance, r.Currency)
	if err != nil {
		return finboard.Account{}, fmt.Errorf("account %s opening balance: %w", r.ID, err)
	}
	current, err := finboard.ParseMoney(r.CurrentBalance, r.Currency)
	if err != nil {
		return finboard.Account{}, fmt.Errorf("account %s current balance: %w", r.ID, err)
	}
	return finboard.Account{
		ID:             r.ID,
		User:           r.User,
		Name:           r.Name,
		OpeningBalance: opening,
		CurrentBalance: current,
		Currency:       r.Currency,
	}, nil
}

func accountRowFrom(a finboard.Account) accountRow {
	return accountRow{
		ID:             a.ID,
		User:           a.User,
		Name:           a.Name,
		OpeningBalance: a.OpeningBalance.Amount().String(),
		CurrentBalance: a.CurrentBalance.Amount().String(),
		Currency:       a.Currency,
	}
}

type transactionRow struct {
	ID       string `gorm:"primaryKey"`
	User     string `gorm:"index"`
	Title    string
	Type     string
	Amount   string
	Currency string
	Date     string `gorm:"index"`
	Category string
	Account  string
}

func (r transactionRow) domain() (finboard.Transaction, error) {
	amount, err := finboard.ParseMoney(r.Amount, r.Currency)
	if err != nil {
		return finboard.Transaction{}, fmt.Errorf("transaction %s amount: %w", r.ID, err)
	}
	tp, err := finboard.ParseTransactionType(r.Type)
	if err != nil {
		return finboard.Transaction{}, fmt.Errorf("transaction %s: %w", r.ID, err)
	}
	on, err := finboard.ParseDate(r.Date)
	if err != nil {
		return finboard.Transaction{}, fmt.Errorf("transaction %s: %w", r.ID, err)
	}
	return finboard.Transaction{
		ID:       r.ID,
		User:     r.User,
		Title:    r.Title,
		Type:     tp,
		Amount:   amount,
		Date:     on,
		Category: r.Category,
		Account:  r.Account,
	}, nil
}

func transactionRowFrom(t finboard.Transaction) transactionRow {
	return transactionRow{
		ID:       t.ID,
		User:     t.User,
		Title:    t.Title,
		Type:     string(t.Type),
		Amount:   t.Amount.Amount().String(),
		Currency: t.Amount.Currency(),
		Date:     t.Date.String(),
		Category: t.Category,
		Account:  t.Account,
	}
}

type recurringRow struct {
	ID             string `gorm:"primaryKey"`
	User           string `gorm:"index"`
	Title          string
	Type           string
	Amount         string
	Currency       string
	Frequency      string
	NextOccurrence string
	Active         bool
	Category       string
	Account        string
}

func (r recurringRow) domain() (finboard.RecurringDefinition, error) {
	amount, err := finboard.ParseMoney(r.Amount, r.Currency)
	if err != nil {
		return finboard.RecurringDefinition{}, fmt.Errorf("definition %s amount: %w", r.ID, err)
	}
	tp, err := finboard.ParseTransactionType(r.Type)
	if err != nil {
		return finboard.RecurringDefinition{}, fmt.Errorf("definition %s: %w", r.ID, err)
	}
	freq, err := finboard.ParseFrequency(r.Frequency)
	if err != nil {
		return finboard.RecurringDefinition{}, fmt.Errorf("definition %s: %w", r.ID, err)
	}
	next, err := finboard.ParseDate(r.NextOccurrence)
	if err != nil {
		return finboard.RecurringDefinition{}, fmt.Errorf("definition %s: %w", r.ID, err)
	}
	return finboard.RecurringDefinition{
		ID:             r.ID,
		User:           r.User,
		Title:          r.Title,
		Type:           tp,
		Amount:         amount,
		Frequency:      freq,
		NextOccurrence: next,
		Active:         r.Active,
		Category:       r.Category,
		Account:        r.Account,
	}, nil
}

func recurringRowFrom(d finboard.RecurringDefinition) recurringRow {
	return recurringRow{
		ID:             d.ID,
		User:           d.User,
		Title:          d.Title,
		Type:           string(d.Type),
		Amount:         d.Amount.Amount().String(),
		Currency:       d.Amount.Currency(),
		Frequency:      d.Frequency.String(),
		NextOccurrence: d.NextOccurrence.String(),
		Active:         d.Active,
		Category:       d.Category,
		Account:        d.Account,
	}
}

type tradeRow struct {
	ID         string `gorm:"primaryKey"`
	User       string `gorm:"index"`
	Symbol     string `gorm:"index"`
	Side       string
	Quantity   string
	EntryPrice string
	ExitPrice  string
	Currency   string
	EntryDate  string
	ExitDate   string
	Status     string
	Result     string
}

func (r tradeRow) domain() (finboard.Trade, error) {
	entry, err := finboard.ParseMoney(r.EntryPrice, r.Currency)
	if err != nil {
		return finboard.Trade{}, fmt.Errorf("trade %s entry price: %w", r.ID, err)
	}
	qty, err := finboard.ParseQuantity(r.Quantity)
	if err != nil {
		return finboard.Trade{}, fmt.Errorf("trade %s quantity: %w", r.ID, err)
	}
	side, err := finboard.ParseTradeSide(r.Side)
	if err != nil {
		return finboard.Trade{}, fmt.Errorf("trade %s: %w", r.ID, err)
	}
	entryDate, err := finboard.ParseDate(r.EntryDate)
	if err != nil {
		return finboard.Trade{}, fmt.Errorf("trade %s: %w", r.ID, err)
	}
	t := finboard.Trade{
		ID:         r.ID,
		User:       r.User,
		Symbol:     r.Symbol,
		Side:       side,
		Quantity:   qty,
		EntryPrice: entry,
		EntryDate:  entryDate,
		Status:     finboard.TradeStatus(r.Status),
	}
	if t.Status == finboard.Closed {
		if t.ExitPrice, err = finboard.ParseMoney(r.ExitPrice, r.Currency); err != nil {
			return finboard.Trade{}, fmt.Errorf("trade %s exit price: %w", r.ID, err)
		}
		if t.ExitDate, err = finboard.ParseDate(r.ExitDate); err != nil {
			return finboard.Trade{}, fmt.Errorf("trade %s: %w", r.ID, err)
		}
		if t.Result, err = finboard.ParseMoney(r.Result, r.Currency); err != nil {
			return finboard.Trade{}, fmt.Errorf("trade %s result: %w", r.ID, err)
		}
	}
	return t, nil
}

func tradeRowFrom(t finboard.Trade) tradeRow {
	r := tradeRow{
		ID:         t.ID,
		User:       t.User,
		Symbol:     t.Symbol,
		Side:       string(t.Side),
		Quantity:   t.Quantity.String(),
		EntryPrice: t.EntryPrice.Amount().String(),
		Currency:   t.EntryPrice.Currency(),
		EntryDate:  t.EntryDate.String(),
		Status:     string(t.Status),
	}
	if t.Status == finboard.Closed {
		r.ExitPrice = t.ExitPrice.Amount().String()
		r.ExitDate = t.ExitDate.String()
		r.Result = t.Result.Amount().String()
	}
	return r
}

type settingsRow struct {
	User           string `gorm:"primaryKey"`
	InitialBalance string
	Currency       string
}

func (r settingsRow) domain() (finboard.TradingSettings, error) {
	initial, err := finboard.ParseMoney(r.InitialBalance, r.Currency)
	if err != nil {
		return finboard.TradingSettings{}, fmt.Errorf("settings for %s: %w", r.User, err)
	}
	return finboard.TradingSettings{
		User:           r.User,
		InitialBalance: initial,
		Currency:       r.Currency,
	}, nil
}

func settingsRowFrom(s finboard.TradingSettings) settingsRow {
	return settingsRow{
		User:           s.User,
		InitialBalance: s.InitialBalance.Amount().String(),
		Currency:       s.Currency,
	}
}
