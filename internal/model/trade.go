package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TradeTypeShares      = "shares"
	TradeTypeCoveredCall = "covered-call"
)

// Trade is a covered-call tracker position. Strike, premium and expiration
// are only meaningful for covered-call entries; plain share lots leave them
// null. PNL is client-supplied and stored as-is.
type Trade struct {
	ID                int64               `db:"id" json:"id"`
	UserID            int64               `db:"user_id" json:"-"`
	TradeType         string              `db:"trade_type" json:"trade_type"`
	Symbol            string              `db:"symbol" json:"symbol"`
	Shares            int64               `db:"shares" json:"shares"`
	OriginalCostBasis decimal.Decimal     `db:"original_cost_basis" json:"original_cost_basis"`
	NewCostBasis      decimal.Decimal     `db:"new_cost_basis" json:"new_cost_basis"`
	StrikePrice       decimal.NullDecimal `db:"strike_price" json:"strike_price"`
	Premium           decimal.NullDecimal `db:"premium" json:"premium"`
	ExpirationDate    *string             `db:"expiration_date" json:"expiration_date"` // YYYY-MM-DD
	CurrentPrice      decimal.Decimal     `db:"current_price" json:"current_price"`
	Notes             *string             `db:"notes" json:"notes"`
	PNL               decimal.Decimal     `db:"pnl" json:"pnl"`
	DateAdded         time.Time           `db:"date_added" json:"date_added"` // logical add time, client-overridable
	CreatedAt         time.Time           `db:"created_at" json:"created_at"`
}

func ValidTradeType(t string) bool {
	return t == TradeTypeShares || t == TradeTypeCoveredCall
}
