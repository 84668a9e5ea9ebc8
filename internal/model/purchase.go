package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeBuy  = "buy"
	TransactionTypeSell = "sell"
)

// Purchase is a single BTC buy or sell record. Amounts are stored verbatim
// as submitted by the client, never recomputed.
type Purchase struct {
	ID               int64               `db:"id" json:"id"`
	UserID           int64               `db:"user_id" json:"-"`
	Date             string              `db:"date" json:"date"` // YYYY-MM-DD
	BTCAmount        decimal.Decimal     `db:"btc_amount" json:"btc_amount"`
	PriceUSD         decimal.Decimal     `db:"price_usd" json:"price_usd"`
	OriginalPrice    decimal.NullDecimal `db:"original_price" json:"original_price"`
	OriginalCurrency *string             `db:"original_currency" json:"original_currency"` // 3-letter code, e.g. USD or CAD
	TransactionType  string              `db:"transaction_type" json:"transaction_type"`
	CreatedAt        time.Time           `db:"created_at" json:"created_at"`
}
