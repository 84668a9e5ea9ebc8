package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/plebtools/plebtools/internal/model"
)

var (
	ErrTradeNotFound = errors.New("trade not found")
)

type TradeRepository interface {
	List(userID int64) ([]model.Trade, error)
	Create(trade *model.Trade) error
	Delete(userID, tradeID int64) error
}

type tradeRepository struct {
	db *sqlx.DB
}

func NewTradeRepository(db *sqlx.DB) TradeRepository {
	return &tradeRepository{db: db}
}

// List returns the owner's trades newest-first by the logical date added,
// which the client may backdate independently of row creation time.
func (r *tradeRepository) List(userID int64) ([]model.Trade, error) {
	trades := []model.Trade{}
	query := `SELECT * FROM covered_call_trades WHERE user_id = $1 ORDER BY date_added DESC, id ASC`

	err := r.db.Select(&trades, query, userID)
	if err != nil {
		return nil, err
	}

	return trades, nil
}

func (r *tradeRepository) Create(trade *model.Trade) error {
	query := `INSERT INTO covered_call_trades (user_id, trade_type, symbol, shares, original_cost_basis, new_cost_basis, strike_price, premium, expiration_date, current_price, notes, pnl, date_added, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	result, err := r.db.Exec(query,
		trade.UserID,
		trade.TradeType,
		trade.Symbol,
		trade.Shares,
		trade.OriginalCostBasis,
		trade.NewCostBasis,
		trade.StrikePrice,
		trade.Premium,
		trade.ExpirationDate,
		trade.CurrentPrice,
		trade.Notes,
		trade.PNL,
		trade.DateAdded,
		trade.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	trade.ID = id

	return nil
}

func (r *tradeRepository) Delete(userID, tradeID int64) error {
	query := `DELETE FROM covered_call_trades WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, tradeID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTradeNotFound
	}

	return nil
}
