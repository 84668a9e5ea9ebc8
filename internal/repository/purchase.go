package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/plebtools/plebtools/internal/model"
)

var (
	ErrPurchaseNotFound = errors.New("purchase not found")
)

type PurchaseRepository interface {
	List(userID int64) ([]model.Purchase, error)
	Create(purchase *model.Purchase) error
	Delete(userID, purchaseID int64) error
}

type purchaseRepository struct {
	db *sqlx.DB
}

func NewPurchaseRepository(db *sqlx.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

const insertPurchaseQuery = `INSERT INTO btc_purchases (user_id, date, btc_amount, price_usd, original_price, original_currency, transaction_type, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// insertPurchase is shared between single creates and the bulk sync
// transaction. It assigns the generated id back onto the record.
func insertPurchase(e sqlx.Execer, p *model.Purchase) error {
	result, err := e.Exec(insertPurchaseQuery,
		p.UserID,
		p.Date,
		p.BTCAmount,
		p.PriceUSD,
		p.OriginalPrice,
		p.OriginalCurrency,
		p.TransactionType,
		p.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id

	return nil
}

// List returns the owner's purchases newest-first by calendar date. Same-day
// records keep insertion order.
func (r *purchaseRepository) List(userID int64) ([]model.Purchase, error) {
	purchases := []model.Purchase{}
	query := `SELECT * FROM btc_purchases WHERE user_id = $1 ORDER BY date DESC, id ASC`

	err := r.db.Select(&purchases, query, userID)
	if err != nil {
		return nil, err
	}

	return purchases, nil
}

func (r *purchaseRepository) Create(purchase *model.Purchase) error {
	return insertPurchase(r.db, purchase)
}

func (r *purchaseRepository) Delete(userID, purchaseID int64) error {
	query := `DELETE FROM btc_purchases WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, purchaseID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPurchaseNotFound
	}

	return nil
}
