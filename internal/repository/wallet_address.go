package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/plebtools/plebtools/internal/model"
)

var (
	ErrWalletAddressNotFound = errors.New("wallet address not found")
	ErrDuplicateAddress      = errors.New("wallet address already added")
)

type WalletAddressRepository interface {
	List(userID int64) ([]model.WalletAddress, error)
	Create(address *model.WalletAddress) error
	Delete(userID, addressID int64) error
}

type walletAddressRepository struct {
	db *sqlx.DB
}

func NewWalletAddressRepository(db *sqlx.DB) WalletAddressRepository {
	return &walletAddressRepository{db: db}
}

const insertWalletAddressQuery = `INSERT INTO wallet_addresses (user_id, address, created_at)
	VALUES ($1, $2, $3)`

func insertWalletAddress(e sqlx.Execer, w *model.WalletAddress) error {
	result, err := e.Exec(insertWalletAddressQuery, w.UserID, w.Address, w.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateAddress
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	w.ID = id

	return nil
}

func (r *walletAddressRepository) List(userID int64) ([]model.WalletAddress, error) {
	addresses := []model.WalletAddress{}
	query := `SELECT * FROM wallet_addresses WHERE user_id = $1 ORDER BY created_at DESC, id ASC`

	err := r.db.Select(&addresses, query, userID)
	if err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *walletAddressRepository) Create(address *model.WalletAddress) error {
	return insertWalletAddress(r.db, address)
}

func (r *walletAddressRepository) Delete(userID, addressID int64) error {
	query := `DELETE FROM wallet_addresses WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, addressID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWalletAddressNotFound
	}

	return nil
}
