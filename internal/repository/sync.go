package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/plebtools/plebtools/internal/model"
)

type SyncRepository interface {
	Replace(userID int64, purchases []model.Purchase, addresses []model.WalletAddress) error
}

type syncRepository struct {
	db *sqlx.DB
}

func NewSyncRepository(db *sqlx.DB) SyncRepository {
	return &syncRepository{db: db}
}

// Replace swaps the owner's full purchase and wallet-address collections for
// the supplied snapshots in a single transaction. Records absent from the
// snapshot are discarded; insertion preserves snapshot order. Any failure
// rolls back to the exact prior state.
func (r *syncRepository) Replace(userID int64, purchases []model.Purchase, addresses []model.WalletAddress) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM btc_purchases WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`DELETE FROM wallet_addresses WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	for i := range purchases {
		purchases[i].UserID = userID
		err = insertPurchase(tx, &purchases[i])
		if err != nil {
			return err
		}
	}

	for i := range addresses {
		addresses[i].UserID = userID
		err = insertWalletAddress(tx, &addresses[i])
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
