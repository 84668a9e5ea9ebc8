package model

import (
	"time"
)

// WalletAddress is a watched on-chain address. Unique per (user, address).
type WalletAddress struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"-"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
