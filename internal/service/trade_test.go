package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/model"
	"github.com/plebtools/plebtools/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTradeService(t *testing.T) (*TradeService, *model.User) {
	t.Helper()

	conn := newServiceDB(t)
	owner := seedUser(t, conn, "owner")
	return NewTradeService(repository.NewTradeRepository(conn)), owner
}

func validTradeInput(t *testing.T) TradeInput {
	shares := int64(100)
	return TradeInput{
		TradeType:         model.TradeTypeShares,
		Symbol:            "mstr",
		Shares:            &shares,
		OriginalCostBasis: decPtr(t, "150.25"),
		NewCostBasis:      decPtr(t, "148.10"),
	}
}

func TestCreateTradeAppliesDefaults(t *testing.T) {
	svc, owner := newTradeService(t)

	before := time.Now().UTC()
	trade, err := svc.Create(owner.ID, validTradeInput(t))
	require.NoError(t, err)

	assert.Equal(t, "MSTR", trade.Symbol)
	assert.True(t, decimal.Zero.Equal(trade.CurrentPrice))
	assert.True(t, decimal.Zero.Equal(trade.PNL))
	assert.False(t, trade.DateAdded.Before(before))
}

func TestCreateTradeHonorsClientDateAdded(t *testing.T) {
	svc, owner := newTradeService(t)

	dateAdded := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := validTradeInput(t)
	in.DateAdded = &dateAdded

	trade, err := svc.Create(owner.ID, in)
	require.NoError(t, err)
	assert.True(t, trade.DateAdded.Equal(dateAdded))
	assert.False(t, trade.CreatedAt.Equal(dateAdded))
}

func TestCreateTradeValidation(t *testing.T) {
	svc, owner := newTradeService(t)

	cases := []struct {
		name    string
		mutate  func(*TradeInput)
		message string
	}{
		{"unknown trade type", func(in *TradeInput) { in.TradeType = "naked-put" }, "Trade type must be 'shares' or 'covered-call'"},
		{"blank symbol", func(in *TradeInput) { in.Symbol = "  " }, "Ticker symbol is required"},
		{"missing shares", func(in *TradeInput) { in.Shares = nil }, "Share count is required"},
		{"missing original cost basis", func(in *TradeInput) { in.OriginalCostBasis = nil }, "Original cost basis is required"},
		{"missing new cost basis", func(in *TradeInput) { in.NewCostBasis = nil }, "New cost basis is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validTradeInput(t)
			tc.mutate(&in)

			_, err := svc.Create(owner.ID, in)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
			assert.Equal(t, tc.message, apperr.PublicMessage(err))
		})
	}
}

func TestDeleteTradeNotFound(t *testing.T) {
	svc, owner := newTradeService(t)

	err := svc.Delete(owner.ID, 9999)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
	assert.Equal(t, "Trade not found", apperr.PublicMessage(err))
}
