package service

import (
	"net/http"
	"testing"

	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/model"
	"github.com/plebtools/plebtools/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseService(t *testing.T) (*PurchaseService, *model.User) {
	t.Helper()

	conn := newServiceDB(t)
	owner := seedUser(t, conn, "owner")
	return NewPurchaseService(repository.NewPurchaseRepository(conn)), owner
}

func validPurchaseInput(t *testing.T) PurchaseInput {
	return PurchaseInput{
		Date:      "2024-01-15",
		BTCAmount: decPtr(t, "0.25"),
		PriceUSD:  decPtr(t, "42000"),
	}
}

func TestCreatePurchaseDefaultsToBuy(t *testing.T) {
	svc, owner := newPurchaseService(t)

	purchase, err := svc.Create(owner.ID, validPurchaseInput(t))
	require.NoError(t, err)
	assert.Positive(t, purchase.ID)
	assert.Equal(t, model.TransactionTypeBuy, purchase.TransactionType)
	assert.Nil(t, purchase.OriginalCurrency)
}

func TestCreatePurchaseNormalizesCurrency(t *testing.T) {
	svc, owner := newPurchaseService(t)

	currency := " eur "
	in := validPurchaseInput(t)
	in.OriginalCurrency = &currency

	purchase, err := svc.Create(owner.ID, in)
	require.NoError(t, err)
	require.NotNil(t, purchase.OriginalCurrency)
	assert.Equal(t, "EUR", *purchase.OriginalCurrency)
}

func TestCreatePurchaseValidation(t *testing.T) {
	svc, owner := newPurchaseService(t)

	cases := []struct {
		name    string
		mutate  func(*PurchaseInput)
		message string
	}{
		{"missing date", func(in *PurchaseInput) { in.Date = "" }, "Purchase date is required"},
		{"malformed date", func(in *PurchaseInput) { in.Date = "15/01/2024" }, "Purchase date must be in YYYY-MM-DD format"},
		{"missing btc amount", func(in *PurchaseInput) { in.BTCAmount = nil }, "BTC amount is required"},
		{"missing usd price", func(in *PurchaseInput) { in.PriceUSD = nil }, "USD price is required"},
		{"unknown transaction type", func(in *PurchaseInput) { in.TransactionType = "hodl" }, "Transaction type must be 'buy' or 'sell'"},
		{"long currency code", func(in *PurchaseInput) { code := "EURO"; in.OriginalCurrency = &code }, "Original currency must be a 3-letter code"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validPurchaseInput(t)
			tc.mutate(&in)

			_, err := svc.Create(owner.ID, in)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
			assert.Equal(t, tc.message, apperr.PublicMessage(err))
		})
	}
}

func TestDeletePurchaseNotFound(t *testing.T) {
	svc, owner := newPurchaseService(t)

	purchase, err := svc.Create(owner.ID, validPurchaseInput(t))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(owner.ID, purchase.ID))

	err = svc.Delete(owner.ID, purchase.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
	assert.Equal(t, "Purchase not found", apperr.PublicMessage(err))
}
