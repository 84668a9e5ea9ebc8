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

func newWalletService(t *testing.T) (*WalletService, *model.User) {
	t.Helper()

	conn := newServiceDB(t)
	owner := seedUser(t, conn, "owner")
	return NewWalletService(repository.NewWalletAddressRepository(conn)), owner
}

func TestCreateWalletTrimsAddress(t *testing.T) {
	svc, owner := newWalletService(t)

	wallet, err := svc.Create(owner.ID, "  bc1q-tracked  ")
	require.NoError(t, err)
	assert.Equal(t, "bc1q-tracked", wallet.Address)
}

func TestCreateWalletRejectsBlank(t *testing.T) {
	svc, owner := newWalletService(t)

	_, err := svc.Create(owner.ID, "   ")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Equal(t, "Wallet address required", apperr.PublicMessage(err))
}

func TestCreateWalletDuplicateConflict(t *testing.T) {
	svc, owner := newWalletService(t)

	_, err := svc.Create(owner.ID, "bc1q-dup")
	require.NoError(t, err)

	_, err = svc.Create(owner.ID, "bc1q-dup")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Equal(t, "Wallet address already added", apperr.PublicMessage(err))
}

func TestDeleteWalletNotFound(t *testing.T) {
	svc, owner := newWalletService(t)

	err := svc.Delete(owner.ID, 9999)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
	assert.Equal(t, "Wallet address not found", apperr.PublicMessage(err))
}
