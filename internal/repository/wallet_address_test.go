package repository

import (
	"testing"
	"time"

	"github.com/plebtools/plebtools/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type WalletAddressRepositoryTestSuite struct {
	suite.Suite
	users   UserRepository
	wallets WalletAddressRepository
	owner   *model.User
	other   *model.User
}

func (s *WalletAddressRepositoryTestSuite) SetupTest() {
	conn := newTestDB(s.T())
	s.users = NewUserRepository(conn)
	s.wallets = NewWalletAddressRepository(conn)
	s.owner = newTestUser(s.T(), s.users, "owner")
	s.other = newTestUser(s.T(), s.users, "other")
}

func (s *WalletAddressRepositoryTestSuite) newAddress(userID int64, address string, at time.Time) *model.WalletAddress {
	return &model.WalletAddress{UserID: userID, Address: address, CreatedAt: at}
}

func (s *WalletAddressRepositoryTestSuite) TestCreateAndList() {
	w := s.newAddress(s.owner.ID, "bc1q-first", time.Now().UTC())
	require.NoError(s.T(), s.wallets.Create(w))
	assert.Positive(s.T(), w.ID)

	listed, err := s.wallets.List(s.owner.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 1)
	assert.Equal(s.T(), "bc1q-first", listed[0].Address)
}

func (s *WalletAddressRepositoryTestSuite) TestListNewestFirst() {
	base := time.Now().UTC()
	require.NoError(s.T(), s.wallets.Create(s.newAddress(s.owner.ID, "bc1q-old", base.Add(-time.Hour))))
	require.NoError(s.T(), s.wallets.Create(s.newAddress(s.owner.ID, "bc1q-new", base)))

	listed, err := s.wallets.List(s.owner.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 2)
	assert.Equal(s.T(), "bc1q-new", listed[0].Address)
	assert.Equal(s.T(), "bc1q-old", listed[1].Address)
}

func (s *WalletAddressRepositoryTestSuite) TestDuplicatePerOwner() {
	require.NoError(s.T(), s.wallets.Create(s.newAddress(s.owner.ID, "bc1q-dup", time.Now().UTC())))

	err := s.wallets.Create(s.newAddress(s.owner.ID, "bc1q-dup", time.Now().UTC()))
	assert.ErrorIs(s.T(), err, ErrDuplicateAddress)
}

func (s *WalletAddressRepositoryTestSuite) TestSameAddressDifferentOwners() {
	require.NoError(s.T(), s.wallets.Create(s.newAddress(s.owner.ID, "bc1q-shared", time.Now().UTC())))
	require.NoError(s.T(), s.wallets.Create(s.newAddress(s.other.ID, "bc1q-shared", time.Now().UTC())))
}

func (s *WalletAddressRepositoryTestSuite) TestDeleteForeignRecordNotFound() {
	w := s.newAddress(s.other.ID, "bc1q-other", time.Now().UTC())
	require.NoError(s.T(), s.wallets.Create(w))

	err := s.wallets.Delete(s.owner.ID, w.ID)
	assert.ErrorIs(s.T(), err, ErrWalletAddressNotFound)

	require.NoError(s.T(), s.wallets.Delete(s.other.ID, w.ID))
}

func TestWalletAddressRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WalletAddressRepositoryTestSuite))
}
