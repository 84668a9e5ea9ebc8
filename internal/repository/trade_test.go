package repository

import (
	"testing"
	"time"

	"github.com/plebtools/plebtools/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TradeRepositoryTestSuite struct {
	suite.Suite
	users  UserRepository
	trades TradeRepository
	owner  *model.User
}

func (s *TradeRepositoryTestSuite) SetupTest() {
	conn := newTestDB(s.T())
	s.users = NewUserRepository(conn)
	s.trades = NewTradeRepository(conn)
	s.owner = newTestUser(s.T(), s.users, "owner")
}

func (s *TradeRepositoryTestSuite) newTrade(symbol string, dateAdded time.Time) *model.Trade {
	return &model.Trade{
		UserID:            s.owner.ID,
		TradeType:         model.TradeTypeShares,
		Symbol:            symbol,
		Shares:            100,
		OriginalCostBasis: dec(s.T(), "150.25"),
		NewCostBasis:      dec(s.T(), "148.10"),
		CurrentPrice:      decimal.Zero,
		PNL:               decimal.Zero,
		DateAdded:         dateAdded,
		CreatedAt:         time.Now().UTC(),
	}
}

func (s *TradeRepositoryTestSuite) TestCreateSharesTradeLeavesOptionFieldsNull() {
	trade := s.newTrade("MSTR", time.Now().UTC())
	require.NoError(s.T(), s.trades.Create(trade))
	assert.Positive(s.T(), trade.ID)

	listed, err := s.trades.List(s.owner.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 1)
	assert.False(s.T(), listed[0].StrikePrice.Valid)
	assert.False(s.T(), listed[0].Premium.Valid)
	assert.Nil(s.T(), listed[0].ExpirationDate)
	assert.Nil(s.T(), listed[0].Notes)
}

func (s *TradeRepositoryTestSuite) TestCreateCoveredCallRoundTrip() {
	expiration := "2024-06-21"
	notes := "wheel strategy"
	trade := s.newTrade("COIN", time.Now().UTC())
	trade.TradeType = model.TradeTypeCoveredCall
	trade.StrikePrice = decimal.NewNullDecimal(dec(s.T(), "250"))
	trade.Premium = decimal.NewNullDecimal(dec(s.T(), "3.45"))
	trade.ExpirationDate = &expiration
	trade.Notes = &notes
	trade.PNL = dec(s.T(), "345")

	require.NoError(s.T(), s.trades.Create(trade))

	listed, err := s.trades.List(s.owner.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 1)
	got := listed[0]
	assert.Equal(s.T(), model.TradeTypeCoveredCall, got.TradeType)
	require.True(s.T(), got.StrikePrice.Valid)
	assert.True(s.T(), dec(s.T(), "250").Equal(got.StrikePrice.Decimal))
	require.NotNil(s.T(), got.ExpirationDate)
	assert.Equal(s.T(), expiration, *got.ExpirationDate)
	require.NotNil(s.T(), got.Notes)
	assert.Equal(s.T(), notes, *got.Notes)
	assert.True(s.T(), dec(s.T(), "345").Equal(got.PNL))
}

func (s *TradeRepositoryTestSuite) TestListOrderedByDateAdded() {
	base := time.Now().UTC()
	older := s.newTrade("AAPL", base.Add(-48*time.Hour))
	newer := s.newTrade("TSLA", base)
	require.NoError(s.T(), s.trades.Create(older))
	require.NoError(s.T(), s.trades.Create(newer))

	listed, err := s.trades.List(s.owner.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), listed, 2)
	assert.Equal(s.T(), "TSLA", listed[0].Symbol)
	assert.Equal(s.T(), "AAPL", listed[1].Symbol)
}

func (s *TradeRepositoryTestSuite) TestDeleteScopedToOwner() {
	trade := s.newTrade("NVDA", time.Now().UTC())
	require.NoError(s.T(), s.trades.Create(trade))

	other := newTestUser(s.T(), s.users, "other")
	err := s.trades.Delete(other.ID, trade.ID)
	assert.ErrorIs(s.T(), err, ErrTradeNotFound)

	require.NoError(s.T(), s.trades.Delete(s.owner.ID, trade.ID))
	err = s.trades.Delete(s.owner.ID, trade.ID)
	assert.ErrorIs(s.T(), err, ErrTradeNotFound)
}

func TestTradeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TradeRepositoryTestSuite))
}
