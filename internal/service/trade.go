package service

import (
	"errors"
	"strings"
	"time"

	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/model"
	"github.com/plebtools/plebtools/internal/repository"
	"github.com/shopspring/decimal"
)

// TradeInput carries client-submitted covered-call tracker fields.
type TradeInput struct {
	TradeType         string
	Symbol            string
	Shares            *int64
	OriginalCostBasis *decimal.Decimal
	NewCostBasis      *decimal.Decimal
	StrikePrice       decimal.NullDecimal
	Premium           decimal.NullDecimal
	ExpirationDate    *string
	CurrentPrice      *decimal.Decimal
	Notes             *string
	PNL               *decimal.Decimal
	DateAdded         *time.Time
}

type TradeService struct {
	tradeRepository repository.TradeRepository
}

func NewTradeService(tradeRepository repository.TradeRepository) *TradeService {
	return &TradeService{tradeRepository: tradeRepository}
}

func (s *TradeService) List(userID int64) ([]model.Trade, error) {
	trades, err := s.tradeRepository.List(userID)
	if err != nil {
		return nil, apperr.Persistence("Failed to load trades", err)
	}
	return trades, nil
}

func (s *TradeService) Create(userID int64, in TradeInput) (*model.Trade, error) {
	if !model.ValidTradeType(in.TradeType) {
		return nil, apperr.Validation("Trade type must be 'shares' or 'covered-call'")
	}

	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	if symbol == "" {
		return nil, apperr.Validation("Ticker symbol is required")
	}
	if in.Shares == nil {
		return nil, apperr.Validation("Share count is required")
	}
	if in.OriginalCostBasis == nil {
		return nil, apperr.Validation("Original cost basis is required")
	}
	if in.NewCostBasis == nil {
		return nil, apperr.Validation("New cost basis is required")
	}

	now := time.Now().UTC()

	// The logical date added is client-overridable; row creation time is not.
	dateAdded := now
	if in.DateAdded != nil {
		dateAdded = in.DateAdded.UTC()
	}

	currentPrice := decimal.Zero
	if in.CurrentPrice != nil {
		currentPrice = *in.CurrentPrice
	}

	pnl := decimal.Zero
	if in.PNL != nil {
		pnl = *in.PNL
	}

	trade := &model.Trade{
		UserID:            userID,
		TradeType:         in.TradeType,
		Symbol:            symbol,
		Shares:            *in.Shares,
		OriginalCostBasis: *in.OriginalCostBasis,
		NewCostBasis:      *in.NewCostBasis,
		StrikePrice:       in.StrikePrice,
		Premium:           in.Premium,
		ExpirationDate:    in.ExpirationDate,
		CurrentPrice:      currentPrice,
		Notes:             in.Notes,
		PNL:               pnl,
		DateAdded:         dateAdded,
		CreatedAt:         now,
	}

	err := s.tradeRepository.Create(trade)
	if err != nil {
		return nil, apperr.Persistence("Failed to create trade", err)
	}

	return trade, nil
}

func (s *TradeService) Delete(userID, tradeID int64) error {
	err := s.tradeRepository.Delete(userID, tradeID)
	if err != nil {
		if errors.Is(err, repository.ErrTradeNotFound) {
			return apperr.NotFound("Trade not found")
		}
		return apperr.Persistence("Failed to delete trade", err)
	}
	return nil
}
