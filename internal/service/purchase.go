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

// PurchaseInput carries client-submitted purchase fields. Required fields
// are pointers so a missing value is distinguishable from a zero.
type PurchaseInput struct {
	Date             string
	BTCAmount        *decimal.Decimal
	PriceUSD         *decimal.Decimal
	OriginalPrice    decimal.NullDecimal
	OriginalCurrency *string
	TransactionType  string
}

type PurchaseService struct {
	purchaseRepository repository.PurchaseRepository
}

func NewPurchaseService(purchaseRepository repository.PurchaseRepository) *PurchaseService {
	return &PurchaseService{purchaseRepository: purchaseRepository}
}

func (s *PurchaseService) List(userID int64) ([]model.Purchase, error) {
	purchases, err := s.purchaseRepository.List(userID)
	if err != nil {
		return nil, apperr.Persistence("Failed to load purchases", err)
	}
	return purchases, nil
}

func (s *PurchaseService) Create(userID int64, in PurchaseInput) (*model.Purchase, error) {
	purchase, err := buildPurchase(userID, in)
	if err != nil {
		return nil, err
	}

	err = s.purchaseRepository.Create(purchase)
	if err != nil {
		return nil, apperr.Persistence("Failed to create purchase", err)
	}

	return purchase, nil
}

func (s *PurchaseService) Delete(userID, purchaseID int64) error {
	err := s.purchaseRepository.Delete(userID, purchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return apperr.NotFound("Purchase not found")
		}
		return apperr.Persistence("Failed to delete purchase", err)
	}
	return nil
}

// buildPurchase validates an input and materializes the record. Shared with
// the bulk sync path so both enforce identical rules.
func buildPurchase(userID int64, in PurchaseInput) (*model.Purchase, error) {
	if in.Date == "" {
		return nil, apperr.Validation("Purchase date is required")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, apperr.Validation("Purchase date must be in YYYY-MM-DD format")
	}
	if in.BTCAmount == nil {
		return nil, apperr.Validation("BTC amount is required")
	}
	if in.PriceUSD == nil {
		return nil, apperr.Validation("USD price is required")
	}

	transactionType := in.TransactionType
	if transactionType == "" {
		transactionType = model.TransactionTypeBuy
	}
	if transactionType != model.TransactionTypeBuy && transactionType != model.TransactionTypeSell {
		return nil, apperr.Validation("Transaction type must be 'buy' or 'sell'")
	}

	var currency *string
	if in.OriginalCurrency != nil && *in.OriginalCurrency != "" {
		code := strings.ToUpper(strings.TrimSpace(*in.OriginalCurrency))
		if len(code) != 3 {
			return nil, apperr.Validation("Original currency must be a 3-letter code")
		}
		currency = &code
	}

	return &model.Purchase{
		UserID:           userID,
		Date:             in.Date,
		BTCAmount:        *in.BTCAmount,
		PriceUSD:         *in.PriceUSD,
		OriginalPrice:    in.OriginalPrice,
		OriginalCurrency: currency,
		TransactionType:  transactionType,
		CreatedAt:        time.Now().UTC(),
	}, nil
}
