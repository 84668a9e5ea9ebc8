package service

import (
	"errors"
	"strings"
	"time"

	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/model"
	"github.com/plebtools/plebtools/internal/repository"
)

type WalletService struct {
	walletRepository repository.WalletAddressRepository
}

func NewWalletService(walletRepository repository.WalletAddressRepository) *WalletService {
	return &WalletService{walletRepository: walletRepository}
}

func (s *WalletService) List(userID int64) ([]model.WalletAddress, error) {
	addresses, err := s.walletRepository.List(userID)
	if err != nil {
		return nil, apperr.Persistence("Failed to load wallet addresses", err)
	}
	return addresses, nil
}

func (s *WalletService) Create(userID int64, address string) (*model.WalletAddress, error) {
	wallet, err := buildWalletAddress(userID, address)
	if err != nil {
		return nil, err
	}

	err = s.walletRepository.Create(wallet)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAddress) {
			return nil, apperr.Conflict("Wallet address already added")
		}
		return nil, apperr.Persistence("Failed to add wallet address", err)
	}

	return wallet, nil
}

func (s *WalletService) Delete(userID, addressID int64) error {
	err := s.walletRepository.Delete(userID, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletAddressNotFound) {
			return apperr.NotFound("Wallet address not found")
		}
		return apperr.Persistence("Failed to delete wallet address", err)
	}
	return nil
}

func buildWalletAddress(userID int64, address string) (*model.WalletAddress, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, apperr.Validation("Wallet address required")
	}

	return &model.WalletAddress{
		UserID:    userID,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}, nil
}
