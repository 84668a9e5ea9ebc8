package service

import (
	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/model"
	"github.com/plebtools/plebtools/internal/repository"
)

type SyncService struct {
	syncRepository repository.SyncRepository
}

func NewSyncService(syncRepository repository.SyncRepository) *SyncService {
	return &SyncService{syncRepository: syncRepository}
}

// Replace swaps the owner's purchase and wallet collections for the supplied
// snapshots. Validation runs up front over the whole snapshot, then the
// replace happens atomically: on any failure the prior state survives intact.
// Trades are outside the sync contract.
func (s *SyncService) Replace(userID int64, purchaseInputs []PurchaseInput, addresses []string) error {
	purchases := make([]model.Purchase, 0, len(purchaseInputs))
	for _, in := range purchaseInputs {
		purchase, err := buildPurchase(userID, in)
		if err != nil {
			return err
		}
		purchases = append(purchases, *purchase)
	}

	wallets := make([]model.WalletAddress, 0, len(addresses))
	for _, address := range addresses {
		wallet, err := buildWalletAddress(userID, address)
		if err != nil {
			return err
		}
		wallets = append(wallets, *wallet)
	}

	err := s.syncRepository.Replace(userID, purchases, wallets)
	if err != nil {
		return apperr.Persistence("Failed to sync data", err)
	}

	return nil
}
