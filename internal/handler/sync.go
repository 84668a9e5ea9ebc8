package handler

import (
	"net/http"

	"github.com/plebtools/plebtools/internal/ctxkeys"
	"github.com/plebtools/plebtools/internal/service"
)

type syncHandler struct {
	syncService *service.SyncService
}

func NewSyncHandler(syncService *service.SyncService) *syncHandler {
	return &syncHandler{syncService: syncService}
}

type syncRequest struct {
	Purchases       []purchaseRequest      `json:"purchases"`
	WalletAddresses []walletAddressRequest `json:"wallet_addresses"`
}

// Sync replaces the caller's purchase and wallet collections with the
// submitted snapshots, atomically.
func (h *syncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	var req syncRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	purchases := make([]service.PurchaseInput, 0, len(req.Purchases))
	for _, p := range req.Purchases {
		purchases = append(purchases, p.input())
	}

	addresses := make([]string, 0, len(req.WalletAddresses))
	for _, a := range req.WalletAddresses {
		addresses = append(addresses, a.Address)
	}

	err := h.syncService.Replace(sess.UserID, purchases, addresses)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Data synced successfully"})
}
