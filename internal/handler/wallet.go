package handler

import (
	"net/http"
	"strconv"

	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/ctxkeys"
	"github.com/plebtools/plebtools/internal/service"
)

type walletHandler struct {
	walletService *service.WalletService
}

func NewWalletHandler(walletService *service.WalletService) *walletHandler {
	return &walletHandler{walletService: walletService}
}

type walletAddressRequest struct {
	Address string `json:"address"`
}

func (h *walletHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	addresses, err := h.walletService.List(sess.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, addresses)
}

func (h *walletHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	var req walletAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	address, err := h.walletService.Create(sess.UserID, req.Address)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, address)
}

func (h *walletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, r, apperr.NotFound("Wallet address not found"))
		return
	}

	err = h.walletService.Delete(sess.UserID, id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Wallet address deleted successfully"})
}
