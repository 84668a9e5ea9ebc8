package handler

import (
	"net/http"
	"strconv"

	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/ctxkeys"
	"github.com/plebtools/plebtools/internal/service"
	"github.com/shopspring/decimal"
)

type purchaseHandler struct {
	purchaseService *service.PurchaseService
}

func NewPurchaseHandler(purchaseService *service.PurchaseService) *purchaseHandler {
	return &purchaseHandler{purchaseService: purchaseService}
}

type purchaseRequest struct {
	Date             string              `json:"date"`
	BTCAmount        *decimal.Decimal    `json:"btc_amount"`
	PriceUSD         *decimal.Decimal    `json:"price_usd"`
	OriginalPrice    decimal.NullDecimal `json:"original_price"`
	OriginalCurrency *string             `json:"original_currency"`
	TransactionType  string              `json:"transaction_type"`
}

func (req purchaseRequest) input() service.PurchaseInput {
	return service.PurchaseInput{
		Date:             req.Date,
		BTCAmount:        req.BTCAmount,
		PriceUSD:         req.PriceUSD,
		OriginalPrice:    req.OriginalPrice,
		OriginalCurrency: req.OriginalCurrency,
		TransactionType:  req.TransactionType,
	}
}

func (h *purchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	purchases, err := h.purchaseService.List(sess.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, purchases)
}

func (h *purchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	var req purchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	purchase, err := h.purchaseService.Create(sess.UserID, req.input())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, purchase)
}

func (h *purchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, r, apperr.NotFound("Purchase not found"))
		return
	}

	err = h.purchaseService.Delete(sess.UserID, id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Purchase deleted successfully"})
}
