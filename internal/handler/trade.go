package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/plebtools/plebtools/internal/apperr"
	"github.com/plebtools/plebtools/internal/ctxkeys"
	"github.com/plebtools/plebtools/internal/service"
	"github.com/shopspring/decimal"
)

type tradeHandler struct {
	tradeService *service.TradeService
}

func NewTradeHandler(tradeService *service.TradeService) *tradeHandler {
	return &tradeHandler{tradeService: tradeService}
}

type tradeRequest struct {
	TradeType         string              `json:"trade_type"`
	Symbol            string              `json:"symbol"`
	Shares            *int64              `json:"shares"`
	OriginalCostBasis *decimal.Decimal    `json:"original_cost_basis"`
	NewCostBasis      *decimal.Decimal    `json:"new_cost_basis"`
	StrikePrice       decimal.NullDecimal `json:"strike_price"`
	Premium           decimal.NullDecimal `json:"premium"`
	ExpirationDate    *string             `json:"expiration_date"`
	CurrentPrice      *decimal.Decimal    `json:"current_price"`
	Notes             *string             `json:"notes"`
	PNL               *decimal.Decimal    `json:"pnl"`
	DateAdded         *time.Time          `json:"date_added"`
}

func (h *tradeHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	trades, err := h.tradeService.List(sess.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, trades)
}

func (h *tradeHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	var req tradeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	trade, err := h.tradeService.Create(sess.UserID, service.TradeInput{
		TradeType:         req.TradeType,
		Symbol:            req.Symbol,
		Shares:            req.Shares,
		OriginalCostBasis: req.OriginalCostBasis,
		NewCostBasis:      req.NewCostBasis,
		StrikePrice:       req.StrikePrice,
		Premium:           req.Premium,
		ExpirationDate:    req.ExpirationDate,
		CurrentPrice:      req.CurrentPrice,
		Notes:             req.Notes,
		PNL:               req.PNL,
		DateAdded:         req.DateAdded,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, trade)
}

func (h *tradeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := ctxkeys.SessionFrom(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, r, apperr.NotFound("Trade not found"))
		return
	}

	err = h.tradeService.Delete(sess.UserID, id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Trade deleted successfully"})
}
