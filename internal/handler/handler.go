package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/integrations/keyrate"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/models"
	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/service"
)

// KeyRateProvider exposes the last observed key rate
type KeyRateProvider interface {
	Latest() (keyrate.Rate, bool)
}

// Handler serves the suggestion endpoints
type Handler struct {
	svc     *service.Service
	keyRate KeyRateProvider
	log     *logrus.Logger
	now     service.Clock
}

// NewHandler creates a handler. keyRate may be nil when the integration is
// disabled.
func NewHandler(svc *service.Service, keyRate KeyRateProvider, log *logrus.Logger, now service.Clock) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{svc: svc, keyRate: keyRate, log: log, now: now}
}

// Register mounts every route on r
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/loan/optimize-payments", h.OptimizePayments).Methods(http.MethodPost)
	r.HandleFunc("/loan/key-rate", h.KeyRate).Methods(http.MethodGet)
	r.HandleFunc("/income/suggestions/", h.IncomeSuggestions).Methods(http.MethodPost)
	r.HandleFunc("/expense/suggestions/", h.ExpenseSuggestions).Methods(http.MethodPost)
	r.HandleFunc("/savings/suggestions/", h.SavingsSuggestions).Methods(http.MethodPost)
	r.HandleFunc("/budget/suggestions/", h.BudgetSuggestions).Methods(http.MethodPost)
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": h.now().Format(time.RFC3339Nano),
	})
}

// OptimizePayments handles POST /loan/optimize-payments
func (h *Handler) OptimizePayments(w http.ResponseWriter, r *http.Request) {
	var loans []models.Loan
	if !h.decode(w, r, &loans) {
		return
	}
	out, err := h.svc.OptimizeLoanPayments(loans)
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// IncomeSuggestions handles POST /income/suggestions/
func (h *Handler) IncomeSuggestions(w http.ResponseWriter, r *http.Request) {
	var incomes []models.Income
	if !h.decode(w, r, &incomes) {
		return
	}
	out, err := h.svc.IncomeSuggestions(incomes)
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// ExpenseSuggestions handles POST /expense/suggestions/
func (h *Handler) ExpenseSuggestions(w http.ResponseWriter, r *http.Request) {
	var expenses []models.Expense
	if !h.decode(w, r, &expenses) {
		return
	}
	out, err := h.svc.ExpenseSuggestions(expenses)
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}

// SavingsSuggestions handles POST /savings/suggestions/
func (h *Handler) SavingsSuggestions(w http.ResponseWriter, r *http.Request) {
	var goals []models.SavingsGoal
	if !h.decode(w, r, &goals) {
		return
	}
	out, err := h.svc.SavingsSuggestions(goals)
	if err != nil {
		h.internalError(w, err)
		return
	}
	if len(out) == 0 {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Detail: "No savings suggestions found"})
		return
	}
	h.writeJSON(w, http.StatusOK, models.SavingsSuggestions{Suggestions: out})
}

// BudgetSuggestions handles POST /budget/suggestions/
func (h *Handler) BudgetSuggestions(w http.ResponseWriter, r *http.Request) {
	var budgets []models.Budget
	if !h.decode(w, r, &budgets) {
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.BudgetSuggestions(budgets))
}

// KeyRate handles GET /loan/key-rate
func (h *Handler) KeyRate(w http.ResponseWriter, r *http.Request) {
	if h.keyRate == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Detail: "Key rate integration is disabled"})
		return
	}
	rate, ok := h.keyRate.Latest()
	if !ok {
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Detail: "Key rate not available yet"})
		return
	}
	h.writeJSON(w, http.StatusOK, rate)
}

// decode reads a JSON array body into dst. A missing or null body decodes
// to an empty list.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.log.Debugf("Rejected request body on %s: %v", r.URL.Path, err)
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: fmt.Sprintf("Invalid request body: %v", err)})
		return false
	}
	return true
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	h.log.Errorf("Failed to generate suggestions: %v", err)
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}
