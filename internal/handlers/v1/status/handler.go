package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/ledger-server/internal/logging"
)

type loadChecker interface {
	Loaded() bool
}

type Handler struct {
	Ledger loadChecker
}

func NewHandler(ledger loadChecker) Handler {
	return Handler{Ledger: ledger}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	loaded := h.Ledger.Loaded()
	logData.AddData("ledgerLoaded", loaded)
	if !loaded {
		w.WriteHeader(http.StatusServiceUnavailable)
		return errors.New("status: ledger not loaded")
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
