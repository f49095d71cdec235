package handler

import (
	"context"
	"net/http"
)

type Pause struct {
	gate      PauseSwitch
	validator Validator
}

type PauseSwitch interface {
	IsPaused(ctx context.Context) bool
	SetPaused(ctx context.Context, paused bool) error
}

func NewPause(g PauseSwitch, v Validator) *Pause {
	return &Pause{
		gate:      g,
		validator: v,
	}
}

func (h *Pause) Get(w http.ResponseWriter, r *http.Request) {
	responseAsJSON(w, struct {
		Paused bool `json:"paused"`
	}{Paused: h.gate.IsPaused(r.Context())}, http.StatusOK)
}

// Set переключает обработку оплат. Действует только на будущие события:
// события, уже прошедшие проверку флага, обрабатываются до конца.
func (h *Pause) Set(w http.ResponseWriter, r *http.Request) {
	req := SetPauseRequest{}
	if err := readJSONBodyAndValidate(r.Context(), &req, r, h.validator); err != nil {
		badRequest(w)

		return
	}

	if err := h.gate.SetPaused(r.Context(), *req.Paused); err != nil {
		serverError(w)

		return
	}

	responseAsJSON(w, struct {
		Paused bool `json:"paused"`
	}{Paused: *req.Paused}, http.StatusOK)
}
