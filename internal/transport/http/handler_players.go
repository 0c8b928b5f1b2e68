package httptransport

import (
	"errors"
	"net/http"

	appplayers "tablerelay/internal/app/players"
)

type PlayerHandlers struct {
	svc *appplayers.Service
}

func NewPlayerHandlers(svc *appplayers.Service) *PlayerHandlers {
	return &PlayerHandlers{svc: svc}
}

func (h *PlayerHandlers) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Register(body.Name)
		if err != nil {
			if errors.Is(err, appplayers.ErrNameRequired) {
				WriteHTTPError(w, http.StatusBadRequest, "name_required")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

func (h *PlayerHandlers) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PlayerID string `json:"playerId"`
			Token    string `json:"token"`
		}
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.CreateSession(body.PlayerID, body.Token)
		if err != nil {
			switch {
			case errors.Is(err, appplayers.ErrAuthRequired):
				WriteHTTPError(w, http.StatusBadRequest, "auth_required")
			case errors.Is(err, appplayers.ErrUnauthorized):
				WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}
