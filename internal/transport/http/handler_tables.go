package httptransport

import (
	"errors"
	"net/http"

	apptables "tablerelay/internal/app/tables"

	"github.com/go-chi/chi/v5"
)

type TableHandlers struct {
	svc *apptables.Service
}

func NewTableHandlers(svc *apptables.Service) *TableHandlers {
	return &TableHandlers{svc: svc}
}

func (h *TableHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.svc.List())
	}
}

func (h *TableHandlers) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body apptables.CreateTableRequest
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		writeJSON(w, http.StatusCreated, h.svc.Create(body))
	}
}

func (h *TableHandlers) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Get(chi.URLParam(r, "tableId"))
		if err != nil {
			WriteHTTPError(w, http.StatusNotFound, "not_found")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *TableHandlers) Join() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body apptables.JoinRequest
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Join(chi.URLParam(r, "tableId"), body)
		if err != nil {
			switch {
			case errors.Is(err, apptables.ErrUnauthorized):
				WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			case errors.Is(err, apptables.ErrTableNotFound):
				WriteHTTPError(w, http.StatusNotFound, "not_found")
			case errors.Is(err, apptables.ErrTableFull):
				WriteHTTPError(w, http.StatusConflict, "table_full")
			case errors.Is(err, apptables.ErrCannotJoin):
				WriteHTTPError(w, http.StatusBadRequest, "cannot_join")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *TableHandlers) Leave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body apptables.LeaveRequest
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Leave(chi.URLParam(r, "tableId"), body)
		if err != nil {
			switch {
			case errors.Is(err, apptables.ErrUnauthorized):
				WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			case errors.Is(err, apptables.ErrTableNotFound), errors.Is(err, apptables.ErrNotAtTable):
				WriteHTTPError(w, http.StatusNotFound, "not_found")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *TableHandlers) Heartbeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.svc.Heartbeat(chi.URLParam(r, "tableId")))
	}
}

func (h *TableHandlers) Chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body apptables.ChatRequest
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Chat(chi.URLParam(r, "tableId"), body)
		if err != nil {
			switch {
			case errors.Is(err, apptables.ErrUnauthorized):
				WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			case errors.Is(err, apptables.ErrMessageRequired):
				WriteHTTPError(w, http.StatusBadRequest, "message_required")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		writeJSON(w, http.StatusAccepted, resp)
	}
}
