package httptransport

import (
	"errors"
	"net/http"
	"strconv"

	appsync "tablerelay/internal/app/statesync"

	"github.com/go-chi/chi/v5"
)

type StateHandlers struct {
	svc *appsync.Service
}

func NewStateHandlers(svc *appsync.Service) *StateHandlers {
	return &StateHandlers{svc: svc}
}

func (h *StateHandlers) Sync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body appsync.SyncRequest
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.SyncState(chi.URLParam(r, "tableId"), body)
		if err != nil {
			switch {
			case errors.Is(err, appsync.ErrUnauthorized):
				WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			case errors.Is(err, appsync.ErrTableNotFound):
				WriteHTTPError(w, http.StatusNotFound, "not_found")
			case errors.Is(err, appsync.ErrStaleVersion):
				metricStateSyncStaleTotal.Add(1)
				WriteHTTPError(w, http.StatusConflict, "stale_version")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		metricStateSyncAppliedTotal.Add(1)
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *StateHandlers) StateSince() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricStatePollTotal.Add(1)
		since := int64(0)
		if v := r.URL.Query().Get("since"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				since = n
			}
		}
		resp, changed, err := h.svc.StateSince(chi.URLParam(r, "tableId"), since)
		if err != nil {
			if errors.Is(err, appsync.ErrTableNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		if !changed {
			metricStatePollUnchanged.Add(1)
			writeJSON(w, http.StatusNotModified, resp)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *StateHandlers) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body appsync.EventsRequest
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.PostEvents(chi.URLParam(r, "tableId"), body)
		if err != nil {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeJSON(w, http.StatusAccepted, resp)
	}
}

func (h *StateHandlers) Action() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body appsync.ActionRequest
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.PostAction(chi.URLParam(r, "tableId"), body)
		if err != nil {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeJSON(w, http.StatusAccepted, resp)
	}
}

func (h *StateHandlers) Resync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body appsync.AuthRequest
		if err := decodeBody(r, &body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.ForceResync(chi.URLParam(r, "tableId"), body)
		if err != nil {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeJSON(w, http.StatusAccepted, resp)
	}
}
