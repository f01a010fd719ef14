package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
)

func (h *Handler) getView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	snapshot, err := h.Views.Snapshot(r.Context(), vars["restaurantId"], domain.View(vars["view"]))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// streamView pushes a full snapshot as a server-sent event on open and after
// every order change. The stream ends when the client goes away.
func (h *Handler) streamView(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeMessage(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	vars := mux.Vars(r)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	started := false
	err := h.Views.Watch(r.Context(), vars["restaurantId"], domain.View(vars["view"]), func(snapshot *domain.ViewSnapshot) error {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}
		if !started {
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err == nil {
		return
	}
	if !started {
		h.writeError(w, r, err)
		return
	}
	hlog.FromRequest(r).Warn().Err(err).Str("view", vars["view"]).Msg("view stream ended")
}
