package httpapi

import (
	"net/http"
	"strconv"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/gorilla/mux"
)

func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

func (h *Handler) bindCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
		Token     string `json:"token"`
	}
	if !decode(w, r, &payload) {
		return
	}
	cart, err := h.Carts.Bind(r.Context(), payload.SessionID, payload.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Get(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var line domain.OrderLine
	if !decode(w, r, &line) {
		return
	}
	cart, err := h.Carts.AddItem(r.Context(), mux.Vars(r)["sessionId"], line)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCart(w, cart)
}

// updateCartItem applies whichever of quantity and instructions is present.
func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity            *int    `json:"quantity"`
		SpecialInstructions *string `json:"special_instructions"`
	}
	if !decode(w, r, &payload) {
		return
	}
	vars := mux.Vars(r)
	var (
		cart *domain.Cart
		err  error
	)
	if payload.SpecialInstructions != nil {
		cart, err = h.Carts.UpdateInstructions(r.Context(), vars["sessionId"], vars["menuItemId"], *payload.SpecialInstructions)
	}
	if err == nil && payload.Quantity != nil {
		cart, err = h.Carts.SetQuantity(r.Context(), vars["sessionId"], vars["menuItemId"], *payload.Quantity)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if cart == nil {
		writeMessage(w, http.StatusBadRequest, "nothing to update")
		return
	}
	writeCart(w, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cart, err := h.Carts.RemoveItem(r.Context(), vars["sessionId"], vars["menuItemId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCart(w, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), mux.Vars(r)["sessionId"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCart(w http.ResponseWriter, cart *domain.Cart) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cart":  cart,
		"total": cart.Total(),
		"count": cart.Count(),
	})
}
