package httpapi

import (
	"net/http"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) getOrderPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.Restaurants.OrderPage(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.PlaceOrderRequest
	if !decode(w, r, &req) {
		return
	}
	order, err := h.Orders.PlaceOrder(r.Context(), mux.Vars(r)["token"], req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) createManualOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.ManualOrderRequest
	if !decode(w, r, &req) {
		return
	}
	order, err := h.Orders.CreateManualOrder(r.Context(), principalFrom(r.Context()), mux.Vars(r)["restaurantId"], req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListActive(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	order, err := h.Orders.Get(r.Context(), vars["restaurantId"], vars["orderId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order":         order,
		"next_statuses": domain.NextStatuses(order.Status),
	})
}

func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.StatusChangeRequest
	if !decode(w, r, &req) {
		return
	}
	vars := mux.Vars(r)
	order, err := h.Orders.ChangeStatus(r.Context(), principalFrom(r.Context()), vars["restaurantId"], vars["orderId"], req.Status, req.Version)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderItem(w http.ResponseWriter, r *http.Request) {
	var req domain.ItemUpdateRequest
	if !decode(w, r, &req) {
		return
	}
	vars := mux.Vars(r)
	order, err := h.Orders.UpdateItem(r.Context(), principalFrom(r.Context()), vars["restaurantId"], vars["orderId"], vars["itemId"], req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// removeOrderItem takes the expected version from ?version=, if given.
func (h *Handler) removeOrderItem(w http.ResponseWriter, r *http.Request) {
	version, ok := queryInt(w, r, "version")
	if !ok {
		return
	}
	vars := mux.Vars(r)
	order, err := h.Orders.RemoveItem(r.Context(), principalFrom(r.Context()), vars["restaurantId"], vars["orderId"], vars["itemId"], version)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
