package httpapi

import (
	"net/http"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) createStaff(w http.ResponseWriter, r *http.Request) {
	var req domain.StaffRequest
	if !decode(w, r, &req) {
		return
	}
	req.RestaurantID = mux.Vars(r)["restaurantId"]
	staff, err := h.Staff.Provision(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, staff)
}

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	users, err := h.Staff.List(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.Summary(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
