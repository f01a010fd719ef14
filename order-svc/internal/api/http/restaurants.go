package httpapi

import (
	"net/http"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if !decode(w, r, &rest) {
		return
	}
	if err := h.Restaurants.Create(r.Context(), principalFrom(r.Context()), &rest); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getPublicMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Restaurants.PublicMenu(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if !decode(w, r, &payload) {
		return
	}
	table, err := h.Tables.Create(r.Context(), mux.Vars(r)["restaurantId"], payload.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) regenerateQRCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	table, err := h.Tables.RegenerateQRCode(r.Context(), vars["restaurantId"], vars["tableId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	qr, err := h.Tables.GetQRCode(r.Context(), vars["restaurantId"], vars["tableId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="table-`+vars["tableId"]+`.png"`)
	w.Write(qr)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if !decode(w, r, &category) {
		return
	}
	category.RestaurantID = mux.Vars(r)["restaurantId"]
	if err := h.Menu.CreateCategory(r.Context(), &category); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.ListCategories(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	item := domain.MenuItem{Available: true}
	if !decode(w, r, &item) {
		return
	}
	item.RestaurantID = mux.Vars(r)["restaurantId"]
	if err := h.Menu.CreateItem(r.Context(), &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.ListItems(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if !decode(w, r, &item) {
		return
	}
	vars := mux.Vars(r)
	item.ID = vars["itemId"]
	item.RestaurantID = vars["restaurantId"]
	if err := h.Menu.UpdateItem(r.Context(), &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rows, err := h.Menu.DeleteItem(r.Context(), vars["restaurantId"], vars["itemId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if rows == 0 {
		writeMessage(w, http.StatusNotFound, "menu item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
