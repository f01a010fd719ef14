package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"restaurant-saas/order-svc/internal/domain"
	"restaurant-saas/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
)

const invalidCodeMessage = "invalid or expired code"

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Menu        service.MenuServiceInterface
	Tables      service.TableServiceInterface
	Carts       service.CartServiceInterface
	Orders      service.OrderServiceInterface
	Views       service.ViewServiceInterface
	Staff       service.StaffServiceInterface
	Analytics   service.AnalyticsServiceInterface
	Auth        PrincipalResolver
	LoginPath   string
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// customer facing, identified by table code or session only
	r.HandleFunc("/api/menu/{slug}", h.getPublicMenu).Methods("GET")
	r.HandleFunc("/order/{token}", h.getOrderPage).Methods("GET")
	r.HandleFunc("/api/order/{token}", h.getOrderPage).Methods("GET")
	r.HandleFunc("/api/order/{token}", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/cart", h.bindCart).Methods("POST")
	r.HandleFunc("/api/cart/{sessionId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{sessionId}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{sessionId}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/{sessionId}/items/{menuItemId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/{sessionId}/items/{menuItemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/me", h.authenticate(h.me)).Methods("GET")
	r.HandleFunc("/api/restaurants", h.authenticate(h.createRestaurant)).Methods("POST")

	owner := func(next http.HandlerFunc) http.HandlerFunc {
		return h.authenticate(h.requireRoles(next, domain.RoleOwner))
	}
	r.HandleFunc("/api/restaurants/{restaurantId}/tables", owner(h.createTable)).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables", owner(h.listTables)).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables/{tableId}/qrcode", owner(h.regenerateQRCode)).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables/{tableId}/qrcode", owner(h.getQRCode)).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories", owner(h.createCategory)).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories", owner(h.listCategories)).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items", owner(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items", owner(h.listMenuItems)).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/{itemId}", owner(h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/{itemId}", owner(h.deleteMenuItem)).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/staff", owner(h.createStaff)).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/staff", owner(h.listStaff)).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/analytics", owner(h.getAnalytics)).Methods("GET")

	staff := func(next http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
		return h.authenticate(h.requireRoles(next, roles...))
	}
	r.HandleFunc("/api/restaurants/{restaurantId}/orders", staff(h.listOrders, domain.StaffRoles...)).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders", staff(h.createManualOrder, domain.RoleWaitstaff, domain.RoleBartender)).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/{orderId}", staff(h.getOrder, domain.StaffRoles...)).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/{orderId}/status", staff(h.changeStatus, domain.StaffRoles...)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/{orderId}/items/{itemId}", staff(h.updateOrderItem, domain.RoleWaitstaff)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/{orderId}/items/{itemId}", staff(h.removeOrderItem, domain.RoleWaitstaff)).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/views/{view}", h.authenticate(h.requireView(h.getView))).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/views/{view}/stream", h.authenticate(h.requireView(h.streamView))).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"principal": p,
		"redirect":  domain.RedirectPath(p.Role),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeError maps service errors onto status codes. Anything unknown is a
// backend failure: logged with details, answered generically.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, verr)
	case errors.Is(err, service.ErrInvalidToken):
		writeMessage(w, http.StatusBadRequest, invalidCodeMessage)
	case errors.Is(err, service.ErrTokenExpired):
		writeMessage(w, http.StatusGone, invalidCodeMessage)
	case errors.Is(err, service.ErrForbidden):
		h.redirectToLogin(w, r)
	case errors.Is(err, service.ErrTransitionNotAllowed):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrRestaurantNotFound),
		errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrUnknownView):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrVersionConflict),
		errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrOrderClosed),
		errors.Is(err, service.ErrInvalidTransition):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrMenuItemUnavailable),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrCartNotBound):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrQRGeneration):
		hlog.FromRequest(r).Error().Err(err).Msg("QR generation failed")
		writeMessage(w, http.StatusInternalServerError, "failed to generate QR code, please retry")
	case errors.Is(err, service.ErrProvisioning):
		hlog.FromRequest(r).Error().Err(err).Msg("staff provisioning failed")
		writeMessage(w, http.StatusInternalServerError, "failed to create staff member")
	default:
		hlog.FromRequest(r).Error().Err(err).Fields(varsFields(r)).Msg("request failed")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func varsFields(r *http.Request) map[string]interface{} {
	fields := map[string]interface{}{}
	for k, v := range mux.Vars(r) {
		fields[k] = v
	}
	return fields
}
