package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"restaurant-saas/order-svc/internal/auth"
	"restaurant-saas/order-svc/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
)

type PrincipalResolver interface {
	Resolve(ctx context.Context, accessToken string) (*domain.Principal, error)
}

type principalKey struct{}

func withPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFrom(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalKey{}).(*domain.Principal)
	return p
}

// accessToken reads the bearer token. EventSource cannot set headers, so
// streams may pass it as access_token instead.
func accessToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return r.URL.Query().Get("access_token")
}

func (h *Handler) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.LoginPath, http.StatusFound)
}

func (h *Handler) authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := h.Auth.Resolve(r.Context(), accessToken(r))
		if err != nil {
			if !errors.Is(err, auth.ErrUnauthenticated) {
				hlog.FromRequest(r).Warn().Err(err).Msg("principal resolution failed")
			}
			h.redirectToLogin(w, r)
			return
		}
		next(w, r.WithContext(withPrincipal(r.Context(), principal)))
	}
}

// requireRoles is the access gate. It runs on every request: the caller's
// role must pass domain.CanAccess and the restaurant in the path must be the
// caller's own.
func (h *Handler) requireRoles(next http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.allowed(r, roles) {
			h.redirectToLogin(w, r)
			return
		}
		next(w, r)
	}
}

// requireView gates a kitchen, bar or wait view on the roles that view needs.
func (h *Handler) requireView(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := domain.View(mux.Vars(r)["view"])
		if !view.Valid() {
			writeMessage(w, http.StatusNotFound, "unknown view")
			return
		}
		if !h.allowed(r, view.Roles()) {
			h.redirectToLogin(w, r)
			return
		}
		next(w, r)
	}
}

func (h *Handler) allowed(r *http.Request, roles []domain.Role) bool {
	p := principalFrom(r.Context())
	if p == nil || !domain.CanAccess(p.Role, roles...) {
		return false
	}
	if restaurantID, ok := mux.Vars(r)["restaurantId"]; ok && !p.InScope(restaurantID) {
		return false
	}
	return true
}
