package auth

import (
	"context"
	"errors"

	"restaurant-saas/order-svc/internal/domain"
)

type Identity interface {
	CurrentUser(ctx context.Context, accessToken string) (*User, error)
}

type ProfileStore interface {
	GetUserProfile(ctx context.Context, authUserID string) (*domain.User, error)
	GetOwnedRestaurant(ctx context.Context, ownerID string) (*domain.Restaurant, error)
}

// Resolver maps an access token to the caller's role and restaurant. Staff
// get theirs from their profile; a user without a profile who registered a
// restaurant is its owner. Anyone else resolves with an empty role.
type Resolver struct {
	identity Identity
	profiles ProfileStore
}

func NewResolver(identity Identity, profiles ProfileStore) *Resolver {
	return &Resolver{identity: identity, profiles: profiles}
}

func (r *Resolver) Resolve(ctx context.Context, accessToken string) (*domain.Principal, error) {
	if accessToken == "" {
		return nil, ErrUnauthenticated
	}
	user, err := r.identity.CurrentUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	principal := &domain.Principal{AuthUserID: user.ID, Email: user.Email}

	profile, err := r.profiles.GetUserProfile(ctx, user.ID)
	switch {
	case err == nil:
		principal.Role = profile.Role
		principal.RestaurantID = profile.RestaurantID
		return principal, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	rest, err := r.profiles.GetOwnedRestaurant(ctx, user.ID)
	switch {
	case err == nil:
		principal.Role = domain.RoleOwner
		principal.RestaurantID = rest.ID
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}
	return principal, nil
}
