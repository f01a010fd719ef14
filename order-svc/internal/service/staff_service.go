package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

const (
	tempPasswordPrefix = "temp-"
	tempPasswordLength = 8
	base36             = "0123456789abcdefghijklmnopqrstuvwxyz"
)

type StaffService struct {
	repo     StaffRepository
	auth     AuthProvider
	loginURL string
	random   io.Reader
}

func NewStaffService(repo StaffRepository, auth AuthProvider, baseURL, loginPath string) *StaffService {
	return &StaffService{
		repo:     repo,
		auth:     auth,
		loginURL: strings.TrimRight(baseURL, "/") + loginPath,
		random:   rand.Reader,
	}
}

// Provision creates the auth principal first and the profile second. When
// the profile insert fails the principal is deleted again so no login
// exists without a role.
func (s *StaffService) Provision(ctx context.Context, req domain.StaffRequest) (*domain.ProvisionedStaff, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := domain.ValidateStaff(req); err != nil {
		return nil, err
	}

	password, err := s.tempPassword()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvisioning, err)
	}

	authUserID, err := s.auth.CreateUser(ctx, req.Email, password, map[string]string{
		"name":          req.Name,
		"role":          string(req.Role),
		"restaurant_id": req.RestaurantID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create auth user: %v", ErrProvisioning, err)
	}

	user := domain.User{
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
		RestaurantID: req.RestaurantID,
		AuthUserID:   authUserID,
	}
	if err := s.repo.CreateUserProfile(ctx, &user); err != nil {
		if delErr := s.auth.DeleteUser(ctx, authUserID); delErr != nil {
			log.Error().Err(delErr).Str("auth_user_id", authUserID).Msg("failed to roll back auth user")
		}
		return nil, fmt.Errorf("%w: create profile: %v", ErrProvisioning, err)
	}

	return &domain.ProvisionedStaff{User: user, TempPassword: password, LoginURL: s.loginURL}, nil
}

func (s *StaffService) List(ctx context.Context, restaurantID string) ([]domain.User, error) {
	return s.repo.ListStaff(ctx, restaurantID)
}

func (s *StaffService) tempPassword() (string, error) {
	max := big.NewInt(int64(len(base36)))
	var b strings.Builder
	b.WriteString(tempPasswordPrefix)
	for i := 0; i < tempPasswordLength; i++ {
		n, err := rand.Int(s.random, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(base36[n.Int64()])
	}
	return b.String(), nil
}

var _ StaffServiceInterface = (*StaffService)(nil)
