package service

import (
	"context"
	"errors"
	"strings"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type TableService struct {
	repo      TableRepository
	codec     *TokenCodec
	qrEncoder QRGenerator
}

func NewTableService(repo TableRepository, codec *TokenCodec, qr QRGenerator) *TableService {
	return &TableService{repo: repo, codec: codec, qrEncoder: qr}
}

// Create stores the table and stamps it with a fresh token and QR code. A QR
// failure leaves the table without an image; GetQRCode renders it later.
func (s *TableService) Create(ctx context.Context, restaurantID, name string) (*domain.Table, error) {
	name = strings.TrimSpace(name)
	if err := domain.ValidateTableName(name); err != nil {
		return nil, err
	}
	table := &domain.Table{RestaurantID: restaurantID, Name: name, Active: true}
	if err := s.repo.CreateTable(ctx, table); err != nil {
		return nil, err
	}
	if err := s.stamp(ctx, table); err != nil && !errors.Is(err, ErrQRGeneration) {
		return nil, err
	}
	return table, nil
}

func (s *TableService) List(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	return s.repo.ListTables(ctx, restaurantID)
}

// RegenerateQRCode issues a new token with a new expiry and re-renders the code.
func (s *TableService) RegenerateQRCode(ctx context.Context, restaurantID, tableID string) (*domain.Table, error) {
	table, err := s.get(ctx, restaurantID, tableID)
	if err != nil {
		return nil, err
	}
	if err := s.stamp(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *TableService) GetQRCode(ctx context.Context, restaurantID, tableID string) ([]byte, error) {
	table, err := s.get(ctx, restaurantID, tableID)
	if err != nil {
		return nil, err
	}
	if len(table.QRCode) > 0 {
		return table.QRCode, nil
	}
	if table.Token == "" {
		if err := s.stamp(ctx, table); err != nil {
			return nil, err
		}
		return table.QRCode, nil
	}

	qr, err := s.qrEncoder.Generate(table.Token)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveTableToken(ctx, restaurantID, tableID, table.Token, qr); err != nil {
		log.Warn().Err(err).Str("table_id", tableID).Msg("failed to cache QR code")
	}
	return qr, nil
}

func (s *TableService) get(ctx context.Context, restaurantID, tableID string) (*domain.Table, error) {
	table, err := s.repo.GetTable(ctx, restaurantID, tableID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrTableNotFound
	}
	return table, err
}

func (s *TableService) stamp(ctx context.Context, table *domain.Table) error {
	token, err := s.codec.Encode(table.ID, table.RestaurantID, table.Name)
	if err != nil {
		return err
	}
	qr, qrErr := s.qrEncoder.Generate(token)
	if qrErr != nil {
		log.Warn().Err(qrErr).Str("table_id", table.ID).Msg("QR generation failed")
		qr = nil
	}
	if err := s.repo.SaveTableToken(ctx, table.RestaurantID, table.ID, token, qr); err != nil {
		return err
	}
	table.Token = token
	table.QRCode = qr
	return qrErr
}

var _ TableServiceInterface = (*TableService)(nil)
