package service

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"restaurant-saas/order-svc/internal/domain"
)

const DefaultTokenTTL = 24 * time.Hour

// TokenCodec turns table identity into the opaque string carried by QR codes.
// Tokens are not signed: anyone can mint one, so they only ever identify a
// table and never authorize staff actions.
type TokenCodec struct {
	TTL time.Duration
	Now func() time.Time
}

func NewTokenCodec(ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{TTL: ttl, Now: time.Now}
}

func (c *TokenCodec) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *TokenCodec) Encode(tableID, restaurantID, tableName string) (string, error) {
	payload := domain.TokenPayload{
		TableID:      tableID,
		RestaurantID: restaurantID,
		TableName:    tableName,
		Exp:          c.now().Add(c.TTL).Unix(),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode is the only place a token is checked. Malformed input yields
// ErrInvalidToken, a past expiry ErrTokenExpired.
func (c *TokenCodec) Decode(token string) (*domain.TokenPayload, error) {
	if unescaped, err := url.PathUnescape(token); err == nil {
		token = unescaped
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	raw, err := decodeBase64(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var payload domain.TokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, ErrInvalidToken
	}
	if payload.TableID == "" || payload.RestaurantID == "" || payload.TableName == "" {
		return nil, ErrInvalidToken
	}
	if payload.Expired(c.now()) {
		return nil, ErrTokenExpired
	}
	return &payload, nil
}

// decodeBase64 accepts URL-safe and standard alphabets, padded or not.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	return base64.RawStdEncoding.DecodeString(s)
}
