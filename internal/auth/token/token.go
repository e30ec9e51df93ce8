package token

import (
	"errors"
	"time"

	autherrors "go-leave-approval/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity the approval service needs from an access token.
// ApproverRole is an optional office name (e.g. HR_OFFICER) granted on top of
// what the staff member's position implies.
type Claims struct {
	UserID         string `json:"user_id"`
	StaffID        string `json:"staff_id"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role,omitempty"`
	ApproverRole   string `json:"approver_role,omitempty"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *Manager) Issue(c Claims) (string, error) {
	now := m.now()
	c.IssuedAt = jwt.NewNumericDate(now)
	if m.ttl != 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}
	if c.Subject == "" {
		c.Subject = c.UserID
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

// Parse verifies an HMAC-signed token and requires user, staff and
// organization claims.
func (m *Manager) Parse(raw string) (*Claims, error) {
	var c Claims
	tok, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !tok.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	if c.UserID == "" || c.StaffID == "" || c.OrganizationID == "" {
		return nil, autherrors.ErrMissingClaim
	}
	return &c, nil
}
