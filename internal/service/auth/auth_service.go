package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"designlab/internal/domain"
	"designlab/internal/service"
	"designlab/pkg/errors"
	"designlab/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is stamped into every owner token
const Issuer = "designlab"

// ChannelClaims are the JWT claims of an owner token
type ChannelClaims struct {
	ChannelID string `json:"channel_id"`
	jwt.RegisteredClaims
}

// Service implements the AuthService interface with HS256 tokens
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *logger.Logger
}

// NewService creates a new auth service; ttl <= 0 issues tokens without expiry
func NewService(secret string, ttl time.Duration, logger *logger.Logger) service.AuthService {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// IssueOwnerToken signs a token granting upload rights on channelID
func (s *Service) IssueOwnerToken(ctx context.Context, channelID string) (string, error) {
	if strings.TrimSpace(channelID) == "" {
		return "", errors.NewValidationError("Channel ID is required", nil)
	}
	if len(s.secret) == 0 {
		return "", errors.NewInternalError("Owner tokens are not configured", nil)
	}

	now := s.now()
	claims := ChannelClaims{
		ChannelID: channelID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   Issuer,
			Subject:  channelID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign owner token")
		return "", errors.NewInternalError("Failed to issue owner token", err)
	}

	s.logger.WithField("channel_id", channelID).Debug("Issued owner token")
	return signed, nil
}

// ValidateOwnerToken parses and verifies an owner token
func (s *Service) ValidateOwnerToken(ctx context.Context, tokenString string) (*domain.OwnerClaims, error) {
	if len(s.secret) == 0 {
		return nil, errors.NewAuthenticationError("Invalid owner token")
	}

	claims := &ChannelClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify the signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		s.logger.WithError(err).Debug("Failed to parse/validate owner token")
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewAuthenticationError("Token has expired")
		}
		return nil, errors.NewAuthenticationError("Invalid owner token")
	}

	if !token.Valid || claims.ChannelID == "" {
		return nil, errors.NewAuthenticationError("Invalid owner token")
	}

	owner := &domain.OwnerClaims{
		ChannelID: claims.ChannelID,
		Issuer:    claims.Issuer,
	}
	if claims.IssuedAt != nil {
		owner.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		owner.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return owner, nil
}
