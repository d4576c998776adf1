// Package processor mints LiveKit room access tokens for web calls.
package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"voice-server/internal/observability"
)

// ErrSigningFailed indicates the access token could not be signed.
var ErrSigningFailed = errors.New("failed to sign access token")

// VideoGrant is the LiveKit room permission claim.
type VideoGrant struct {
	Room           string `json:"room"`
	RoomJoin       bool   `json:"roomJoin"`
	CanPublish     bool   `json:"canPublish"`
	CanSubscribe   bool   `json:"canSubscribe"`
	CanPublishData bool   `json:"canPublishData"`
}

type accessClaims struct {
	jwt.RegisteredClaims
	Video VideoGrant `json:"video"`
}

// RoomToken is a signed access token bound to one room and identity.
type RoomToken struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
	RoomName string `json:"room_name"`
}

// TokenProcessor signs LiveKit access tokens with the project's API
// key pair.
type TokenProcessor struct {
	apiKey    string
	apiSecret string
	ttl       time.Duration
	logger    *observability.Logger
	now       func() time.Time
}

// NewTokenProcessor creates a TokenProcessor.
func NewTokenProcessor(apiKey, apiSecret string, ttl time.Duration, logger *observability.Logger) TokenProcessor {
	return TokenProcessor{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
	}
}

// GenerateRoomToken mints a token for a web participant joining the
// agent at the given phone number. Each call produces a fresh room so
// concurrent web sessions never share one.
func (p TokenProcessor) GenerateRoomToken(ctx context.Context, phone, participantID string) (RoomToken, error) {
	identity := fmt.Sprintf("web_%s", participantID)
	roomName := fmt.Sprintf("%s_id_%s", phone, uuid.New())

	now := p.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.apiKey,
			Subject:   identity,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
		Video: VideoGrant{
			Room:           roomName,
			RoomJoin:       true,
			CanPublish:     true,
			CanSubscribe:   true,
			CanPublishData: true,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.apiSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign room access token", err)
		return RoomToken{}, ErrSigningFailed
	}

	return RoomToken{
		Token:    signed,
		Identity: identity,
		RoomName: roomName,
	}, nil
}
