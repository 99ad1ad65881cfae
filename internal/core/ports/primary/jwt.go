package primary

import (
	"context"

	"gitlab.com/snapscape.net/internal/domain"
)

type JWTService interface {
	// GenerateTokenHMAC signs claims with the shared secret
	GenerateTokenHMAC(ctx context.Context, method string, claims map[string]interface{}) (string, error)
	// VerifyTokenHMAC checks the signature and expiry of a token
	VerifyTokenHMAC(ctx context.Context, token string, method string) (bool, error)
	// DecodeTokenPayload verifies a token and returns its claims
	DecodeTokenPayload(ctx context.Context, token string) (domain.AuthPayload, error)
	// VerifySecret compares a plain secret with a bcrypt hash
	VerifySecret(ctx context.Context, secretHash string, secret string) (bool, error)
}
