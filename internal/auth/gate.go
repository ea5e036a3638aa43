package auth

import (
	"context"
	"fmt"
	"log"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
)

// TokenVerifier is the slice of the Firebase Auth client the gate needs.
// *fbauth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// Gate authorizes exactly one admin identity. Any other account that
// presents a valid token is signed back out (refresh tokens revoked) and
// rejected.
type Gate struct {
	verifier   TokenVerifier
	adminEmail string
}

func NewGate(verifier TokenVerifier, adminEmail string) *Gate {
	return &Gate{verifier: verifier, adminEmail: adminEmail}
}

// Authorize verifies the ID token and applies the allow-list check.
// Outcomes are exactly two: an authorized identity, or an error. Email
// comparison is case-sensitive and exact.
func (g *Gate) Authorize(ctx context.Context, idToken string) (*domain.Identity, error) {
	token, err := g.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	email, _ := token.Claims["email"].(string)
	if email != g.adminEmail {
		// Revoke before rejecting so the mismatched account is signed
		// out everywhere, not left holding a live session.
		if rerr := g.verifier.RevokeRefreshTokens(ctx, token.UID); rerr != nil {
			log.Printf("auth: failed to revoke tokens for uid=%s: %v", token.UID, rerr)
		}
		return nil, domain.ErrAccessDenied
	}

	return &domain.Identity{UID: token.UID, Email: email}, nil
}
