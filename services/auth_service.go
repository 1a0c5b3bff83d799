package services

import (
	"fmt"

	"predict-lab/auth"
	"predict-lab/errors"
)

type IAuthService interface {
	IssueToken(apiKey, subject string) (Token, error)
}

// AuthService exchanges a valid operator API key for a signed token.
type AuthService struct {
	issuer     auth.TokenIssuer
	apiKeyHash string
}

type Token string

func NewAuthService(issuer auth.TokenIssuer, apiKeyHash string) IAuthService {
	return &AuthService{issuer: issuer, apiKeyHash: apiKeyHash}
}

func (s *AuthService) IssueToken(apiKey, subject string) (Token, error) {
	// The comparison runs Argon2 over the candidate key; a malformed
	// stored hash and a wrong key answer the same way.
	match, err := auth.CompareAPIKey(apiKey, s.apiKeyHash)
	if err != nil || !match {
		return "", errors.ErrInvalidAPIKey
	}

	token, err := s.issuer.GenerateToken(subject, []string{"operator"})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return Token(token), nil
}
