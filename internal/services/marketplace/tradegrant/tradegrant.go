// Package tradegrant verifies signed trade grants. A trade grant is a
// short-lived EdDSA JWT minted off-process that authorizes a wallet to
// perform mutating marketplace operations. Verification is opt-in: when the
// grant environment is absent the marketplace runs open, which suits local
// development and tests.
package tradegrant

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/flypxyz/marketplace/internal/platform/errors"
)

// Environment variable names for trade grant verification.
const (
	EnvTradeGrantIssuer    = "FLYP_MARKETPLACE_TRADE_GRANT_ISSUER"
	EnvTradeGrantAudience  = "FLYP_MARKETPLACE_TRADE_GRANT_AUDIENCE"
	EnvTradeGrantPublicKey = "FLYP_MARKETPLACE_TRADE_GRANT_PUBLIC_KEY"
)

// grantEnv holds raw env values before post-parse validation.
type grantEnv struct {
	Issuer    string `env:"FLYP_MARKETPLACE_TRADE_GRANT_ISSUER"`
	Audience  string `env:"FLYP_MARKETPLACE_TRADE_GRANT_AUDIENCE"`
	PublicKey string `env:"FLYP_MARKETPLACE_TRADE_GRANT_PUBLIC_KEY"`
}

// Config defines how trade grants are verified.
type Config struct {
	Issuer   string
	Audience string
	Key      ed25519.PublicKey
	Now      func() time.Time
}

// Claims captures validated trade grant claims.
type Claims struct {
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
	NotBefore time.Time
	IssuedAt  time.Time
	JWTID     string
	Wallet    string
}

// grantClaims is the internal claims type used for JWT parsing.
type grantClaims struct {
	jwt.RegisteredClaims
	Wallet string `json:"wallet"`
}

// LoadConfigFromEnv reads trade grant verification configuration. It returns
// a zero Config with no error when none of the grant variables are set.
func LoadConfigFromEnv(now func() time.Time) (Config, error) {
	var raw grantEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse trade grant env: %w", err)
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	publicKey := strings.TrimSpace(raw.PublicKey)
	if issuer == "" && audience == "" && publicKey == "" {
		return Config{}, nil
	}
	if issuer == "" {
		return Config{}, fmt.Errorf("FLYP_MARKETPLACE_TRADE_GRANT_ISSUER is required")
	}
	if audience == "" {
		return Config{}, fmt.Errorf("FLYP_MARKETPLACE_TRADE_GRANT_AUDIENCE is required")
	}
	if publicKey == "" {
		return Config{}, fmt.Errorf("FLYP_MARKETPLACE_TRADE_GRANT_PUBLIC_KEY is required")
	}
	keyBytes, err := decodeBase64(publicKey)
	if err != nil {
		return Config{}, fmt.Errorf("decode trade grant public key: %w", err)
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return Config{}, fmt.Errorf("trade grant public key must be %d bytes", ed25519.PublicKeySize)
	}
	if now == nil {
		now = time.Now
	}
	return Config{
		Issuer:   issuer,
		Audience: audience,
		Key:      ed25519.PublicKey(keyBytes),
		Now:      now,
	}, nil
}

// Enabled reports whether grant verification is configured.
func (c Config) Enabled() bool {
	return len(c.Key) == ed25519.PublicKeySize
}

// Validate verifies a trade grant token and checks that it was issued to the
// given wallet.
func Validate(grant, wallet string, cfg Config) (Claims, error) {
	grant = strings.TrimSpace(grant)
	if grant == "" {
		return Claims{}, apperrors.New(apperrors.CodeTradeGrantInvalid, "trade grant is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Issuer == "" || cfg.Audience == "" || !cfg.Enabled() {
		return Claims{}, errors.New("trade grant verifier is not configured")
	}

	var parsed grantClaims
	_, err := jwt.ParseWithClaims(grant, &parsed, func(token *jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	if parsed.Issuer == "" || parsed.Issuer != cfg.Issuer {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeTradeGrantMismatch,
			"trade grant issuer mismatch",
			map[string]string{"field": "issuer"},
		)
	}
	if !audienceContains(parsed.Audience, cfg.Audience) {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeTradeGrantMismatch,
			"trade grant audience mismatch",
			map[string]string{"field": "audience"},
		)
	}

	if parsed.ID == "" {
		return Claims{}, apperrors.New(apperrors.CodeTradeGrantInvalid, "trade grant jti is required")
	}
	if parsed.ExpiresAt == nil {
		return Claims{}, apperrors.New(apperrors.CodeTradeGrantInvalid, "trade grant exp is required")
	}

	now := cfg.Now().UTC()
	exp := parsed.ExpiresAt.Time.UTC()
	if !exp.After(now) {
		return Claims{}, apperrors.New(apperrors.CodeTradeGrantExpired, "trade grant is expired")
	}
	if parsed.NotBefore != nil {
		nbf := parsed.NotBefore.Time.UTC()
		if now.Before(nbf) {
			return Claims{}, apperrors.New(apperrors.CodeTradeGrantInvalid, "trade grant not active yet")
		}
	}

	if strings.TrimSpace(parsed.Wallet) == "" || parsed.Wallet != wallet {
		return Claims{}, apperrors.WithMetadata(
			apperrors.CodeTradeGrantMismatch,
			"trade grant wallet mismatch",
			map[string]string{"field": "wallet"},
		)
	}

	claims := Claims{
		Issuer:    parsed.Issuer,
		Audience:  []string(parsed.Audience),
		ExpiresAt: exp,
		JWTID:     parsed.ID,
		Wallet:    parsed.Wallet,
	}
	if parsed.NotBefore != nil {
		claims.NotBefore = parsed.NotBefore.Time.UTC()
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

// mapJWTError translates jwt library errors to application errors.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrEd25519Verification) {
		return apperrors.New(apperrors.CodeTradeGrantInvalid, "trade grant signature is invalid")
	}
	if errors.Is(err, jwt.ErrTokenUnverifiable) {
		return apperrors.New(apperrors.CodeTradeGrantInvalid, "trade grant alg is invalid")
	}
	return apperrors.New(apperrors.CodeTradeGrantInvalid, "trade grant is invalid")
}

// audienceContains reports whether the audience list contains the given value.
func audienceContains(aud jwt.ClaimStrings, value string) bool {
	for _, item := range aud {
		if item == value {
			return true
		}
	}
	return false
}

func decodeBase64(value string) ([]byte, error) {
	if value == "" {
		return nil, errors.New("empty base64 value")
	}
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
