package tradegrant

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigFromEnvUnsetDisablesVerification(t *testing.T) {
	t.Setenv(EnvTradeGrantIssuer, "")
	t.Setenv(EnvTradeGrantAudience, "")
	t.Setenv(EnvTradeGrantPublicKey, "")

	cfg, err := LoadConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("load trade grant config: %v", err)
	}
	if cfg.Enabled() {
		t.Fatal("expected verification disabled when env is unset")
	}
}

func TestLoadConfigFromEnvPartialIsAnError(t *testing.T) {
	t.Setenv(EnvTradeGrantIssuer, "issuer")
	t.Setenv(EnvTradeGrantAudience, "")
	t.Setenv(EnvTradeGrantPublicKey, "")

	if _, err := LoadConfigFromEnv(nil); err == nil {
		t.Fatal("expected error when only the issuer is set")
	}
}

func TestLoadConfigFromEnvComplete(t *testing.T) {
	pubKey, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	t.Setenv(EnvTradeGrantIssuer, "issuer")
	t.Setenv(EnvTradeGrantAudience, "audience")
	t.Setenv(EnvTradeGrantPublicKey, base64.RawStdEncoding.EncodeToString(pubKey))

	cfg, err := LoadConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("load trade grant config: %v", err)
	}
	if cfg.Issuer != "issuer" || cfg.Audience != "audience" {
		t.Fatal("expected issuer and audience to be loaded")
	}
	if !cfg.Enabled() {
		t.Fatal("expected verification enabled")
	}
}

func TestValidateSuccess(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	grant := signTradeGrant(t, priv, map[string]any{
		"alg": "EdDSA",
		"typ": "JWT",
	}, map[string]any{
		"iss":    "issuer",
		"aud":    []string{"marketplace", "secondary"},
		"exp":    now.Add(2 * time.Hour).Unix(),
		"iat":    now.Add(-time.Minute).Unix(),
		"jti":    "jti-1",
		"wallet": "wallet-1",
	})

	cfg := Config{Issuer: "issuer", Audience: "marketplace", Key: pub, Now: func() time.Time { return now }}
	claims, err := Validate(grant, "wallet-1", cfg)
	if err != nil {
		t.Fatalf("validate trade grant: %v", err)
	}
	if claims.Wallet != "wallet-1" {
		t.Fatalf("wallet = %q, want wallet-1", claims.Wallet)
	}
	if !claims.ExpiresAt.Equal(time.Unix(now.Add(2*time.Hour).Unix(), 0).UTC()) {
		t.Fatal("expected expires at to match exp")
	}
}

func TestValidateExpired(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	grant := signTradeGrant(t, priv, map[string]any{"alg": "EdDSA"}, map[string]any{
		"iss":    "issuer",
		"aud":    "marketplace",
		"exp":    now.Add(-time.Minute).Unix(),
		"jti":    "jti-1",
		"wallet": "wallet-1",
	})

	cfg := Config{Issuer: "issuer", Audience: "marketplace", Key: pub, Now: func() time.Time { return now }}
	_, err = Validate(grant, "wallet-1", cfg)
	if err == nil || !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expired error, got %v", err)
	}
}

func TestValidateWalletMismatch(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	grant := signTradeGrant(t, priv, map[string]any{"alg": "EdDSA"}, map[string]any{
		"iss":    "issuer",
		"aud":    "marketplace",
		"exp":    now.Add(time.Hour).Unix(),
		"jti":    "jti-1",
		"wallet": "wallet-2",
	})

	cfg := Config{Issuer: "issuer", Audience: "marketplace", Key: pub, Now: func() time.Time { return now }}
	_, err = Validate(grant, "wallet-1", cfg)
	if err == nil || !strings.Contains(err.Error(), "wallet mismatch") {
		t.Fatalf("expected wallet mismatch error, got %v", err)
	}
}

func TestValidateInvalidSignature(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	cfg := Config{Issuer: "issuer", Audience: "marketplace", Key: pub, Now: time.Now}
	_, err = Validate("invalid.token.parts", "wallet-1", cfg)
	if err == nil {
		t.Fatal("expected error for invalid trade grant")
	}
}

func signTradeGrant(t *testing.T, privateKey ed25519.PrivateKey, header, payload map[string]any) string {
	t.Helper()

	headerJSON, err := json.Marshal(header)
	if err != nil {
		t.Fatalf("marshal header: %v", err)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	encodedHeader := base64.RawURLEncoding.EncodeToString(headerJSON)
	encodedPayload := base64.RawURLEncoding.EncodeToString(payloadJSON)
	signingInput := encodedHeader + "." + encodedPayload
	signature := ed25519.Sign(privateKey, []byte(signingInput))
	encodedSig := base64.RawURLEncoding.EncodeToString(signature)
	return signingInput + "." + encodedSig
}
