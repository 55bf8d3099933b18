// Command jwks-to-pem prints the Supabase ES256 signing key as a PEM public
// key suitable for SUPABASE_JWT_SECRET.
package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"flag"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"time"
)

type jwks struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
	Alg string `json:"alg"`
}

func main() {
	url := flag.String("url", "http://127.0.0.1:54321/auth/v1/.well-known/jwks.json", "JWKS endpoint of the Supabase project")
	kid := flag.String("kid", "", "key id to export; defaults to the first ES256 key")
	flag.Parse()

	pemBytes, err := run(*url, *kid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(pemBytes))
}

func run(url, kid string) ([]byte, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching JWKS: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching JWKS: unexpected status %s", resp.Status)
	}

	var set jwks
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing JWKS: %w", err)
	}

	key, err := pick(set.Keys, kid)
	if err != nil {
		return nil, err
	}
	return toPEM(key)
}

func pick(keys []jwk, kid string) (jwk, error) {
	for _, k := range keys {
		if k.Kty != "EC" || k.Alg != "ES256" {
			continue
		}
		if kid == "" || k.Kid == kid {
			return k, nil
		}
	}
	if kid != "" {
		return jwk{}, fmt.Errorf("no ES256 key with kid %q", kid)
	}
	return jwk{}, fmt.Errorf("no ES256 key among %d keys", len(keys))
}

func toPEM(key jwk) ([]byte, error) {
	x, err := base64.RawURLEncoding.DecodeString(key.X)
	if err != nil {
		return nil, fmt.Errorf("decoding X coordinate: %w", err)
	}
	y, err := base64.RawURLEncoding.DecodeString(key.Y)
	if err != nil {
		return nil, fmt.Errorf("decoding Y coordinate: %w", err)
	}

	pub := &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(x),
		Y:     new(big.Int).SetBytes(y),
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("marshaling public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}
