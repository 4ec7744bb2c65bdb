package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"
)

// SignatureVerifier validates Mercado Pago webhook signatures.
//
// Mercado Pago signs notifications with HMAC-SHA256 over the manifest
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" and sends the result in
// the x-signature header as "ts=<ts>,v1=<hex digest>".
type SignatureVerifier struct {
	secret        string
	allowUnsigned bool
}

func NewSignatureVerifierFromEnv() SignatureVerifier {
	v := SignatureVerifier{
		secret:        os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),
		allowUnsigned: isTruthyEnv("MERCADOPAGO_ALLOW_UNSIGNED_WEBHOOKS"),
	}
	if v.secret == "" && v.allowUnsigned {
		log.Printf("[payment][webhook] WARNING: no webhook secret configured and unsigned notifications are allowed; do not run this in production")
	}
	return v
}

// Verify reports whether the x-signature header matches the expected digest.
// With no secret configured it accepts everything only when unsigned
// notifications were explicitly allowed at startup.
func (v SignatureVerifier) Verify(signatureHeader, requestIDHeader, dataID string) bool {
	if v.secret == "" {
		return v.allowUnsigned
	}

	ts, v1 := parseSignatureHeader(signatureHeader)
	if ts == "" || v1 == "" {
		return false
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, requestIDHeader, ts)
	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(v1)))
}

func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	return ts, v1
}

func isTruthyEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
