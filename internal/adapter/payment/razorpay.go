package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/shopmart/backend/internal/adapter/config"
)

// SignatureVerifier checks Razorpay payment confirmations. Razorpay signs
// `<orderID>|<paymentID>` with HMAC-SHA256 under the key secret. The secret
// stays on the server: a length check done in the browser with a public key
// proves nothing, so this is the authoritative verification.
type SignatureVerifier struct {
	keySecret string
}

func NewSignatureVerifier(conf *config.Payment) *SignatureVerifier {
	return &SignatureVerifier{keySecret: conf.KeySecret}
}

// Verify fails closed: malformed input yields false, never an error.
func (v *SignatureVerifier) Verify(gatewayOrderID string, gatewayPaymentID string, signature string) bool {
	if gatewayOrderID == "" || gatewayPaymentID == "" || signature == "" {
		return false
	}
	provided, err := hex.DecodeString(signature)
	if err != nil || len(provided) != sha256.Size {
		return false
	}

	mac := hmac.New(sha256.New, []byte(v.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))

	return hmac.Equal(provided, mac.Sum(nil))
}
