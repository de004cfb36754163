package port

//go:generate mockgen -source=payment.go -destination=mock/payment.go -package=mock
type PaymentVerifier interface {
	// Verify reports whether the gateway confirmation triple is authentic.
	// It fails closed: any malformed input yields false, never an error.
	Verify(gatewayOrderID string, gatewayPaymentID string, signature string) bool
}
