package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ClientPaymentPayload - каноническая строка для подписи подтверждения оплаты от клиента
func ClientPaymentPayload(orderID, paymentID string) []byte {
	return []byte(orderID + "|" + paymentID)
}

// Sign - hex(HMAC-SHA256(payload, secret))
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature - проверка подписи за постоянное время.
// Одинаково применяется к подтверждению клиента и к телу вебхука
func VerifySignature(payload []byte, signature string, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected, err := hex.DecodeString(Sign(payload, secret))
	if err != nil {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, got)
}
