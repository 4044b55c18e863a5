// Package webhooks verifies Crypto Pay update deliveries.
//
// Crypto Pay signs each update body with HMAC-SHA-256 keyed by the SHA-256
// digest of the app token and sends the lowercase hex result in the
// crypto-pay-api-signature header. Receiving the HTTP request is left to the
// caller.
package webhooks
