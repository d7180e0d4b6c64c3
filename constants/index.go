package constants

// Envelope status reported to the host for every gateway operation.
const (
	STATUS_SUCCESS = "success"
	STATUS_FALSE   = "false"
)

// Payment statuses the host understands.
const (
	PAYMENT_SUCCESS = "success"
	PAYMENT_FAILED  = "failed"
	PAYMENT_WAITING = "waiting"
	PAYMENT_REVOKED = "revoked"
)

// Error messages
const (
	AMOUNT_IS_NOT_NUMBER    = "Amount must be a decimal number"
	MISSING_CHECKOUT_PARAMS = "Missing token or PayerID"
	PROCESSOR_UNAVAILABLE   = "Payment processor did not respond"
)
