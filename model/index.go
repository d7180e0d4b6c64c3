package model

// Environment selects PayPal's sandbox or production endpoints.
type Environment string

const (
	EnvTest Environment = "test"
	EnvLive Environment = "live"
)

// GatewayConfig holds the merchant API credentials. The public key is sent
// as the NVP password and the private key as the request signature.
type GatewayConfig struct {
	Environment Environment
	Username    string
	PublicKey   string
	PrivateKey  string
}

type InitializePayment struct {
	Amount          string `json:"amount" validate:"required"`
	Description     string `json:"description" validate:"required"`
	ReturnCheckUrl  string `json:"returnCheckUrl" validate:"required,url"`
	ReturnFailedUrl string `json:"returnFailedUrl" validate:"required,url"`
}

// PaymentOutcome is the uniform envelope every gateway operation returns to
// the host. An unverified pingback carries status "false" and nil fields so
// it can never be recorded as a real payment state change.
type PaymentOutcome struct {
	Status        string  `json:"status"`
	PaymentId     *string `json:"payment_id"`
	PaymentStatus *string `json:"payment_status"`
}

// RedirectDirective tells the host where to send the payer next: the PayPal
// checkout panel on success, the caller's failure URL on rejection.
type RedirectDirective struct {
	PaymentOutcome
	Redirect string `json:"redirect"`
}
