package gateway

import "github.com/forepath/obms-paymentgateway-paypal/model"

// Gateway is the capability contract a payment method exposes to the host:
// descriptive metadata plus the three lifecycle entry points. Initialize
// starts a payment and hands back a redirect target, Return captures it
// when the payer comes back, Pingback handles the processor's asynchronous
// notifications. Pingback takes the raw posted body because verification
// echoes it back to the processor unchanged.
type Gateway interface {
	Parameters() map[string]string
	TechnicalName() string
	Name() string
	Status() bool
	Initialize(amount, description, returnCheckUrl, returnFailedUrl string) *model.RedirectDirective
	Return(token, payerId, paymentId string) model.PaymentOutcome
	Pingback(body string) model.PaymentOutcome
}
