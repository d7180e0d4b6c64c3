package nvp

import (
	"github.com/forepath/obms-paymentgateway-paypal/model"
)

const (
	ipnSandboxHost = "www.sandbox.paypal.com"
	ipnLiveHost    = "www.paypal.com"
	ipnPath        = "/cgi-bin/webscr"

	verifiedBody = "VERIFIED"
)

// IPNClient verifies asynchronous payment notifications. IPN messages are
// unauthenticated, so the only proof of origin is echoing the received
// message back to PayPal and checking for its VERIFIED acknowledgement.
type IPNClient struct {
	host      string
	transport Transport
}

func NewIPNClient(environment model.Environment, transport Transport) *IPNClient {
	host := ipnLiveHost
	if environment == model.EnvTest {
		host = ipnSandboxHost
	}
	return &IPNClient{host: host, transport: transport}
}

// Verify echoes the received body byte for byte, prefixed with the
// _notify-validate marker. PayPal compares the echo against the original
// notification, so the body must not be reparsed or reordered. Anything
// but a literal VERIFIED reply means the notification cannot be trusted.
func (i *IPNClient) Verify(body string) (bool, error) {
	echo := "cmd=_notify-validate"
	if body != "" {
		echo += "&" + body
	}

	status, reply, err := i.transport.Post(i.host, ipnPath, echo)
	if err != nil || status >= 400 {
		return false, ErrUnavailable
	}
	return reply == verifiedBody, nil
}
