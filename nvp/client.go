package nvp

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/forepath/obms-paymentgateway-paypal/model"
)

// Version is the NVP protocol version sent on every merchant request.
const Version = "52.0"

const (
	merchantPath = "/nvp"

	sandboxHost    = "api-3t.sandbox.paypal.com"
	liveHost       = "api-3t.paypal.com"
	sandboxGateway = "https://www.sandbox.paypal.com/cgi-bin/webscr?"
	liveGateway    = "https://www.paypal.com/cgi-bin/webscr?"
)

// ErrUnavailable means the processor could not be reached or answered with
// an error status. It says nothing about protocol-level success; that lives
// in the ACK field of a parsed response.
var ErrUnavailable = errors.New("paypal: no result from processor")

// MerchantClient talks to PayPal's merchant NVP API. The environment fully
// determines the API host and the checkout gateway URL.
type MerchantClient struct {
	host      string
	gate      string
	endpoint  string
	config    model.GatewayConfig
	transport Transport
}

func NewMerchantClient(config model.GatewayConfig, transport Transport) (*MerchantClient, error) {
	client := &MerchantClient{
		endpoint:  merchantPath,
		config:    config,
		transport: transport,
	}

	switch config.Environment {
	case model.EnvTest:
		client.gate = sandboxGateway
		client.host = sandboxHost
	case model.EnvLive:
		client.gate = liveGateway
		client.host = liveHost
	default:
		return nil, fmt.Errorf("paypal: unknown environment %q", config.Environment)
	}

	return client, nil
}

// Gateway returns the base URL of the hosted checkout panel.
func (m *MerchantClient) Gateway() string {
	return m.gate
}

// BuildQuery merges caller fields with the API credentials and protocol
// version. Credentials are applied last so caller fields can never override
// them.
func (m *MerchantClient) BuildQuery(fields map[string]string) string {
	values := url.Values{}
	for key, value := range fields {
		values.Set(key, value)
	}
	values.Set("USER", m.config.Username)
	values.Set("PWD", m.config.PublicKey)
	values.Set("SIGNATURE", m.config.PrivateKey)
	values.Set("VERSION", Version)

	return values.Encode()
}

// Send posts an encoded query to the merchant API. A status below 400 only
// means the processor was reachable.
func (m *MerchantClient) Send(query string) (string, error) {
	status, body, err := m.transport.Post(m.host, m.endpoint, query)
	if err != nil || status >= 400 {
		return "", ErrUnavailable
	}
	return body, nil
}

// Call performs one signed merchant request and parses the reply.
func (m *MerchantClient) Call(fields map[string]string) (*Response, error) {
	body, err := m.Send(m.BuildQuery(fields))
	if err != nil {
		return nil, err
	}
	return ParseResponse(body), nil
}

// GetCheckoutDetails fetches the checkout state PayPal holds for a token
// issued by SetExpressCheckout.
func (m *MerchantClient) GetCheckoutDetails(token string) (*Response, error) {
	return m.Call(map[string]string{
		"TOKEN":  token,
		"METHOD": "GetExpressCheckoutDetails",
	})
}
