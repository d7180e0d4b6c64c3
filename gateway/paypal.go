package gateway

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/forepath/obms-paymentgateway-paypal/constants"
	"github.com/forepath/obms-paymentgateway-paypal/model"
	"github.com/forepath/obms-paymentgateway-paypal/nvp"
	"github.com/forepath/obms-paymentgateway-paypal/utils"
)

// PayPal drives the Express Checkout protocol: SetExpressCheckout to get a
// token, a hosted redirect, then GetExpressCheckoutDetails and
// DoExpressCheckoutPayment when the payer returns. No state is kept between
// calls; everything needed to resume rides in the CUSTOM field.
type PayPal struct {
	config   model.GatewayConfig
	merchant *nvp.MerchantClient
	ipn      *nvp.IPNClient
}

var _ Gateway = (*PayPal)(nil)

func NewPayPal(config model.GatewayConfig, transport nvp.Transport) (*PayPal, error) {
	merchant, err := nvp.NewMerchantClient(config, transport)
	if err != nil {
		return nil, err
	}
	return &PayPal{
		config:   config,
		merchant: merchant,
		ipn:      nvp.NewIPNClient(config.Environment, transport),
	}, nil
}

// Parameters lists the settings the host has to collect to authenticate
// against the merchant API.
func (p *PayPal) Parameters() map[string]string {
	return map[string]string{
		"username":   "Username",
		"publickey":  "Public key",
		"privatekey": "Private key",
		"api_type":   "API type",
	}
}

func (p *PayPal) TechnicalName() string {
	return "paypal"
}

func (p *PayPal) Name() string {
	return "PayPal"
}

func (p *PayPal) Status() bool {
	return true
}

// Initialize starts a new payment. It mints a merchant transaction id,
// registers the checkout with PayPal and returns where to send the payer.
// A nil return means the processor was unreachable.
func (p *PayPal) Initialize(amount, description, returnCheckUrl, returnFailedUrl string) *model.RedirectDirective {
	mtid := fmt.Sprintf("%s_%d", description, rand.Intn(9999999)+1)
	returnCheckUrl = returnCheckUrl + "?payment=" + mtid + "&amount=" + amount

	response, err := p.merchant.Call(map[string]string{
		"PAYMENTACTION": "Sale",
		"AMT":           amount,
		"RETURNURL":     returnCheckUrl,
		"CANCELURL":     returnCheckUrl,
		"DESC":          description,
		"NOSHIPPING":    "1",
		"ALLOWNOTE":     "1",
		"CURRENCYCODE":  "EUR",
		"METHOD":        "SetExpressCheckout",
		"INVNUM":        description,
		"CUSTOM":        mtid,
	})
	if err != nil {
		return nil
	}

	// A Success ACK without a token is still a rejection; no checkout
	// session exists to redirect to.
	token, hasToken := response.Get("TOKEN")
	if response.Ack() != "Success" || !hasToken {
		return &model.RedirectDirective{
			PaymentOutcome: model.PaymentOutcome{
				Status:        constants.STATUS_SUCCESS,
				PaymentId:     utils.Ptr(mtid),
				PaymentStatus: utils.Ptr(constants.PAYMENT_FAILED),
			},
			Redirect: returnFailedUrl,
		}
	}

	paymentPanel := p.merchant.Gateway() + "cmd=_express-checkout&useraction=commit&token=" + token
	return &model.RedirectDirective{
		PaymentOutcome: model.PaymentOutcome{
			Status:        constants.STATUS_SUCCESS,
			PaymentId:     utils.Ptr(mtid),
			PaymentStatus: utils.Ptr(constants.PAYMENT_WAITING),
		},
		Redirect: paymentPanel,
	}
}

// Return captures the payment after the payer comes back from the hosted
// checkout. The paymentId is the correlation value PayPal round-tripped on
// the return URL, not something re-derived here.
func (p *PayPal) Return(token, payerId, paymentId string) model.PaymentOutcome {
	status := constants.PAYMENT_FAILED
	if p.doPayment(token, payerId) {
		status = constants.PAYMENT_SUCCESS
	}
	return model.PaymentOutcome{
		Status:        constants.STATUS_SUCCESS,
		PaymentId:     utils.Ptr(paymentId),
		PaymentStatus: utils.Ptr(status),
	}
}

func (p *PayPal) doPayment(token, payerId string) bool {
	details, err := p.merchant.GetCheckoutDetails(token)
	if err != nil {
		return false
	}

	custom, ok := details.Get("CUSTOM")
	if !ok {
		return false
	}
	amount, currency, _, err := splitCustom(custom)
	if err != nil {
		return false
	}

	response, err := p.merchant.Call(map[string]string{
		"PAYMENTACTION": "Sale",
		"PAYERID":       payerId,
		"TOKEN":         token,
		"AMT":           amount,
		"CURRENCYCODE":  currency,
		"METHOD":        "DoExpressCheckoutPayment",
	})
	if err != nil {
		return false
	}
	return response.Ack() == "Success"
}

// splitCustom recovers the amount/currency/invoice triple smuggled through
// the opaque CUSTOM field across the redirect boundary.
func splitCustom(custom string) (amount, currency, invoice string, err error) {
	parts := strings.Split(custom, "|")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("malformed CUSTOM field %q", custom)
	}
	return parts[0], parts[1], parts[2], nil
}

// Pingback handles an unsolicited notification. The raw body is echoed to
// PayPal for verification before anything is parsed out of it, and
// verification gates classification entirely: an unverified or
// unclassifiable notification produces no payment outcome at all.
func (p *PayPal) Pingback(body string) model.PaymentOutcome {
	verified, err := p.ipn.Verify(body)
	if err != nil || !verified {
		return model.PaymentOutcome{Status: constants.STATUS_FALSE}
	}

	fields, err := url.ParseQuery(body)
	if err != nil {
		return model.PaymentOutcome{Status: constants.STATUS_FALSE}
	}

	status, ok := classifyNotification(fields.Get("payment_status"))
	if !ok {
		return model.PaymentOutcome{Status: constants.STATUS_FALSE}
	}

	// without the custom field there is nothing to correlate the outcome
	// to, so refuse to produce one
	custom, ok := fields["custom"]
	if !ok || len(custom) == 0 {
		return model.PaymentOutcome{Status: constants.STATUS_FALSE}
	}

	return model.PaymentOutcome{
		Status:        constants.STATUS_SUCCESS,
		PaymentId:     utils.Ptr(custom[0]),
		PaymentStatus: utils.Ptr(status),
	}
}

// classifyNotification maps PayPal's payment_status vocabulary onto the
// host's payment states. Matching is case-sensitive.
func classifyNotification(paymentStatus string) (string, bool) {
	switch paymentStatus {
	case "Failed", "Denied", "Expired":
		return constants.PAYMENT_FAILED, true
	case "Refunded", "Reversed", "Voided":
		return constants.PAYMENT_REVOKED, true
	case "Canceled_Reversal", "Completed", "Processed":
		return constants.PAYMENT_SUCCESS, true
	}
	return "", false
}
