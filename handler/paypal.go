package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/forepath/obms-paymentgateway-paypal/constants"
	"github.com/forepath/obms-paymentgateway-paypal/gateway"
	"github.com/forepath/obms-paymentgateway-paypal/model"
	"github.com/forepath/obms-paymentgateway-paypal/utils"
)

// InitializePayment starts a checkout and returns the redirect directive
// for the payer. A nil directive from the gateway means the processor was
// unreachable; that is a hard failure, not something to retry here.
func InitializePayment(gw gateway.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := c.Locals("inputInitializePayment").(model.InitializePayment)

		directive := gw.Initialize(input.Amount, input.Description, input.ReturnCheckUrl, input.ReturnFailedUrl)
		if directive == nil {
			log.Printf("paypal initialize failed: processor unavailable (payment %s)", input.Description)
			return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.PROCESSOR_UNAVAILABLE, errors.New("no result from processor"))
		}

		return c.Status(fiber.StatusOK).JSON(directive)
	}
}

// ReturnPayment captures the payment when PayPal redirects the payer back.
// token and PayerID come from PayPal, payment is the correlation id the
// initialize step appended to the return URL.
func ReturnPayment(gw gateway.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("token")
		payerId := c.Query("PayerID")
		paymentId := c.Query("payment")

		if token == "" || payerId == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_CHECKOUT_PARAMS, errors.New("token and PayerID are required"))
		}

		outcome := gw.Return(token, payerId, paymentId)
		return c.Status(fiber.StatusOK).JSON(outcome)
	}
}

// PingbackPayment receives PayPal's IPN pushes. The posted body is passed
// through untouched; the gateway echoes it back to PayPal for verification
// before classifying anything.
func PingbackPayment(gw gateway.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		outcome := gw.Pingback(string(c.Body()))
		if outcome.Status == constants.STATUS_FALSE {
			log.Println("paypal pingback rejected: notification not verified")
		}
		return c.Status(fiber.StatusOK).JSON(outcome)
	}
}
