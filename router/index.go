package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/forepath/obms-paymentgateway-paypal/gateway"
	"github.com/forepath/obms-paymentgateway-paypal/handler"
	"github.com/forepath/obms-paymentgateway-paypal/middleware"
	"github.com/forepath/obms-paymentgateway-paypal/validate"
)

func SetupRoutes(app *fiber.App, gw gateway.Gateway) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	paypal := v1.Group("/paypal", logger.New())
	// initialize is called by the host, return by the payer's browser and
	// pingback by PayPal itself; only the first one carries host auth.
	paypal.Post("/initialize", middleware.Protected(), validate.InitializePayment(), handler.InitializePayment(gw))
	paypal.Get("/return", handler.ReturnPayment(gw))
	paypal.Post("/pingback", handler.PingbackPayment(gw))
}
