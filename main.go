package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/forepath/obms-paymentgateway-paypal/gateway"
	"github.com/forepath/obms-paymentgateway-paypal/middleware"
	"github.com/forepath/obms-paymentgateway-paypal/router"
	"github.com/forepath/obms-paymentgateway-paypal/utils"
)

func main() {
	app := fiber.New()

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		MaxAge:       600,
	}))

	gw, err := gateway.NewPayPalFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	router.SetupRoutes(app, gw)
	log.Fatal(app.Listen(":" + utils.GetEnv("PORT", "8002")))
}
