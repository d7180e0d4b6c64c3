package gateway

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/forepath/obms-paymentgateway-paypal/model"
	"github.com/forepath/obms-paymentgateway-paypal/nvp"
	"github.com/forepath/obms-paymentgateway-paypal/utils"
)

// LoadConfig reads the merchant credentials from the environment.
func LoadConfig() model.GatewayConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment...")
	}
	return model.GatewayConfig{
		Environment: model.Environment(utils.GetEnv("PAYPAL_ENV", string(model.EnvTest))),
		Username:    os.Getenv("PAYPAL_USERNAME"),
		PublicKey:   os.Getenv("PAYPAL_PUBLIC_KEY"),
		PrivateKey:  os.Getenv("PAYPAL_PRIVATE_KEY"),
	}
}

// NewPayPalFromEnv builds the gateway with env credentials and the real
// HTTP transport.
func NewPayPalFromEnv() (*PayPal, error) {
	return NewPayPal(LoadConfig(), nvp.NewHTTPTransport())
}
