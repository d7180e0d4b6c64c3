package validate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/forepath/obms-paymentgateway-paypal/constants"
	"github.com/forepath/obms-paymentgateway-paypal/model"
	"github.com/forepath/obms-paymentgateway-paypal/utils"
)

func InitializePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.InitializePayment

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		// Validate input
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if _, err := strconv.ParseFloat(input.Amount, 64); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.AMOUNT_IS_NOT_NUMBER, errors.New("amount invalid"))
		}

		// Save input to context locals
		c.Locals("inputInitializePayment", input)

		// Continue to next handler
		return c.Next()
	}
}
