package validate

import (
	"errors"
	"strconv"

	"prephub_backend/constants"
	"prephub_backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById parses a numeric path param and stores it in Locals("inputId").
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

// Period checks the ?period= query used by the analytics endpoints and
// stores it in Locals("period"). Defaults to month.
func Period() fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := c.Query("period", "month")
		if period != "week" && period != "month" && period != "year" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PERIOD, errors.New("period must be week, month or year"))
		}
		c.Locals("period", period)
		return c.Next()
	}
}
