package validate

import (
	"errors"

	"prephub_backend/constants"
	"prephub_backend/model"
	"prephub_backend/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateFaculty() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFacultyInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func CreateFacultyBulk() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var inputs []model.CreateFacultyInput
		if err := c.BodyParser(&inputs); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if len(inputs) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, errors.New("empty faculty list"))
		}
		for _, input := range inputs {
			if err := validate.Struct(input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
			}
		}
		c.Locals("input", inputs)
		return c.Next()
	}
}

func EditFaculty() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateFacultyInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}
