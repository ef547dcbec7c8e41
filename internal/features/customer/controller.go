package customer

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type CustomerController struct {
	CustomerService CustomerService
}

func NewCustomerController(customerService CustomerService) *CustomerController {
	return &CustomerController{CustomerService: customerService}
}

func (c *CustomerController) ListCustomers(ctx *fiber.Ctx) error {
	return ctx.JSON(c.CustomerService.All())
}

func (c *CustomerController) SearchCustomers(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	return ctx.JSON(c.CustomerService.Search(query))
}

func (c *CustomerController) GetCustomer(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer id"})
	}

	cust, err := c.CustomerService.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(cust)
}
