package customer

import (
	"github.com/gofiber/fiber/v2"
)

type CustomerApi struct {
	CustomerController *CustomerController
}

func NewCustomerApi(customerController *CustomerController) *CustomerApi {
	return &CustomerApi{CustomerController: customerController}
}

func (api *CustomerApi) Setup(app *fiber.App) {
	group := app.Group("/api/customers")
	group.Get("/", api.CustomerController.ListCustomers)
	group.Get("/search", api.CustomerController.SearchCustomers)
	group.Get("/:id", api.CustomerController.GetCustomer)
}
