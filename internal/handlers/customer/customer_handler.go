// internal/handlers/customer/customer_handler.go
package customer

import (
	"net/http"

	"dealboard-gateway/internal/domain/customer"
	"dealboard-gateway/internal/pkg/response"
	service "dealboard-gateway/internal/service/crm"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	crmService *service.CRMService
}

func NewCustomerHandler(crmService *service.CRMService) *CustomerHandler {
	return &CustomerHandler{crmService: crmService}
}

// ListCustomers returns the customers of the active organization.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	list := h.crmService.Customers(c.Request.Context())
	response.Success(c, http.StatusOK, "customers retrieved", list)
}

// CreateCustomer creates a customer in the active organization.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customer.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	created, err := h.crmService.CreateCustomer(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to create customer", err)
		return
	}

	response.Success(c, http.StatusCreated, "customer created", created)
}

// UpdateCustomer updates an existing customer.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req customer.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	updated, err := h.crmService.UpdateCustomer(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "failed to update customer", err)
		return
	}

	response.Success(c, http.StatusOK, "customer updated", updated)
}
