// internal/upstream/crm.go
package upstream

import (
	"context"
	"net/http"

	"dealboard-gateway/internal/domain/customer"
	"dealboard-gateway/internal/domain/dashboard"
	"dealboard-gateway/internal/domain/deal"
	"dealboard-gateway/internal/domain/task"
)

// ---- Customers ----

func (c *Client) Customers(ctx context.Context) ([]customer.Customer, error) {
	var list []customer.Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req *customer.CreateCustomerRequest) (*customer.Customer, error) {
	var created customer.Customer
	if err := c.do(ctx, http.MethodPost, "/customers", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, req *customer.UpdateCustomerRequest) (*customer.Customer, error) {
	var updated customer.Customer
	if err := c.do(ctx, http.MethodPut, "/customers/"+id, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ---- Deals ----

func (c *Client) Deals(ctx context.Context) ([]deal.Deal, error) {
	var list []deal.Deal
	if err := c.do(ctx, http.MethodGet, "/deals", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Deal(ctx context.Context, id string) (*deal.Deal, error) {
	var d deal.Deal
	if err := c.do(ctx, http.MethodGet, "/deals/"+id, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) CreateDeal(ctx context.Context, req *deal.CreateDealRequest) (*deal.Deal, error) {
	var created deal.Deal
	if err := c.do(ctx, http.MethodPost, "/deals", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateDeal(ctx context.Context, id string, req *deal.UpdateDealRequest) (*deal.Deal, error) {
	var updated deal.Deal
	if err := c.do(ctx, http.MethodPut, "/deals/"+id, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) PatchDealStage(ctx context.Context, id, stage string) (*deal.Deal, error) {
	var updated deal.Deal
	req := deal.PatchStageRequest{Stage: stage}
	if err := c.do(ctx, http.MethodPatch, "/deals/"+id+"/stage", &req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ---- Tasks ----

func (c *Client) Tasks(ctx context.Context) ([]task.Task, error) {
	var list []task.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateTask(ctx context.Context, req *task.CreateTaskRequest) (*task.Task, error) {
	var created task.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) CompleteTask(ctx context.Context, id string) (*task.Task, error) {
	var completed task.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id+"/complete", nil, &completed); err != nil {
		return nil, err
	}
	return &completed, nil
}

// ---- Dashboard ----

func (c *Client) DashboardSummary(ctx context.Context) (*dashboard.Stats, error) {
	var stats dashboard.Stats
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
