// internal/service/crm/crm.go
package crm

import (
	"context"
	"fmt"

	"dealboard-gateway/internal/domain/customer"
	"dealboard-gateway/internal/domain/dashboard"
	"dealboard-gateway/internal/domain/deal"
	"dealboard-gateway/internal/domain/task"
	"dealboard-gateway/internal/domain/user"
	xerrors "dealboard-gateway/internal/pkg/errors"
	"dealboard-gateway/internal/upstream"

	"go.uber.org/zap"
)

// CRMService fronts the upstream CRM resources for the page handlers. Reads
// degrade to empty state on failure, so the pages render "No deals" rather
// than an error; writes surface their error to the caller.
type CRMService struct {
	client *upstream.Client
	logger *zap.Logger
}

func NewCRMService(client *upstream.Client, logger *zap.Logger) *CRMService {
	return &CRMService{client: client, logger: logger}
}

// ---- Customers ----

func (s *CRMService) Customers(ctx context.Context) []customer.Customer {
	list, err := s.client.Customers(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch customers", zap.Error(err))
		return []customer.Customer{}
	}
	return list
}

func (s *CRMService) CreateCustomer(ctx context.Context, req *customer.CreateCustomerRequest) (*customer.Customer, error) {
	return s.client.CreateCustomer(ctx, req)
}

func (s *CRMService) UpdateCustomer(ctx context.Context, id string, req *customer.UpdateCustomerRequest) (*customer.Customer, error) {
	return s.client.UpdateCustomer(ctx, id, req)
}

// ---- Deals ----

func (s *CRMService) Deals(ctx context.Context) []deal.Deal {
	list, err := s.client.Deals(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch deals", zap.Error(err))
		return []deal.Deal{}
	}
	return list
}

func (s *CRMService) Deal(ctx context.Context, id string) (*deal.Deal, error) {
	return s.client.Deal(ctx, id)
}

func (s *CRMService) CreateDeal(ctx context.Context, req *deal.CreateDealRequest) (*deal.Deal, error) {
	if req.Stage == "" {
		req.Stage = deal.Stages[0]
	}
	if !deal.ValidStage(req.Stage) {
		return nil, fmt.Errorf("%w: unknown stage %q", xerrors.ErrInvalidInput, req.Stage)
	}
	return s.client.CreateDeal(ctx, req)
}

func (s *CRMService) UpdateDeal(ctx context.Context, id string, req *deal.UpdateDealRequest) (*deal.Deal, error) {
	if req.Stage != nil && !deal.ValidStage(*req.Stage) {
		return nil, fmt.Errorf("%w: unknown stage %q", xerrors.ErrInvalidInput, *req.Stage)
	}
	return s.client.UpdateDeal(ctx, id, req)
}

func (s *CRMService) MoveDealStage(ctx context.Context, id, stage string) (*deal.Deal, error) {
	if !deal.ValidStage(stage) {
		return nil, fmt.Errorf("%w: unknown stage %q", xerrors.ErrInvalidInput, stage)
	}
	return s.client.PatchDealStage(ctx, id, stage)
}

// ---- Tasks ----

func (s *CRMService) Tasks(ctx context.Context) []task.Task {
	list, err := s.client.Tasks(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch tasks", zap.Error(err))
		return []task.Task{}
	}
	return list
}

func (s *CRMService) CreateTask(ctx context.Context, req *task.CreateTaskRequest) (*task.Task, error) {
	return s.client.CreateTask(ctx, req)
}

func (s *CRMService) CompleteTask(ctx context.Context, id string) (*task.Task, error) {
	return s.client.CompleteTask(ctx, id)
}

// ---- Dashboard ----

func (s *CRMService) DashboardSummary(ctx context.Context) *dashboard.Stats {
	stats, err := s.client.DashboardSummary(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch dashboard summary", zap.Error(err))
		return &dashboard.Stats{}
	}
	return stats
}

// ---- Profile ----

func (s *CRMService) Profile(ctx context.Context) *user.Profile {
	p, err := s.client.Me(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch profile", zap.Error(err))
		return &user.Profile{}
	}
	return p
}

func (s *CRMService) UpdateProfile(ctx context.Context, p *user.Profile) (*user.Profile, error) {
	return s.client.UpdateMe(ctx, p)
}
