package service

import (
	"context"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/companies/domain"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/events"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/logging"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

// Repository is the persistence the service needs. *repository.CompanyRepository
// satisfies it.
type Repository interface {
	Create(ctx context.Context, req domain.CreateCompanyRequest) (*domain.Company, error)
	FindAll(ctx context.Context, f domain.Filter) ([]domain.Company, error)
	Get(ctx context.Context, handle string) (*domain.CompanyWithJobs, error)
	Update(ctx context.Context, handle string, req domain.UpdateCompanyRequest) (*domain.Company, error)
	Remove(ctx context.Context, handle string) error
}

type CompanyService struct {
	repo      Repository
	publisher events.Publisher
}

func NewCompanyService(repo Repository, publisher events.Publisher) *CompanyService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &CompanyService{repo: repo, publisher: publisher}
}

func (s *CompanyService) Create(ctx context.Context, req domain.CreateCompanyRequest) (*domain.Company, error) {
	logger := logging.New(ctx)

	c, err := s.repo.Create(ctx, req)
	if err != nil {
		logger.LogWarnf("CreateCompany", "handle=%s error=%v", req.Handle, err)
		return nil, err
	}

	logger.LogInfof("CreateCompany", "handle=%s", c.Handle)
	s.publish(ctx, logger, events.New(events.CompanyCreated, events.EntityCompany, c.Handle, c))
	return c, nil
}

// Search validates params as a company filter and returns the matches.
func (s *CompanyService) Search(ctx context.Context, params sqlbuild.Params) ([]domain.Company, error) {
	logging.New(ctx).LogDebugf("SearchCompanies", "params=%v", params)

	f, err := domain.ParseFilter(params)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, f)
}

func (s *CompanyService) Get(ctx context.Context, handle string) (*domain.CompanyWithJobs, error) {
	return s.repo.Get(ctx, handle)
}

func (s *CompanyService) Update(ctx context.Context, handle string, req domain.UpdateCompanyRequest) (*domain.Company, error) {
	logger := logging.New(ctx)

	c, err := s.repo.Update(ctx, handle, req)
	if err != nil {
		logger.LogWarnf("UpdateCompany", "handle=%s error=%v", handle, err)
		return nil, err
	}

	logger.LogInfof("UpdateCompany", "handle=%s fields=%d", handle, len(req.Fields()))
	s.publish(ctx, logger, events.New(events.CompanyUpdated, events.EntityCompany, handle, c))
	return c, nil
}

func (s *CompanyService) Remove(ctx context.Context, handle string) error {
	logger := logging.New(ctx)

	if err := s.repo.Remove(ctx, handle); err != nil {
		logger.LogWarnf("RemoveCompany", "handle=%s error=%v", handle, err)
		return err
	}

	logger.LogInfof("RemoveCompany", "handle=%s", handle)
	s.publish(ctx, logger, events.New(events.CompanyDeleted, events.EntityCompany, handle, nil))
	return nil
}

// publish never fails the caller; the mutation has already been committed.
func (s *CompanyService) publish(ctx context.Context, logger *logging.Logger, e events.Event) {
	e.RequestID = logging.RequestID(ctx)
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.LogErrorf("PublishEvent", "type=%s key=%s error=%v", e.Type, e.Key, err)
	}
}
