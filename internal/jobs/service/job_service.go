package service

import (
	"context"
	"strconv"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/events"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/jobs/domain"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/logging"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

type Repository interface {
	Create(ctx context.Context, req domain.CreateJobRequest) (*domain.Job, error)
	FindAll(ctx context.Context, f domain.Filter) ([]domain.Job, error)
	Get(ctx context.Context, id int) (*domain.Job, error)
	Update(ctx context.Context, id int, req domain.UpdateJobRequest) (*domain.Job, error)
	Remove(ctx context.Context, id int) error
}

type JobService struct {
	repo      Repository
	publisher events.Publisher
}

func NewJobService(repo Repository, publisher events.Publisher) *JobService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &JobService{repo: repo, publisher: publisher}
}

func (s *JobService) Create(ctx context.Context, req domain.CreateJobRequest) (*domain.Job, error) {
	logger := logging.New(ctx)

	j, err := s.repo.Create(ctx, req)
	if err != nil {
		logger.LogWarnf("CreateJob", "company=%s error=%v", req.CompanyHandle, err)
		return nil, err
	}

	logger.LogInfof("CreateJob", "id=%d company=%s", j.ID, j.CompanyHandle)
	s.publish(ctx, logger, events.New(events.JobCreated, events.EntityJob, strconv.Itoa(j.ID), j))
	return j, nil
}

// Search validates params as a job filter and returns the matches.
func (s *JobService) Search(ctx context.Context, params sqlbuild.Params) ([]domain.Job, error) {
	logging.New(ctx).LogDebugf("SearchJobs", "params=%v", params)

	f, err := domain.ParseFilter(params)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, f)
}

func (s *JobService) Get(ctx context.Context, id int) (*domain.Job, error) {
	return s.repo.Get(ctx, id)
}

func (s *JobService) Update(ctx context.Context, id int, req domain.UpdateJobRequest) (*domain.Job, error) {
	logger := logging.New(ctx)

	j, err := s.repo.Update(ctx, id, req)
	if err != nil {
		logger.LogWarnf("UpdateJob", "id=%d error=%v", id, err)
		return nil, err
	}

	logger.LogInfof("UpdateJob", "id=%d fields=%d", id, len(req.Fields()))
	s.publish(ctx, logger, events.New(events.JobUpdated, events.EntityJob, strconv.Itoa(id), j))
	return j, nil
}

func (s *JobService) Remove(ctx context.Context, id int) error {
	logger := logging.New(ctx)

	if err := s.repo.Remove(ctx, id); err != nil {
		logger.LogWarnf("RemoveJob", "id=%d error=%v", id, err)
		return err
	}

	logger.LogInfof("RemoveJob", "id=%d", id)
	s.publish(ctx, logger, events.New(events.JobDeleted, events.EntityJob, strconv.Itoa(id), nil))
	return nil
}

func (s *JobService) publish(ctx context.Context, logger *logging.Logger, e events.Event) {
	e.RequestID = logging.RequestID(ctx)
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.LogErrorf("PublishEvent", "type=%s key=%s error=%v", e.Type, e.Key, err)
	}
}
