package service

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/events"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/jobs/domain"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/logging"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

type fakeRepo struct {
	jobs       map[int]domain.Job
	nextID     int
	lastFilter *domain.Filter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{jobs: map[int]domain.Job{}, nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, req domain.CreateJobRequest) (*domain.Job, error) {
	if req.CompanyHandle == "nope" {
		return nil, apperr.InvalidRequest("No company: %s", req.CompanyHandle)
	}
	j := domain.Job{ID: r.nextID, Title: req.Title, Salary: req.Salary, Equity: req.Equity, CompanyHandle: req.CompanyHandle}
	r.nextID++
	r.jobs[j.ID] = j
	return &j, nil
}

func (r *fakeRepo) FindAll(_ context.Context, f domain.Filter) ([]domain.Job, error) {
	r.lastFilter = &f
	out := []domain.Job{}
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *fakeRepo) Get(_ context.Context, id int) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, apperr.NotFound("No job: %d", id)
	}
	return &j, nil
}

func (r *fakeRepo) Update(_ context.Context, id int, req domain.UpdateJobRequest) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, apperr.NotFound("No job: %d", id)
	}
	if req.Title != nil {
		j.Title = *req.Title
	}
	r.jobs[id] = j
	return &j, nil
}

func (r *fakeRepo) Remove(_ context.Context, id int) error {
	if _, ok := r.jobs[id]; !ok {
		return apperr.NotFound("No job: %d", id)
	}
	delete(r.jobs, id)
	return nil
}

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestJobService_Lifecycle(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewJobService(newFakeRepo(), pub)
	ctx := context.Background()

	j, err := svc.Create(ctx, domain.CreateJobRequest{Title: "Dev", CompanyHandle: "acme"})
	require.NoError(t, err)
	assert.Equal(t, 1, j.ID)

	title := "Senior Dev"
	_, err = svc.Update(ctx, j.ID, domain.UpdateJobRequest{Title: &title})
	require.NoError(t, err)

	got, err := svc.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Dev", got.Title)

	require.NoError(t, svc.Remove(ctx, j.ID))
	_, err = svc.Get(ctx, j.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.Len(t, pub.events, 3)
	assert.Equal(t, events.JobCreated, pub.events[0].Type)
	assert.Equal(t, events.JobUpdated, pub.events[1].Type)
	assert.Equal(t, events.JobDeleted, pub.events[2].Type)
	assert.Equal(t, "1", pub.events[2].Key)
	assert.Equal(t, events.EntityJob, pub.events[2].Entity)
}

func TestJobService_CreateUnknownCompany(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewJobService(newFakeRepo(), pub)

	_, err := svc.Create(context.Background(), domain.CreateJobRequest{Title: "Dev", CompanyHandle: "nope"})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
	assert.Empty(t, pub.events)
}

func TestJobService_Search(t *testing.T) {
	repo := newFakeRepo()
	svc := NewJobService(repo, nil)
	ctx := context.Background()

	_, err := svc.Search(ctx, sqlbuild.Params{"minSalary": "50000", "equity": "true"})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, 50000, *repo.lastFilter.MinSalary)
	assert.True(t, repo.lastFilter.HasEquity)

	repo.lastFilter = nil
	_, err = svc.Search(ctx, sqlbuild.Params{"salary": "1"})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
	assert.Nil(t, repo.lastFilter)
}

func TestJobService_SearchLogsParamsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	logging.SetLevel("debug")
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		logging.SetLevel("info")
	})

	svc := NewJobService(newFakeRepo(), nil)
	ctx := logging.WithRequestID(context.Background(), "req-1")
	_, err := svc.Search(ctx, sqlbuild.Params{"title": "dev"})
	require.NoError(t, err)

	assert.Equal(t, "[debug] request_id=req-1 operation=SearchJobs params=map[title:dev]\n", buf.String())
}
