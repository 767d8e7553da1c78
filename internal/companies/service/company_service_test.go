package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/companies/domain"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/events"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/logging"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

type fakeRepo struct {
	companies  map[string]domain.Company
	lastFilter *domain.Filter
}

func newFakeRepo(cs ...domain.Company) *fakeRepo {
	r := &fakeRepo{companies: map[string]domain.Company{}}
	for _, c := range cs {
		r.companies[c.Handle] = c
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, req domain.CreateCompanyRequest) (*domain.Company, error) {
	if _, ok := r.companies[req.Handle]; ok {
		return nil, apperr.Duplicate("Duplicate company: %s", req.Handle)
	}
	c := domain.Company{Handle: req.Handle, Name: req.Name, Description: req.Description}
	r.companies[c.Handle] = c
	return &c, nil
}

func (r *fakeRepo) FindAll(_ context.Context, f domain.Filter) ([]domain.Company, error) {
	r.lastFilter = &f
	out := []domain.Company{}
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeRepo) Get(_ context.Context, handle string) (*domain.CompanyWithJobs, error) {
	c, ok := r.companies[handle]
	if !ok {
		return nil, apperr.NotFound("No company: %s", handle)
	}
	return &domain.CompanyWithJobs{Company: c}, nil
}

func (r *fakeRepo) Update(_ context.Context, handle string, req domain.UpdateCompanyRequest) (*domain.Company, error) {
	c, ok := r.companies[handle]
	if !ok {
		return nil, apperr.NotFound("No company: %s", handle)
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	r.companies[handle] = c
	return &c, nil
}

func (r *fakeRepo) Remove(_ context.Context, handle string) error {
	if _, ok := r.companies[handle]; !ok {
		return apperr.NotFound("No company: %s", handle)
	}
	delete(r.companies, handle)
	return nil
}

type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestCompanyService_Create(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewCompanyService(newFakeRepo(), pub)
	ctx := logging.WithRequestID(context.Background(), "rid-9")

	c, err := svc.Create(ctx, domain.CreateCompanyRequest{Handle: "acme", Name: "Acme", Description: "Anvils"})
	require.NoError(t, err)
	assert.Equal(t, "acme", c.Handle)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.CompanyCreated, pub.events[0].Type)
	assert.Equal(t, "acme", pub.events[0].Key)
	assert.Equal(t, "rid-9", pub.events[0].RequestID)

	_, err = svc.Create(ctx, domain.CreateCompanyRequest{Handle: "acme", Name: "Other", Description: "x"})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
	assert.Len(t, pub.events, 1, "failed mutations publish nothing")
}

func TestCompanyService_PublishFailureIsNotReturned(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewCompanyService(newFakeRepo(domain.Company{Handle: "acme"}), pub)

	require.NoError(t, svc.Remove(context.Background(), "acme"))
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.CompanyDeleted, pub.events[0].Type)
}

func TestCompanyService_Search(t *testing.T) {
	repo := newFakeRepo(domain.Company{Handle: "acme"})
	svc := NewCompanyService(repo, nil)
	ctx := context.Background()

	t.Run("parses the filter", func(t *testing.T) {
		cs, err := svc.Search(ctx, sqlbuild.Params{"name": "ac", "maxEmployees": "10"})
		require.NoError(t, err)
		assert.Len(t, cs, 1)
		require.NotNil(t, repo.lastFilter)
		assert.Equal(t, "ac", repo.lastFilter.Name)
		assert.Equal(t, 10, *repo.lastFilter.MaxEmployees)
	})

	t.Run("invalid keys never reach the repository", func(t *testing.T) {
		repo.lastFilter = nil
		_, err := svc.Search(ctx, sqlbuild.Params{"handle": "acme"})
		assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
		assert.Nil(t, repo.lastFilter)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		_, err := svc.Search(ctx, sqlbuild.Params{"minEmployees": "10", "maxEmployees": "5"})
		assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
	})
}

func TestCompanyService_Update(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewCompanyService(newFakeRepo(domain.Company{Handle: "acme", Name: "Acme"}), pub)
	ctx := context.Background()

	name := "Acme Inc"
	c, err := svc.Update(ctx, "acme", domain.UpdateCompanyRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", c.Name)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.CompanyUpdated, pub.events[0].Type)

	_, err = svc.Update(ctx, "nope", domain.UpdateCompanyRequest{Name: &name})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Len(t, pub.events, 1)
}
