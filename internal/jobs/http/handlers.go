package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/jobs/domain"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

// Service is implemented by *service.JobService.
type Service interface {
	Create(ctx context.Context, req domain.CreateJobRequest) (*domain.Job, error)
	Search(ctx context.Context, params sqlbuild.Params) ([]domain.Job, error)
	Get(ctx context.Context, id int) (*domain.Job, error)
	Update(ctx context.Context, id int, req domain.UpdateJobRequest) (*domain.Job, error)
	Remove(ctx context.Context, id int) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func jobID(c *gin.Context) (int, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, apperr.InvalidRequest("id must be a positive integer")
	}
	return int(id), nil
}

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateJobRequest
	if err := respond.BindJSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}

	job, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func (h *Handler) list(c *gin.Context) {
	jobs, err := h.svc.Search(c.Request.Context(), sqlbuild.FromQuery(c.Request.URL.Query()))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *Handler) get(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	job, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *Handler) update(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	var req domain.UpdateJobRequest
	if err := respond.DecodeStrict(c, &req); err != nil {
		respond.Error(c, err)
		return
	}

	job, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *Handler) delete(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		respond.Error(c, err)
		return
	}

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
