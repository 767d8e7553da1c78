package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/companies/domain"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres/sqlbuild"
)

// Service is implemented by *service.CompanyService.
type Service interface {
	Create(ctx context.Context, req domain.CreateCompanyRequest) (*domain.Company, error)
	Search(ctx context.Context, params sqlbuild.Params) ([]domain.Company, error)
	Get(ctx context.Context, handle string) (*domain.CompanyWithJobs, error)
	Update(ctx context.Context, handle string, req domain.UpdateCompanyRequest) (*domain.Company, error)
	Remove(ctx context.Context, handle string) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateCompanyRequest
	if err := respond.BindJSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}

	company, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"company": company})
}

func (h *Handler) list(c *gin.Context) {
	companies, err := h.svc.Search(c.Request.Context(), sqlbuild.FromQuery(c.Request.URL.Query()))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *Handler) get(c *gin.Context) {
	company, err := h.svc.Get(c.Request.Context(), c.Param("handle"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (h *Handler) update(c *gin.Context) {
	var req domain.UpdateCompanyRequest
	if err := respond.DecodeStrict(c, &req); err != nil {
		respond.Error(c, err)
		return
	}

	company, err := h.svc.Update(c.Request.Context(), c.Param("handle"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (h *Handler) delete(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.svc.Remove(c.Request.Context(), handle); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}
