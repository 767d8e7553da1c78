package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	authhttp "github.com/GoSim-25-26J-441/jobly-backend/internal/auth/http"
	authmw "github.com/GoSim-25-26J-441/jobly-backend/internal/auth/middleware"
	companyhttp "github.com/GoSim-25-26J-441/jobly-backend/internal/companies/http"
	companyrepo "github.com/GoSim-25-26J-441/jobly-backend/internal/companies/repository"
	companyservice "github.com/GoSim-25-26J-441/jobly-backend/internal/companies/service"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/events"
	jobhttp "github.com/GoSim-25-26J-441/jobly-backend/internal/jobs/http"
	jobrepo "github.com/GoSim-25-26J-441/jobly-backend/internal/jobs/repository"
	jobservice "github.com/GoSim-25-26J-441/jobly-backend/internal/jobs/service"
)

type V1Deps struct {
	DB        *sql.DB
	Publisher events.Publisher
	// AuthDisabled opens every admin route. Config refuses it in production.
	AuthDisabled bool
}

func RegisterV1(r gin.IRouter, dep V1Deps) {
	admin := authmw.RequireAdmin(dep.AuthDisabled)

	companies := companyservice.NewCompanyService(companyrepo.NewCompanyRepository(dep.DB), dep.Publisher)
	companyhttp.NewHandler(companies).Register(r.Group("/companies"), admin)

	jobs := jobservice.NewJobService(jobrepo.NewJobRepository(dep.DB), dep.Publisher)
	jobhttp.NewHandler(jobs).Register(r.Group("/jobs"), admin)

	authhttp.Register(r.Group("/auth"), authmw.RequireAuth(dep.AuthDisabled))
}
