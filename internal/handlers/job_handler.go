package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует маршруты вакансий и компаний.
// Чтение публичное; публикация - только аутентифицированный работодатель
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired, employerOnly gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.SearchJobs)
		jobs.GET("/:jobId", h.GetJob)
		jobs.POST("", authRequired, employerOnly, h.PostJob)
	}

	rg.GET("/companies", h.ListCompanies)
}

func (h *JobHandler) SearchJobs(c *gin.Context) {
	var req dto.JobSearchRequest
	if !h.BindQuery(c, &req) {
		return
	}

	db := h.GetDB(c)

	jobs, err := h.jobService.SearchJobs(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.GetJob(db, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) PostJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PostJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.PostJob(db, employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"job_id":  job.ID,
	})
}

func (h *JobHandler) ListCompanies(c *gin.Context) {
	db := h.GetDB(c)

	companies, err := h.jobService.ListCompanies(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}
