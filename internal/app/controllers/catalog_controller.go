package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzkose/resourcehub/internal/app/models/dto"
	"github.com/oguzkose/resourcehub/internal/app/repositories"
	"github.com/oguzkose/resourcehub/internal/middleware"
)

// CatalogController serves the static reference listings used by forms and
// filter dropdowns
type CatalogController struct {
	departments *repositories.DepartmentRepository
	courses     *repositories.CourseRepository
	lecturers   *repositories.LecturerRepository
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(
	departments *repositories.DepartmentRepository,
	courses *repositories.CourseRepository,
	lecturers *repositories.LecturerRepository,
) *CatalogController {
	return &CatalogController{
		departments: departments,
		courses:     courses,
		lecturers:   lecturers,
	}
}

// Departments lists all departments
func (c *CatalogController) Departments(ctx *gin.Context) {
	departments, err := c.departments.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments))
}

// Courses lists courses, narrowed to one department when the query
// parameter is set
func (c *CatalogController) Courses(ctx *gin.Context) {
	requestCtx := ctx.Request.Context()

	if departmentID := ctx.Query("department"); departmentID != "" {
		courses, err := c.courses.ByDepartment(requestCtx, departmentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
		return
	}

	courses, err := c.courses.GetAll(requestCtx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// Lecturers lists lecturers, narrowed to one department when the query
// parameter is set
func (c *CatalogController) Lecturers(ctx *gin.Context) {
	requestCtx := ctx.Request.Context()

	if departmentID := ctx.Query("department"); departmentID != "" {
		lecturers, err := c.lecturers.ByDepartment(requestCtx, departmentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToLecturerResponses(lecturers)))
		return
	}

	lecturers, err := c.lecturers.GetAll(requestCtx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToLecturerResponses(lecturers)))
}
