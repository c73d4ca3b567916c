package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzkose/resourcehub/internal/app/browse"
	"github.com/oguzkose/resourcehub/internal/app/models/dto"
	"github.com/oguzkose/resourcehub/internal/app/repositories"
	"github.com/oguzkose/resourcehub/internal/middleware"
)

// BrowseController handles the drill-down browsing endpoint
type BrowseController struct {
	repos *repositories.Repositories
}

// NewBrowseController creates a new browse controller
func NewBrowseController(repos *repositories.Repositories) *BrowseController {
	return &BrowseController{repos: repos}
}

// Browse renders one drill-down view. The position comes from the query
// parameters; each request gets its own navigator, so concurrent callers
// never share position.
func (c *BrowseController) Browse(ctx *gin.Context) {
	navigator := browse.NewNavigator(
		c.repos.ResourceRepository,
		c.repos.DepartmentRepository,
		c.repos.CourseRepository,
		c.repos.LecturerRepository,
	)
	if departmentID := ctx.Query("department"); departmentID != "" {
		navigator.EnterDepartment(departmentID)
		if courseID := ctx.Query("course"); courseID != "" {
			navigator.EnterCourse(courseID)
			navigator.SetLecturer(ctx.Query("lecturer"))
		}
	}

	requestCtx := ctx.Request.Context()
	state := navigator.State()

	breadcrumb, err := navigator.Breadcrumb(requestCtx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	response := dto.BrowseResponse{Breadcrumb: breadcrumb}

	switch {
	case state.DepartmentID == "":
		tiles, err := navigator.DepartmentTiles(requestCtx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		response.Departments = toDepartmentResponses(tiles)

	case state.CourseID == "":
		cards, err := navigator.Courses(requestCtx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		response.Courses = toCourseResponses(cards)

	default:
		resources, err := navigator.Resources(requestCtx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		lecturers, err := navigator.FilterOptions(requestCtx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		response.Resources = dto.ToResourceResponses(resources)
		response.Lecturers = dto.ToLecturerResponses(lecturers)
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

func toDepartmentResponses(tiles []browse.DepartmentTile) []dto.DepartmentResponse {
	out := make([]dto.DepartmentResponse, 0, len(tiles))
	for _, tile := range tiles {
		out = append(out, dto.DepartmentResponse{
			ID:            tile.Department.ID,
			Name:          tile.Department.Name,
			Icon:          tile.Department.Icon,
			ResourceCount: tile.ResourceCount,
		})
	}
	return out
}

func toCourseResponses(cards []browse.CourseCard) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, dto.CourseResponse{
			ID:            card.Course.ID,
			DepartmentID:  card.Course.DepartmentID,
			Code:          card.Course.Code,
			Name:          card.Course.Name,
			Level:         card.Course.Level,
			ResourceCount: card.ResourceCount,
			LecturerName:  card.LecturerName,
		})
	}
	return out
}
