package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oguzkose/resourcehub/internal/app/models/dto"
	"github.com/oguzkose/resourcehub/internal/app/search"
	"github.com/oguzkose/resourcehub/internal/middleware"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
)

// SearchController handles search and autocomplete endpoints
type SearchController struct {
	engine *search.Engine
}

// NewSearchController creates a new search controller
func NewSearchController(engine *search.Engine) *SearchController {
	return &SearchController{engine: engine}
}

// Search runs a ranked text search with structured filters
func (c *SearchController) Search(ctx *gin.Context) {
	var req dto.SearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("search parameters are not valid"))
		return
	}

	results, err := c.engine.Search(ctx.Request.Context(), req.Query, search.Filters{
		Department: req.Department,
		Type:       req.Type,
		Year:       req.Year,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SearchResponse{
		Results: dto.ToResourceResponses(results),
		Total:   len(results),
	}))
}

// Advanced runs a strictly-AND filter over every criterion
func (c *SearchController) Advanced(ctx *gin.Context) {
	var req dto.AdvancedSearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("search parameters are not valid"))
		return
	}

	dateFrom, err := parseDate(req.DateFrom, false)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("dateFrom is not a valid date"))
		return
	}
	dateTo, err := parseDate(req.DateTo, true)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("dateTo is not a valid date"))
		return
	}

	results, err := c.engine.Advanced(ctx.Request.Context(), search.Criteria{
		Query:      req.Query,
		Department: req.Department,
		Course:     req.Course,
		Lecturer:   req.Lecturer,
		Type:       req.Type,
		Year:       req.Year,
		FileType:   req.FileType,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SearchResponse{
		Results: dto.ToResourceResponses(results),
		Total:   len(results),
	}))
}

// Suggestions returns autocomplete candidates for a partial query
func (c *SearchController) Suggestions(ctx *gin.Context) {
	suggestions, err := c.engine.Suggestions(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuggestionsResponse{Suggestions: suggestions}))
}

// parseDate accepts RFC 3339 or plain YYYY-MM-DD. A plain upper bound is
// widened to the end of its day so the range stays inclusive.
func parseDate(value string, upperBound bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	if upperBound {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return &parsed, nil
}
