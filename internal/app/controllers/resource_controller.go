package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/app/models/dto"
	"github.com/oguzkose/resourcehub/internal/app/services"
	"github.com/oguzkose/resourcehub/internal/middleware"
	"github.com/oguzkose/resourcehub/internal/pkg/apperrors"
)

const defaultRecentLimit = 6

// ResourceController handles resource upload, download and removal endpoints
type ResourceController struct {
	resourceService *services.ResourceService
}

// NewResourceController creates a new resource controller
func NewResourceController(resourceService *services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// Upload stores a new resource attributed to the caller
func (c *ResourceController) Upload(ctx *gin.Context) {
	var req dto.UploadResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("title, type, department, course and file are required"))
		return
	}

	resource, err := c.resourceService.Upload(ctx.Request.Context(), services.UploadInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         models.ResourceType(req.Type),
		DepartmentID: req.DepartmentID,
		CourseID:     req.CourseID,
		LecturerID:   req.LecturerID,
		Year:         req.Year,
		FileName:     req.FileName,
		FileSize:     req.FileSize,
		FileType:     req.FileType,
		FileData:     req.FileData,
	}, ctx.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToResourceResponse(resource)))
}

// Get returns one resource's metadata
func (c *ResourceController) Get(ctx *gin.Context) {
	resource, err := c.resourceService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToResourceResponse(resource)))
}

// Download returns the file payload and records the download
func (c *ResourceController) Download(ctx *gin.Context) {
	payload, err := c.resourceService.Download(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DownloadResponse{
		FileName: payload.FileName,
		FileType: payload.FileType,
		FileData: payload.FileData,
	}))
}

// Delete removes the caller's own resource
func (c *ResourceController) Delete(ctx *gin.Context) {
	err := c.resourceService.Delete(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Resource deleted"}))
}

// Recent returns the newest uploads
func (c *ResourceController) Recent(ctx *gin.Context) {
	limit := defaultRecentLimit
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	resources, err := c.resourceService.Recent(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToResourceResponses(resources)))
}

// Stats returns catalog totals. The per-user upload count is filled in only
// for authenticated callers.
func (c *ResourceController) Stats(ctx *gin.Context) {
	stats, err := c.resourceService.Stats(ctx.Request.Context(), ctx.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
