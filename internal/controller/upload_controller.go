package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

type UploadController struct {
	StorageService *service.StorageService
	Cfg            *config.Config
}

func NewUploadController(storageService *service.StorageService, cfg *config.Config) *UploadController {
	return &UploadController{
		StorageService: storageService,
		Cfg:            cfg,
	}
}

// @Summary Upload a course banner or lecture PDF
// @Description Accepts images and PDFs up to the configured ceiling (4MB by default) and returns a stable URL.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "file to upload"
// @Success 201 {object} util.Response
// @Router /api/uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	if header.Size > c.Cfg.Storage.MaxUploadBytes {
		util.BadRequest(ctx, fmt.Sprintf("file exceeds the %dMB limit", c.Cfg.Storage.MaxUploadBytes>>20))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		util.BadRequest(ctx, "only images and PDFs are accepted")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := model.GenerateUUID() + ext

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, header.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"url": url, "name": header.Filename})
}
