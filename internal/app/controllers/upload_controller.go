package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services"
	"github.com/Vitalis058/tumaini-next-sub000/internal/domain/services/container"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/code"
	"github.com/Vitalis058/tumaini-next-sub000/internal/error/response"
	Logger "github.com/Vitalis058/tumaini-next-sub000/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UploadController handles tour image assets.
type UploadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUploadController creates an upload controller.
func NewUploadController(ctx *gin.Context, container *container.ServiceContainer) *UploadController {
	return &UploadController{
		Ctx:       ctx,
		Container: container,
	}
}

// DeleteAssetRequest names the asset either by id or by its public URL.
type DeleteAssetRequest struct {
	AssetID string `json:"assetId" example:"0b6e3a8e-4a53-4f6c-9d0e-2f7c51a9c2d1"`
	URL     string `json:"url" example:"https://tumaini-assets.s3.af-south-1.amazonaws.com/tumaini-tours/0b6e3a8e-4a53-4f6c-9d0e-2f7c51a9c2d1.jpg"`
}

// UploadResponse lists every file's outcome. URL and AssetID are set when
// exactly one file was stored.
type UploadResponse struct {
	URL     string                  `json:"url,omitempty"`
	AssetID string                  `json:"assetId,omitempty"`
	Files   []services.UploadResult `json:"files"`
}

// HandleUploadFunc returns the gin handler for an upload method.
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUploadController(ctx, container)

		switch method {
		case "upload":
			controller.Upload()
		case "delete":
			controller.Delete()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. Upload
// @Summary      Upload tour images
// @Description  Every file is stored independently; the response reports each one
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image (repeatable)"
// @Success      200  {object}  response.Response{data=UploadResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  response.Response{data=UploadResponse}
// @Router       /upload [post]
// @Security     CookieAuth
func (c *UploadController) Upload() {
	form, err := c.Ctx.MultipartForm()
	if err != nil || len(form.File["file"]) == 0 {
		response.Fail(c.Ctx, code.ErrAssetMissingFile, nil)
		return
	}

	headers := form.File["file"]
	sources := make([]services.UploadSource, 0, len(headers))
	for _, fh := range headers {
		sources = append(sources, uploadSource(fh))
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)
	results := assetService.Upload(c.Ctx.Request.Context(), sources)

	data := UploadResponse{Files: results}
	var stored []services.UploadResult
	for _, r := range results {
		if r.Succeeded() {
			stored = append(stored, r)
		}
	}
	if len(stored) == 1 {
		data.URL = stored[0].URL
		data.AssetID = stored[0].AssetID
	}

	if len(stored) == 0 {
		response.Fail(c.Ctx, code.ErrAssetUpload, data)
		return
	}
	response.Success(c.Ctx, data)
}

// 2. Delete
// @Summary      Delete a tour image
// @Description  Accepts the asset id or the public URL it was served from
// @Tags         Upload
// @Accept       json
// @Produce      json
// @Param        request body DeleteAssetRequest true "Asset"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /upload [delete]
// @Security     CookieAuth
func (c *UploadController) Delete() {
	var req DeleteAssetRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrAssetInvalidID, nil)
		return
	}

	assetService := c.Container.GetService("asset").(services.InterfaceAssetService)
	ctx := c.Ctx.Request.Context()

	var err error
	switch {
	case strings.TrimSpace(req.AssetID) != "":
		err = assetService.Delete(ctx, strings.TrimSpace(req.AssetID))
	case strings.TrimSpace(req.URL) != "":
		err = assetService.DeleteByURL(ctx, req.URL)
	default:
		response.FailWithMessage(c.Ctx, code.ErrAssetInvalidID, "assetId or url is required", nil)
		return
	}

	switch {
	case err == nil:
		response.Success(c.Ctx, gin.H{"success": true})
	case errors.Is(err, services.ErrInvalidAssetID):
		response.Fail(c.Ctx, code.ErrAssetInvalidID, nil)
	case errors.Is(err, services.ErrAssetNotFound):
		response.Fail(c.Ctx, code.ErrAssetNotFound, nil)
	default:
		Logger.Error("delete asset: %v", err)
		response.Fail(c.Ctx, code.ErrAssetDelete, nil)
	}
}

func uploadSource(fh *multipart.FileHeader) services.UploadSource {
	return services.UploadSource{
		FileName: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}
}
