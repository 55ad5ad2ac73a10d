package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
)

type fileHandler struct {
	fileService portssvc.FileSvcFacade
}

// registerFileRoutes sets up the routes for file attachment metadata.
func registerFileRoutes(v1 *gin.RouterGroup, fileService portssvc.FileSvcFacade) {
	h := &fileHandler{fileService: fileService}

	files := v1.Group("/files")
	{
		files.POST("", h.createFile)
		files.GET("/:id", h.getFile)
		files.DELETE("/:id", h.deleteFile)
	}
}

// createFile godoc
// @Summary Attach a file to a customer
// @Description Records file metadata. The blob itself lives in external storage.
// @Tags files
// @Accept json
// @Produce json
// @Param file body dto.CreateFileRequest true "File Info"
// @Success 201 {object} dto.FileResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /files [post]
func (h *fileHandler) createFile(c *gin.Context) {
	var req dto.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	file, err := h.fileService.CreateFile(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create file record")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFileResponse(file))
}

// getFile godoc
// @Summary Get a file record
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} dto.FileResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /files/{id} [get]
func (h *fileHandler) getFile(c *gin.Context) {
	file, err := h.fileService.GetFileByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to get file record")
		return
	}

	c.JSON(http.StatusOK, dto.ToFileResponse(file))
}

// deleteFile godoc
// @Summary Delete a file record
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /files/{id} [delete]
func (h *fileHandler) deleteFile(c *gin.Context) {
	if err := h.fileService.DeleteFile(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete file record")
		return
	}

	c.Status(http.StatusNoContent)
}
