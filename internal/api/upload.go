package api

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	nanoid "github.com/matoous/go-nanoid/v2"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandlers struct {
	staticDir string
}

func NewUploadHandlers(staticDir string) *UploadHandlers {
	return &UploadHandlers{staticDir: staticDir}
}

type UploadResponse struct {
	URL string `json:"url" example:"/static/V1StGXR8_Z5j.png"`
}

// UploadImageHandler stores an image under the static directory
// @Summary Upload an image
// @Description Store an event/club image and return the URL to reference it
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /api/v1/upload [post]
func (h *UploadHandlers) UploadImageHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "No file provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(400, gin.H{"error": "Unsupported file type"})
		return
	}

	name, err := nanoid.New(12)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate file name"})
		return
	}

	filename := name + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.staticDir, filename)); err != nil {
		c.JSON(500, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(200, UploadResponse{URL: "/static/" + filename})
}
