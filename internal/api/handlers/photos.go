package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chidupudi/ai-assistant/internal/utils"
)

// UploadPhotos imports one or more photos into a folder. Oversized images
// are downscaled before storage; each stored photo becomes a selectable
// record in the folder.
func (h *Handler) UploadPhotos(c *gin.Context) {
	projectID := c.Param("id")
	folderID := c.Param("folderId")

	project := h.store.Project(projectID)
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	folderExists := false
	for _, f := range project.Folders {
		if f.ID == folderID {
			folderExists = true
			break
		}
	}
	if !folderExists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photos provided"})
		return
	}

	results := make([]gin.H, 0, len(files))
	imported := 0
	for _, file := range files {
		result := gin.H{"filename": file.Filename, "success": false}

		if file.Size > h.cfg.Storage.MaxUploadSize {
			result["error"] = "file exceeds maximum upload size"
			results = append(results, result)
			continue
		}
		if !utils.IsImageFilename(file.Filename) {
			result["error"] = "unsupported file type"
			results = append(results, result)
			continue
		}

		src, err := file.Open()
		if err != nil {
			result["error"] = fmt.Sprintf("failed to open upload: %v", err)
			results = append(results, result)
			continue
		}

		data, dims, err := utils.ProcessImport(src, h.cfg.Gallery.MaxImageWidth)
		src.Close()
		if err != nil {
			result["error"] = err.Error()
			results = append(results, result)
			continue
		}

		key := fmt.Sprintf("%s_%s", uuid.New().String()[:8], file.Filename)
		storedKey, err := h.storage.UploadBytes(data, key)
		if err != nil {
			result["error"] = fmt.Sprintf("failed to store photo: %v", err)
			results = append(results, result)
			continue
		}

		// The dashboard grid loads square previews instead of full frames.
		// A photo without one still imports; the grid falls back to the
		// original.
		var thumbURL string
		if thumb, err := utils.Thumbnail(bytes.NewReader(data), h.cfg.Gallery.ThumbnailSize); err == nil {
			if thumbKey, err := h.storage.UploadBytes(thumb, "thumb_"+key); err == nil {
				thumbURL = h.storage.GetPublicURL(thumbKey)
			}
		}

		photo := h.store.AddPhoto(projectID, folderID, file.Filename, h.storage.GetPublicURL(storedKey), thumbURL)

		imported++
		result["success"] = true
		result["photo"] = photo
		result["dimensions"] = dims
		results = append(results, result)
	}

	if h.notifier != nil && imported > 0 {
		h.notifier.NotifyPhotosImported(projectID, folderID, imported)
	}

	c.JSON(http.StatusOK, gin.H{
		"total":         len(files),
		"success_count": imported,
		"results":       results,
	})
}

// ServePhoto streams a stored photo through the app server (local provider)
func (h *Handler) ServePhoto(c *gin.Context) {
	reader, err := h.storage.Download(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo"})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
}
