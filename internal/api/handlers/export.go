package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chidupudi/ai-assistant/internal/gallery"
)

// ExportManifest offers the plain-text selection manifest as a download
func (h *Handler) ExportManifest(c *gin.Context) {
	project := h.store.Project(c.Param("id"))
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	content := gallery.Manifest(project.Name, h.store.SelectedPhotos(project.ID), time.Now())

	c.Header("Content-Type", "text/plain")
	c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=%s", gallery.ManifestFilename(project.Name)))
	c.String(http.StatusOK, content)
}

// ExportCSV exports the selected photos as CSV rows
func (h *Handler) ExportCSV(c *gin.Context) {
	project := h.store.Project(c.Param("id"))
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=selections_export.csv")

	writer := csv.NewWriter(c.Writer)
	// Write header
	if err := writer.Write([]string{"Folder", "Photo ID", "Filename", "URL", "Flagged"}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV header"})
		return
	}

	for _, group := range h.store.SelectedPhotos(project.ID) {
		for _, photo := range group.Photos {
			if err := writer.Write([]string{
				group.Folder.Name,
				photo.ID,
				photo.Filename,
				photo.URL,
				fmt.Sprint(photo.Flagged),
			}); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV data"})
				return
			}
		}
	}

	writer.Flush()
}

// ExportJSON exports the grouped selections as indented JSON
func (h *Handler) ExportJSON(c *gin.Context) {
	project := h.store.Project(c.Param("id"))
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.Header("Content-Disposition", "attachment;filename=selections_export.json")

	jsonData, err := json.MarshalIndent(h.store.SelectedPhotos(project.ID), "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to marshal JSON"})
		return
	}

	c.Data(http.StatusOK, "application/json", jsonData)
}
