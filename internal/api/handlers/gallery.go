package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chidupudi/ai-assistant/internal/gallery"
)

// clientProject resolves the project granted by the client token.
func (h *Handler) clientProject(c *gin.Context) (string, bool) {
	projectID := c.GetString("project_id")
	if projectID == "" || h.store.Project(projectID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return "", false
	}
	return projectID, true
}

// GetGallery returns the granted project's folder tree for the client view
func (h *Handler) GetGallery(c *gin.Context) {
	projectID, ok := h.clientProject(c)
	if !ok {
		return
	}

	project := h.store.Project(projectID)
	c.JSON(http.StatusOK, gin.H{
		"id":             project.ID,
		"name":           project.Name,
		"wedding_date":   project.WeddingDate,
		"folders":        project.Folders,
		"total_selected": h.store.TotalSelected(projectID),
		"total_flagged":  h.store.TotalFlagged(projectID),
	})
}

// ToggleSelection flips the selected flag on a photo of the granted project
func (h *Handler) ToggleSelection(c *gin.Context) {
	h.togglePhoto(c, true)
}

// ToggleFlag flips the flagged flag on a photo of the granted project
func (h *Handler) ToggleFlag(c *gin.Context) {
	h.togglePhoto(c, false)
}

func (h *Handler) togglePhoto(c *gin.Context, selection bool) {
	projectID, ok := h.clientProject(c)
	if !ok {
		return
	}

	photoID := c.Param("photoId")

	// Toggles are scoped to the active project; the client token names it,
	// so point the cursor there before flipping.
	h.store.SetCurrentProject(h.store.Project(projectID))

	var res gallery.ToggleResult
	var found bool
	if selection {
		res, found = h.store.TogglePhotoSelection(photoID)
	} else {
		res, found = h.store.TogglePhotoFlag(photoID)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	if h.notifier != nil {
		if selection {
			h.notifier.NotifySelectionChanged(projectID, res.FolderID, res.Photo.ID, res.Photo.Selected, res.TotalSelected, res.TotalFlagged)
		} else {
			h.notifier.NotifyFlagChanged(projectID, res.FolderID, res.Photo.ID, res.Photo.Flagged, res.TotalSelected, res.TotalFlagged)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"photo":          res.Photo,
		"total_selected": res.TotalSelected,
		"total_flagged":  res.TotalFlagged,
	})
}
