package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CreateProject handles project creation
func (h *Handler) CreateProject(c *gin.Context) {
	var input struct {
		Name        string   `json:"name" binding:"required,min=1,max=255"`
		ClientName  string   `json:"client_name" binding:"required"`
		WeddingDate string   `json:"wedding_date" binding:"required"`
		Folders     []string `json:"folders" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: name, client_name, wedding_date and at least one folder are required"})
		return
	}

	for _, name := range input.Folders {
		if strings.TrimSpace(name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Folder names must not be empty"})
			return
		}
	}

	project := h.store.CreateProject(input.Name, input.ClientName, input.WeddingDate, input.Folders)
	c.JSON(http.StatusCreated, project)
}

// ListProjects returns all projects, newest first
func (h *Handler) ListProjects(c *gin.Context) {
	projects := h.store.Projects()

	summaries := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		photos := 0
		for _, f := range p.Folders {
			photos += len(f.Photos)
		}
		summaries = append(summaries, gin.H{
			"id":             p.ID,
			"name":           p.Name,
			"client_name":    p.ClientName,
			"wedding_date":   p.WeddingDate,
			"pin":            p.PIN,
			"created_at":     p.CreatedAt,
			"folder_count":   len(p.Folders),
			"photo_count":    photos,
			"total_selected": h.store.TotalSelected(p.ID),
			"total_flagged":  h.store.TotalFlagged(p.ID),
		})
	}

	c.JSON(http.StatusOK, gin.H{"projects": summaries})
}

// GetProject returns one project with its full folder tree
func (h *Handler) GetProject(c *gin.Context) {
	project := h.store.Project(c.Param("id"))
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// AddFolder appends a folder to an existing project
func (h *Handler) AddFolder(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required,min=1,max=255"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: folder name is required"})
		return
	}

	projectID := c.Param("id")
	if h.store.Project(projectID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	h.store.AddFolder(projectID, input.Name)
	c.JSON(http.StatusCreated, h.store.Project(projectID))
}

// ProjectSummary returns selection totals and the per-folder groups of
// selected photos for the studio dashboard
func (h *Handler) ProjectSummary(c *gin.Context) {
	projectID := c.Param("id")
	project := h.store.Project(projectID)
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id":     project.ID,
		"total_selected": h.store.TotalSelected(projectID),
		"total_flagged":  h.store.TotalFlagged(projectID),
		"selected":       h.store.SelectedPhotos(projectID),
	})
}
