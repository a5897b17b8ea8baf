package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type projectCreateRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Summary  string `json:"summary" binding:"omitempty,min=10"`
	Content  string `json:"content" binding:"omitempty"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
	Link     string `json:"link" binding:"omitempty,url"`
	Category string `json:"category" binding:"omitempty,oneof=medical research education technology other"`
	Status   string `json:"status" binding:"omitempty,oneof=ongoing completed planned"`
}

type projectUpdateRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=2,max=200"`
	Summary  *string `json:"summary" binding:"omitempty,min=10"`
	Content  *string `json:"content" binding:"omitempty"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,url"`
	Link     *string `json:"link" binding:"omitempty,url"`
	Category *string `json:"category" binding:"omitempty,oneof=medical research education technology other"`
	Status   *string `json:"status" binding:"omitempty,oneof=ongoing completed planned"`
}

func (r projectUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "title", r.Title)
	setString(f, "summary", r.Summary)
	setString(f, "content", r.Content)
	setString(f, "image_url", r.ImageURL)
	setString(f, "link", r.Link)
	setString(f, "category", r.Category)
	setString(f, "status", r.Status)
	return f
}

func newProjectHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.Project] {
	return &ContentHandler[db.Project]{
		svc:   service.NewContentService[db.Project](gdb),
		label: "Project",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.Project, error) {
			var req projectCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &db.Project{
				Title:    req.Title,
				Summary:  req.Summary,
				Content:  req.Content,
				ImageURL: req.ImageURL,
				Link:     req.Link,
				Category: req.Category,
				Status:   req.Status,
			}, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req projectUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
