package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type researchCreateRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Summary  string `json:"summary" binding:"omitempty,min=10"`
	Content  string `json:"content" binding:"omitempty"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
	Link     string `json:"link" binding:"omitempty,url"`
}

type researchUpdateRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=2,max=200"`
	Summary  *string `json:"summary" binding:"omitempty,min=10"`
	Content  *string `json:"content" binding:"omitempty"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,url"`
	Link     *string `json:"link" binding:"omitempty,url"`
}

func (r researchUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "title", r.Title)
	setString(f, "summary", r.Summary)
	setString(f, "content", r.Content)
	setString(f, "image_url", r.ImageURL)
	setString(f, "link", r.Link)
	return f
}

func newResearchHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.Research] {
	return &ContentHandler[db.Research]{
		svc:   service.NewContentService[db.Research](gdb),
		label: "Research",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.Research, error) {
			var req researchCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &db.Research{
				Title:    req.Title,
				Summary:  req.Summary,
				Content:  req.Content,
				ImageURL: req.ImageURL,
				Link:     req.Link,
			}, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req researchUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
