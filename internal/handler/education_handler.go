package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type educationCreateRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Summary  string `json:"summary" binding:"omitempty,min=10"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
	Link     string `json:"link" binding:"omitempty,url"`
}

type educationUpdateRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=2,max=200"`
	Summary  *string `json:"summary" binding:"omitempty,min=10"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,url"`
	Link     *string `json:"link" binding:"omitempty,url"`
}

func (r educationUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "title", r.Title)
	setString(f, "summary", r.Summary)
	setString(f, "image_url", r.ImageURL)
	setString(f, "link", r.Link)
	return f
}

func newEducationHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.Education] {
	return &ContentHandler[db.Education]{
		svc:   service.NewContentService[db.Education](gdb),
		label: "Education",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.Education, error) {
			var req educationCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &db.Education{
				Title:    req.Title,
				Summary:  req.Summary,
				ImageURL: req.ImageURL,
				Link:     req.Link,
			}, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req educationUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
