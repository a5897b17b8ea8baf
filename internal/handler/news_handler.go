package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type newsCreateRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Summary  string `json:"summary" binding:"omitempty,min=10"`
	Content  string `json:"content" binding:"omitempty"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
}

type newsUpdateRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=2,max=200"`
	Summary  *string `json:"summary" binding:"omitempty,min=10"`
	Content  *string `json:"content" binding:"omitempty"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,url"`
}

func (r newsUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "title", r.Title)
	setString(f, "summary", r.Summary)
	setString(f, "content", r.Content)
	setString(f, "image_url", r.ImageURL)
	return f
}

func newNewsHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.News] {
	return &ContentHandler[db.News]{
		svc:   service.NewContentService[db.News](gdb),
		label: "News",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.News, error) {
			var req newsCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &db.News{
				Title:    req.Title,
				Summary:  req.Summary,
				Content:  req.Content,
				ImageURL: req.ImageURL,
			}, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req newsUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
