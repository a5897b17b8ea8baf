package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type treatmentCreateRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Slug     string `json:"slug" binding:"required,min=2,max=200,slug"`
	Summary  string `json:"summary" binding:"omitempty,max=500"`
	Content  string `json:"content" binding:"omitempty,min=10"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
}

type treatmentUpdateRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=2,max=200"`
	Slug     *string `json:"slug" binding:"omitempty,min=2,max=200,slug"`
	Summary  *string `json:"summary" binding:"omitempty,max=500"`
	Content  *string `json:"content" binding:"omitempty,min=10"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,url"`
}

func (r treatmentUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "title", r.Title)
	setString(f, "slug", r.Slug)
	setString(f, "summary", r.Summary)
	setString(f, "content", r.Content)
	setString(f, "image_url", r.ImageURL)
	return f
}

func newTreatmentHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.Treatment] {
	return &ContentHandler[db.Treatment]{
		svc:   service.NewContentService[db.Treatment](gdb),
		label: "Treatment",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.Treatment, error) {
			var req treatmentCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &db.Treatment{
				Title:    req.Title,
				Slug:     req.Slug,
				Summary:  req.Summary,
				Content:  req.Content,
				ImageURL: req.ImageURL,
			}, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req treatmentUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
