package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type mediaCreateRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"omitempty,min=10"`
	Content     string `json:"content" binding:"omitempty"`
	Type        string `json:"type" binding:"omitempty,oneof=video image podcast webinar"`
	URL         string `json:"url" binding:"omitempty,url"`
	MediaURL    string `json:"mediaUrl" binding:"omitempty,url"`
	Thumbnail   string `json:"thumbnail" binding:"omitempty,url"`
	PublishDate string `json:"publishDate" binding:"omitempty,datetime=2006-01-02"`
	Category    string `json:"category" binding:"omitempty,oneof=education surgery research patient conference"`
	Status      string `json:"status" binding:"omitempty,oneof=published draft archived"`
}

type mediaUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description" binding:"omitempty,min=10"`
	Content     *string `json:"content" binding:"omitempty"`
	Type        *string `json:"type" binding:"omitempty,oneof=video image podcast webinar"`
	URL         *string `json:"url" binding:"omitempty,url"`
	MediaURL    *string `json:"mediaUrl" binding:"omitempty,url"`
	Thumbnail   *string `json:"thumbnail" binding:"omitempty,url"`
	PublishDate *string `json:"publishDate" binding:"omitempty,datetime=2006-01-02"`
	Category    *string `json:"category" binding:"omitempty,oneof=education surgery research patient conference"`
	Status      *string `json:"status" binding:"omitempty,oneof=published draft archived"`
}

func (r mediaUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "title", r.Title)
	setString(f, "description", r.Description)
	setString(f, "content", r.Content)
	setString(f, "type", r.Type)
	setString(f, "url", r.URL)
	setString(f, "media_url", r.MediaURL)
	setString(f, "thumbnail", r.Thumbnail)
	setString(f, "publish_date", r.PublishDate)
	setString(f, "category", r.Category)
	setString(f, "status", r.Status)
	return f
}

func newMediaHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.MediaItem] {
	return &ContentHandler[db.MediaItem]{
		svc:   service.NewContentService[db.MediaItem](gdb),
		label: "Media",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.MediaItem, error) {
			var req mediaCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &db.MediaItem{
				Title:       req.Title,
				Description: req.Description,
				Content:     req.Content,
				Type:        req.Type,
				URL:         req.URL,
				MediaURL:    req.MediaURL,
				Thumbnail:   req.Thumbnail,
				PublishDate: req.PublishDate,
				Category:    req.Category,
				Status:      req.Status,
			}, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req mediaUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
