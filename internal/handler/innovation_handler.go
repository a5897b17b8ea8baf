package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type innovationCreateRequest struct {
	Title     string `json:"title" binding:"required,min=2,max=200"`
	Summary   string `json:"summary" binding:"omitempty,min=10"`
	Content   string `json:"content" binding:"omitempty"`
	Type      string `json:"type" binding:"omitempty,oneof=podcast video article research"`
	Category  string `json:"category" binding:"omitempty,oneof=support education research technology"`
	Status    string `json:"status" binding:"omitempty,oneof=draft published archived"`
	Team      string `json:"team" binding:"omitempty,max=200"`
	StartDate string `json:"startDate" binding:"omitempty,max=50"`
	Image     string `json:"image" binding:"omitempty,url"`
	Link      string `json:"link" binding:"omitempty,url"`
	Tags      string `json:"tags" binding:"omitempty,max=500"`
}

type innovationUpdateRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=2,max=200"`
	Summary   *string `json:"summary" binding:"omitempty,min=10"`
	Content   *string `json:"content" binding:"omitempty"`
	Type      *string `json:"type" binding:"omitempty,oneof=podcast video article research"`
	Category  *string `json:"category" binding:"omitempty,oneof=support education research technology"`
	Status    *string `json:"status" binding:"omitempty,oneof=draft published archived"`
	Team      *string `json:"team" binding:"omitempty,max=200"`
	StartDate *string `json:"startDate" binding:"omitempty,max=50"`
	Image     *string `json:"image" binding:"omitempty,url"`
	Link      *string `json:"link" binding:"omitempty,url"`
	Tags      *string `json:"tags" binding:"omitempty,max=500"`
}

func (r innovationUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "title", r.Title)
	setString(f, "summary", r.Summary)
	setString(f, "content", r.Content)
	setString(f, "type", r.Type)
	setString(f, "category", r.Category)
	setString(f, "status", r.Status)
	setString(f, "team", r.Team)
	setString(f, "start_date", r.StartDate)
	setString(f, "image", r.Image)
	setString(f, "link", r.Link)
	setString(f, "tags", r.Tags)
	return f
}

func newInnovationHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.Innovation] {
	return &ContentHandler[db.Innovation]{
		svc:   service.NewContentService[db.Innovation](gdb),
		label: "Innovation",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.Innovation, error) {
			var req innovationCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &db.Innovation{
				Title:     req.Title,
				Summary:   req.Summary,
				Content:   req.Content,
				Type:      req.Type,
				Category:  req.Category,
				Status:    req.Status,
				Team:      req.Team,
				StartDate: req.StartDate,
				Image:     req.Image,
				Link:      req.Link,
				Tags:      req.Tags,
			}, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req innovationUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
