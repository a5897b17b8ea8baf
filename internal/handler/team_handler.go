package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type teamCreateRequest struct {
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Title    string   `json:"title" binding:"required,min=2,max=200"`
	Bio      string   `json:"bio" binding:"omitempty,min=10"`
	ImageURL string   `json:"imageUrl" binding:"omitempty,url"`
	Order    *flexInt `json:"order"`
}

type teamUpdateRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Title    *string  `json:"title" binding:"omitempty,min=2,max=200"`
	Bio      *string  `json:"bio" binding:"omitempty,min=10"`
	ImageURL *string  `json:"imageUrl" binding:"omitempty,url"`
	Order    *flexInt `json:"order"`
}

func (r teamUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "name", r.Name)
	setString(f, "title", r.Title)
	setString(f, "bio", r.Bio)
	setString(f, "image_url", r.ImageURL)
	setInt(f, "order", r.Order)
	return f
}

// newTeamHandler wires the team member entity. Listing follows the
// explicit order column, not creation time.
func newTeamHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.Team] {
	return &ContentHandler[db.Team]{
		svc:   service.NewOrderedContentService[db.Team](gdb, "order"),
		label: "Team",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.Team, error) {
			var req teamCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			item := &db.Team{
				Name:     req.Name,
				Title:    req.Title,
				Bio:      req.Bio,
				ImageURL: req.ImageURL,
			}
			if req.Order != nil {
				item.Order = int(*req.Order)
			}
			return item, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req teamUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
