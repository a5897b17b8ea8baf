package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type sponsorCreateRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"omitempty,min=10"`
	Logo        string `json:"logo" binding:"omitempty,url"`
	LogoURL     string `json:"logoUrl" binding:"omitempty,url"`
	Website     string `json:"website" binding:"omitempty,url"`
	Category    string `json:"category" binding:"omitempty,oneof=technology pharmaceutical equipment education research healthcare"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type sponsorUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description" binding:"omitempty,min=10"`
	Logo        *string `json:"logo" binding:"omitempty,url"`
	LogoURL     *string `json:"logoUrl" binding:"omitempty,url"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Category    *string `json:"category" binding:"omitempty,oneof=technology pharmaceutical equipment education research healthcare"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r sponsorUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "name", r.Name)
	setString(f, "description", r.Description)
	setString(f, "logo", r.Logo)
	setString(f, "logo_url", r.LogoURL)
	setString(f, "website", r.Website)
	setString(f, "category", r.Category)
	setString(f, "status", r.Status)
	return f
}

func newSponsorHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.Sponsor] {
	return &ContentHandler[db.Sponsor]{
		svc:   service.NewContentService[db.Sponsor](gdb),
		label: "Sponsor",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.Sponsor, error) {
			var req sponsorCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &db.Sponsor{
				Name:        req.Name,
				Description: req.Description,
				Logo:        req.Logo,
				LogoURL:     req.LogoURL,
				Website:     req.Website,
				Category:    req.Category,
				Status:      req.Status,
			}, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req sponsorUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
