package handler

import (
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type faqCreateRequest struct {
	Question string   `json:"question" binding:"required,min=5,max=500"`
	Answer   string   `json:"answer" binding:"required,min=5,max=2000"`
	Category string   `json:"category" binding:"omitempty,oneof=general treatment appointment surgery payment insurance"`
	Order    *flexInt `json:"order"`
	Status   string   `json:"status" binding:"omitempty,oneof=active inactive"`
}

type faqUpdateRequest struct {
	Question *string  `json:"question" binding:"omitempty,min=5,max=500"`
	Answer   *string  `json:"answer" binding:"omitempty,min=5,max=2000"`
	Category *string  `json:"category" binding:"omitempty,oneof=general treatment appointment surgery payment insurance"`
	Order    *flexInt `json:"order"`
	Status   *string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r faqUpdateRequest) fields() map[string]any {
	f := map[string]any{}
	setString(f, "question", r.Question)
	setString(f, "answer", r.Answer)
	setString(f, "category", r.Category)
	setInt(f, "order", r.Order)
	setString(f, "status", r.Status)
	return f
}

// newFaqHandler wires the FAQ entity. The order field is stored for
// clients; listing still follows creation time like the other entities.
func newFaqHandler(gdb *gorm.DB, log zerolog.Logger, debug bool) *ContentHandler[db.Faq] {
	return &ContentHandler[db.Faq]{
		svc:   service.NewContentService[db.Faq](gdb),
		label: "FAQ",
		log:   log,
		debug: debug,
		create: func(c *gin.Context) (*db.Faq, error) {
			var req faqCreateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			item := &db.Faq{
				Question: req.Question,
				Answer:   req.Answer,
				Category: req.Category,
				Status:   req.Status,
			}
			if req.Order != nil {
				item.Order = int(*req.Order)
			}
			return item, nil
		},
		update: func(c *gin.Context) (map[string]any, error) {
			var req faqUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return req.fields(), nil
		},
	}
}
