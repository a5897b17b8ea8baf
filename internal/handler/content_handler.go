package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContentHandler exposes the uniform CRUD surface of one content entity
// over HTTP. Entity specifics (validation, field mapping, list order) are
// supplied by the per-entity constructors; everything else, including the
// response envelope and error-to-status mapping, is shared.
type ContentHandler[T any] struct {
	svc   *service.ContentService[T]
	label string
	log   zerolog.Logger
	debug bool

	// create binds and validates the request body into a new record.
	create func(*gin.Context) (*T, error)
	// update binds the request body into a partial column map.
	update func(*gin.Context) (map[string]any, error)
}

// List responds with every record of the entity.
func (h *ContentHandler[T]) List(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		h.serverError(c, err, fmt.Sprintf("%s listesi alınırken bir hata oluştu", h.label))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": items})
}

// GetByID responds with a single record looked up by numeric id.
func (h *ContentHandler[T]) GetByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz kimlik")
		return
	}

	item, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("%s bulunamadı", h.label))
			return
		}
		h.serverError(c, err, fmt.Sprintf("%s alınırken bir hata oluştu", h.label))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": item})
}

// GetBySlug responds with a single record looked up by slug.
func (h *ContentHandler[T]) GetBySlug(c *gin.Context) {
	item, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("%s bulunamadı", h.label))
			return
		}
		h.serverError(c, err, fmt.Sprintf("%s alınırken bir hata oluştu", h.label))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": item})
}

// Create persists a new record from the validated request body.
func (h *ContentHandler[T]) Create(c *gin.Context) {
	item, err := h.create(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz veri")
		return
	}

	if err := h.svc.Create(item); err != nil {
		if errors.Is(err, service.ErrConflict) {
			respondError(c, http.StatusBadRequest, "Bu değer zaten kullanımda")
			return
		}
		h.serverError(c, err, fmt.Sprintf("%s oluşturulurken bir hata oluştu", h.label))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"message": fmt.Sprintf("%s başarıyla oluşturuldu", h.label),
		"data":    item,
	})
}

// Update applies a partial update; fields absent from the body keep their
// stored values.
func (h *ContentHandler[T]) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz kimlik")
		return
	}

	fields, err := h.update(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz veri")
		return
	}

	item, err := h.svc.Update(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("%s bulunamadı", h.label))
		case errors.Is(err, service.ErrConflict):
			respondError(c, http.StatusBadRequest, "Bu değer zaten kullanımda")
		default:
			h.serverError(c, err, fmt.Sprintf("%s güncellenirken bir hata oluştu", h.label))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": fmt.Sprintf("%s başarıyla güncellendi", h.label),
		"data":    item,
	})
}

// Delete removes a record permanently.
func (h *ContentHandler[T]) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz kimlik")
		return
	}

	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("%s bulunamadı", h.label))
			return
		}
		h.serverError(c, err, fmt.Sprintf("%s silinirken bir hata oluştu", h.label))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": fmt.Sprintf("%s başarıyla silindi", h.label),
	})
}

// serverError logs the full failure and answers with a generic message;
// the detail is only echoed back outside release mode.
func (h *ContentHandler[T]) serverError(c *gin.Context, err error, message string) {
	h.log.Error().Err(err).Str("entity", h.label).Str("path", c.FullPath()).Msg("content operation failed")
	if h.debug {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	respondError(c, http.StatusInternalServerError, message)
}
