package handler

import (
	"net/http"
	"strings"

	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,trphone"`
	Subject string `json:"subject" binding:"required,min=3,max=200"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

type appointmentRequest struct {
	FirstName     string `json:"firstName" binding:"required,min=2,max=100"`
	LastName      string `json:"lastName" binding:"required,min=2,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,trphone"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	PreferredTime string `json:"preferredTime" binding:"omitempty,max=50"`
	Department    string `json:"department" binding:"omitempty,max=200"`
	Message       string `json:"message" binding:"omitempty,max=2000"`
	Consent       bool   `json:"consent"`
}

// SubmitContact validates a contact form submission and forwards it to the
// clinic inbox.
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz veri")
		return
	}

	msg := service.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if err := a.mailer.SendContactMail(msg); err != nil {
		a.log.Error().Err(err).Msg("contact mail delivery failed")
		respondError(c, http.StatusInternalServerError, "Mesaj gönderilirken bir hata oluştu. Lütfen daha sonra tekrar deneyin.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Mesajınız gönderildi. En kısa sürede size döneceğiz.",
	})
}

// SubmitAppointment validates an appointment request and forwards it to
// the clinic inbox with the appointment-specific formatting.
func (a *API) SubmitAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Geçersiz veri")
		return
	}

	appointment := service.AppointmentRequest{
		Name:          strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		PreferredDate: strings.TrimSpace(req.PreferredDate),
		PreferredTime: strings.TrimSpace(req.PreferredTime),
		Department:    strings.TrimSpace(req.Department),
		Message:       strings.TrimSpace(req.Message),
	}
	if err := a.mailer.SendAppointmentMail(appointment); err != nil {
		a.log.Error().Err(err).Msg("appointment mail delivery failed")
		respondError(c, http.StatusInternalServerError, "Randevu talebi gönderilirken bir hata oluştu. Lütfen daha sonra tekrar deneyin.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Randevu talebiniz alındı. En kısa sürede size geri dönüş yapılacaktır.",
	})
}
