package handler

import (
	"errors"
	"net/http"

	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionAdminKey = "admin_id"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the admin credentials and establishes a session. The
// response never reveals whether the username or the password was wrong.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Kullanıcı adı ve şifre gereklidir")
		return
	}

	var admin db.Admin
	if err := a.db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusUnauthorized, "Geçersiz kullanıcı adı veya şifre")
			return
		}
		a.log.Error().Err(err).Msg("admin lookup failed")
		respondError(c, http.StatusInternalServerError, "Giriş işlemi sırasında bir hata oluştu")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Geçersiz kullanıcı adı veya şifre")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionAdminKey, admin.ID)
	if err := session.Save(); err != nil {
		a.log.Error().Err(err).Msg("session save failed")
		respondError(c, http.StatusInternalServerError, "Giriş işlemi sırasında bir hata oluştu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Giriş başarılı",
		"admin":   gin.H{"id": admin.ID, "username": admin.Username},
	})
}

// Logout destroys the current session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	if err := session.Save(); err != nil {
		a.log.Error().Err(err).Msg("session destroy failed")
		respondError(c, http.StatusInternalServerError, "Çıkış işlemi sırasında bir hata oluştu")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Başarıyla çıkış yapıldı"})
}

// CheckSession reports the logged-in admin, or 401 when the session is
// missing or stale.
func (a *API) CheckSession(c *gin.Context) {
	session := sessions.Default(c)
	adminID, ok := session.Get(sessionAdminKey).(uint)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Oturum bulunamadı")
		return
	}

	var admin db.Admin
	if err := a.db.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusUnauthorized, "Oturum bulunamadı")
			return
		}
		a.log.Error().Err(err).Msg("session admin lookup failed")
		respondError(c, http.StatusInternalServerError, "Oturum kontrolü sırasında bir hata oluştu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"admin": gin.H{"id": admin.ID, "username": admin.Username},
	})
}

// AuthRequired blocks requests without a valid admin session. Applied to
// every mutating content route.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if _, ok := session.Get(sessionAdminKey).(uint); !ok {
			respondError(c, http.StatusUnauthorized, "Bu işlem için giriş yapmanız gerekiyor")
			c.Abort()
			return
		}
		c.Next()
	}
}
