package handler

import (
	"fmt"
	"testing"
	"time"

	"github.com/anatolianspine/clinic-api/internal/config"
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubMailer records deliveries instead of talking to an SMTP server.
type stubMailer struct {
	contacts     []service.ContactMessage
	appointments []service.AppointmentRequest
	fail         bool
}

func (m *stubMailer) SendContactMail(msg service.ContactMessage) error {
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	m.contacts = append(m.contacts, msg)
	return nil
}

func (m *stubMailer) SendAppointmentMail(req service.AppointmentRequest) error {
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	m.appointments = append(m.appointments, req)
	return nil
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.Admin{},
		&db.Team{},
		&db.Treatment{},
		&db.Project{},
		&db.Sponsor{},
		&db.Research{},
		&db.MediaItem{},
		&db.Innovation{},
		&db.News{},
		&db.Faq{},
		&db.Education{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func newTestAPI(t *testing.T) (*API, *gorm.DB, *stubMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := RegisterValidators(); err != nil {
		t.Fatalf("failed to register validators: %v", err)
	}

	gdb := setupHandlerTestDB(t)
	mailer := &stubMailer{}
	cfg := config.AppConfig{
		GinMode:       "release",
		UploadDir:     t.TempDir(),
		UploadURLPath: "/uploads",
		PublicBaseURL: "http://localhost:4000",
		SiteBaseURL:   "https://clinic.example.com",
	}

	return NewAPI(gdb, zerolog.Nop(), mailer, cfg), gdb, mailer
}

// newSessionEngine builds a bare engine with the session middleware the
// auth handlers depend on.
func newSessionEngine() *gin.Engine {
	r := gin.New()
	r.Use(sessions.Sessions("clinic_session", cookie.NewStore([]byte("test-secret"))))
	return r
}
