package router

import (
	"github.com/anatolianspine/clinic-api/internal/config"
	"github.com/anatolianspine/clinic-api/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const sessionName = "clinic_session"

// Setup wires middleware and mounts every route module on a fresh Gin
// engine.
func Setup(api *handler.API, cfg config.AppConfig, log zerolog.Logger) (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	}))
	r.Use(corsMiddleware(cfg))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(sessionName, store))

	limits, err := newLimiters(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r.GET("/health", api.Health)
	r.GET("/sitemap.xml", api.Sitemap)
	r.GET("/robots.txt", api.Robots)

	// Uploaded files are served directly from the upload directory.
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	apiGroup := r.Group("/api", limits.General())

	admin := apiGroup.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)
		admin.GET("/session", api.CheckSession)
	}

	mountContent(apiGroup, "/team", api.Team, false)
	mountContent(apiGroup, "/treatments", api.Treatments, true)
	mountContent(apiGroup, "/projects", api.Projects, false)
	mountContent(apiGroup, "/sponsors", api.Sponsors, false)
	mountContent(apiGroup, "/researches", api.Researches, false)
	mountContent(apiGroup, "/media", api.Media, false)
	mountContent(apiGroup, "/innovations", api.Innovations, false)
	mountContent(apiGroup, "/news", api.News, false)
	mountContent(apiGroup, "/faq", api.Faq, false)
	mountContent(apiGroup, "/education", api.Education, false)

	apiGroup.POST("/contact", limits.Form(), api.SubmitContact)
	apiGroup.POST("/appointment", limits.Form(), api.SubmitAppointment)

	upload := apiGroup.Group("/upload")
	{
		upload.POST("", api.UploadFile)
		upload.POST("/multiple", api.UploadFiles)
		upload.GET("/list", api.ListFiles)
		upload.DELETE("/:filename", api.DeleteFile)
	}

	return r, nil
}

// mountContent binds the uniform CRUD surface of one entity. Entities with
// a slug use it as the read key; mutating routes always address records by
// id and sit behind the auth gate.
func mountContent[T any](rg *gin.RouterGroup, path string, h *handler.ContentHandler[T], bySlug bool) {
	g := rg.Group(path)
	g.GET("", h.List)
	if bySlug {
		// Gin requires a single param name per position, so mutating
		// routes share the :slug segment and parse it as an id.
		g.GET("/:slug", h.GetBySlug)
	} else {
		g.GET("/:id", h.GetByID)
	}

	auth := g.Group("", handler.AuthRequired())
	if bySlug {
		auth.POST("", h.Create)
		auth.PUT("/:slug", h.Update)
		auth.DELETE("/:slug", h.Delete)
	} else {
		auth.POST("", h.Create)
		auth.PUT("/:id", h.Update)
		auth.DELETE("/:id", h.Delete)
	}
}

func corsMiddleware(cfg config.AppConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}

	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		// Credentials and a wildcard origin cannot be combined, so echo
		// the caller's origin instead.
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}

	return cors.New(corsCfg)
}
