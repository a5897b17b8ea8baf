package handler

import (
	"github.com/anatolianspine/clinic-api/internal/config"
	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/anatolianspine/clinic-api/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers. One instance is built
// at startup and mounted by the router.
type API struct {
	db     *gorm.DB
	log    zerolog.Logger
	mailer service.Mailer

	Team        *ContentHandler[db.Team]
	Treatments  *ContentHandler[db.Treatment]
	Projects    *ContentHandler[db.Project]
	Sponsors    *ContentHandler[db.Sponsor]
	Researches  *ContentHandler[db.Research]
	Media       *ContentHandler[db.MediaItem]
	Innovations *ContentHandler[db.Innovation]
	News        *ContentHandler[db.News]
	Faq         *ContentHandler[db.Faq]
	Education   *ContentHandler[db.Education]

	uploadDir     string
	uploadURLPath string
	publicBaseURL string
	siteBaseURL   string
	debug         bool
}

// NewAPI constructs the handler set with shared services.
func NewAPI(gdb *gorm.DB, log zerolog.Logger, mailer service.Mailer, cfg config.AppConfig) *API {
	debug := cfg.GinMode != "release"

	return &API{
		db:     gdb,
		log:    log,
		mailer: mailer,

		Team:        newTeamHandler(gdb, log, debug),
		Treatments:  newTreatmentHandler(gdb, log, debug),
		Projects:    newProjectHandler(gdb, log, debug),
		Sponsors:    newSponsorHandler(gdb, log, debug),
		Researches:  newResearchHandler(gdb, log, debug),
		Media:       newMediaHandler(gdb, log, debug),
		Innovations: newInnovationHandler(gdb, log, debug),
		News:        newNewsHandler(gdb, log, debug),
		Faq:         newFaqHandler(gdb, log, debug),
		Education:   newEducationHandler(gdb, log, debug),

		uploadDir:     cfg.UploadDir,
		uploadURLPath: cfg.UploadURLPath,
		publicBaseURL: cfg.PublicBaseURL,
		siteBaseURL:   cfg.SiteBaseURL,
		debug:         debug,
	}
}
