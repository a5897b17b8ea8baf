package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/gin-gonic/gin"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapRow is the minimal projection read from every content table.
type sitemapRow struct {
	ID        uint
	Slug      string
	CreatedAt time.Time
}

type sitemapSection struct {
	model      any
	pathPrefix string
	priority   string
	changeFreq string
	useSlug    bool
}

var staticPages = []struct {
	path       string
	priority   string
	changeFreq string
}{
	{"/", "1.0", "daily"},
	{"/about", "0.9", "monthly"},
	{"/team", "0.8", "weekly"},
	{"/treatments", "0.9", "weekly"},
	{"/research", "0.9", "weekly"},
	{"/innovation", "0.8", "weekly"},
	{"/education", "0.8", "weekly"},
	{"/media", "0.7", "weekly"},
	{"/sponsors", "0.7", "monthly"},
	{"/projects", "0.8", "weekly"},
	{"/news", "0.8", "daily"},
	{"/appointment", "0.9", "monthly"},
	{"/contact", "0.8", "monthly"},
	{"/faq", "0.7", "monthly"},
}

// Sitemap renders the search-engine sitemap: the static pages plus one
// entry per content record, slug-keyed for treatments and id-keyed for
// everything else. Callers may cache the result for an hour.
func (a *API) Sitemap(c *gin.Context) {
	sections := []sitemapSection{
		{&db.Treatment{}, "/treatments", "0.7", "monthly", true},
		{&db.Team{}, "/team", "0.6", "monthly", false},
		{&db.Research{}, "/research", "0.8", "monthly", false},
		{&db.Innovation{}, "/innovation", "0.7", "monthly", false},
		{&db.Education{}, "/education", "0.7", "monthly", false},
		{&db.MediaItem{}, "/media", "0.6", "weekly", false},
		{&db.Sponsor{}, "/sponsors", "0.5", "yearly", false},
		{&db.Project{}, "/projects", "0.7", "monthly", false},
		{&db.News{}, "/news", "0.6", "monthly", false},
	}

	today := time.Now().Format("2006-01-02")
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        a.siteBaseURL + page.path,
			LastMod:    today,
			ChangeFreq: page.changeFreq,
			Priority:   page.priority,
		})
	}

	for _, section := range sections {
		entries, err := a.sitemapEntries(section)
		if err != nil {
			a.log.Error().Err(err).Str("section", section.pathPrefix).Msg("sitemap generation failed")
			c.Data(http.StatusInternalServerError, "application/xml; charset=utf-8",
				[]byte(xml.Header+"<error>Sitemap generation failed</error>"))
			return
		}
		set.URLs = append(set.URLs, entries...)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		a.log.Error().Err(err).Msg("sitemap marshal failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

func (a *API) sitemapEntries(section sitemapSection) ([]sitemapURL, error) {
	var rows []sitemapRow
	query := a.db.Model(section.model)
	if section.useSlug {
		query = query.Select("slug", "created_at")
	} else {
		query = query.Select("id", "created_at")
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]sitemapURL, 0, len(rows))
	for _, row := range rows {
		key := fmt.Sprint(row.ID)
		if section.useSlug {
			key = row.Slug
		}
		entries = append(entries, sitemapURL{
			Loc:        a.siteBaseURL + section.pathPrefix + "/" + key,
			LastMod:    row.CreatedAt.Format("2006-01-02"),
			ChangeFreq: section.changeFreq,
			Priority:   section.priority,
		})
	}
	return entries, nil
}

// Robots renders the robots exclusion document.
func (a *API) Robots(c *gin.Context) {
	body := fmt.Sprintf(`User-agent: *
Allow: /

# Sitemap
Sitemap: %s/sitemap.xml

# Disallow admin pages
User-agent: *
Disallow: /admin
Disallow: /api

# Crawl delay
Crawl-delay: 1`, a.siteBaseURL)

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
