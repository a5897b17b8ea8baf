package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anatolianspine/clinic-api/internal/db"
	"github.com/gin-gonic/gin"
)

func TestSitemapContainsStaticAndContentPages(t *testing.T) {
	api, gdb, _ := newTestAPI(t)

	if err := gdb.Create(&db.Treatment{Title: "Skolyoz", Slug: "skolyoz-tedavisi"}).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	news := db.News{Title: "Yeni klinik açılışı"}
	if err := gdb.Create(&news).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	r := gin.New()
	r.GET("/sitemap.xml", api.Sitemap)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/xml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=3600") {
		t.Fatalf("unexpected cache control %q", cc)
	}

	var set struct {
		URLs []struct {
			Loc      string `xml:"loc"`
			Priority string `xml:"priority"`
		} `xml:"url"`
	}
	if err := xml.Unmarshal(w.Body.Bytes(), &set); err != nil {
		t.Fatalf("sitemap is not valid xml: %v", err)
	}

	locs := map[string]string{}
	for _, u := range set.URLs {
		locs[u.Loc] = u.Priority
	}

	if p, ok := locs["https://clinic.example.com/"]; !ok || p != "1.0" {
		t.Fatalf("homepage entry missing or wrong priority: %v", locs)
	}
	if _, ok := locs["https://clinic.example.com/treatments/skolyoz-tedavisi"]; !ok {
		t.Fatal("treatment entry must be slug-keyed")
	}
	if _, ok := locs[fmt.Sprintf("https://clinic.example.com/news/%d", news.ID)]; !ok {
		t.Fatal("news entry must be id-keyed")
	}

	// 14 static pages plus the two records.
	if len(set.URLs) != 16 {
		t.Fatalf("expected 16 urls, got %d", len(set.URLs))
	}
}

func TestRobots(t *testing.T) {
	api, _, _ := newTestAPI(t)

	r := gin.New()
	r.GET("/robots.txt", api.Robots)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"User-agent: *",
		"Sitemap: https://clinic.example.com/sitemap.xml",
		"Disallow: /admin",
		"Disallow: /api",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("robots.txt missing %q:\n%s", want, body)
		}
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=86400") {
		t.Fatalf("unexpected cache control %q", cc)
	}
}
