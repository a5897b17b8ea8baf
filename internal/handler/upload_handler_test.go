package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newUploadEngine(t *testing.T) (*gin.Engine, *API) {
	t.Helper()
	api, _, _ := newTestAPI(t)

	r := gin.New()
	r.POST("/api/upload", api.UploadFile)
	r.POST("/api/upload/multiple", api.UploadFiles)
	r.GET("/api/upload/list", api.ListFiles)
	r.DELETE("/api/upload/:filename", api.DeleteFile)
	return r, api
}

func multipartBody(t *testing.T, field string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("failed to build multipart form: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart form: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestUploadFileStoresWithGeneratedName(t *testing.T) {
	r, api := newUploadEngine(t)

	body, contentType := multipartBody(t, "file", map[string]string{"photo.jpg": "fake image bytes"})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool         `json:"success"`
		File    uploadedFile `json:"file"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
	if resp.File.OriginalName != "photo.jpg" {
		t.Fatalf("original name lost: %+v", resp.File)
	}
	if resp.File.Filename == "photo.jpg" || !strings.HasSuffix(resp.File.Filename, ".jpg") {
		t.Fatalf("expected generated name keeping extension, got %q", resp.File.Filename)
	}
	if !strings.HasPrefix(resp.File.URL, "http://localhost:4000/uploads/") {
		t.Fatalf("unexpected url: %q", resp.File.URL)
	}

	if _, err := os.Stat(filepath.Join(api.uploadDir, resp.File.Filename)); err != nil {
		t.Fatalf("stored file missing on disk: %v", err)
	}
}

func TestUploadWithoutFileRejected(t *testing.T) {
	r, _ := newUploadEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Dosya yüklenmedi") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestUploadMultipleFiles(t *testing.T) {
	r, _ := newUploadEngine(t)

	body, contentType := multipartBody(t, "files", map[string]string{
		"a.png": "first",
		"b.pdf": "second",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/upload/multiple", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool           `json:"success"`
		Files   []uploadedFile `json:"files"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(resp.Files))
	}
}

func TestListAndDeleteFile(t *testing.T) {
	r, api := newUploadEngine(t)

	name := "1693000000000-test.txt"
	if err := os.WriteFile(filepath.Join(api.uploadDir, name), []byte("hello"), 0o644); err != nil {
		t.Fatalf("failed to seed upload dir: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/upload/list", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %d", w.Code)
	}
	var listResp struct {
		Count int          `json:"count"`
		Files []storedFile `json:"files"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if listResp.Count != 1 || listResp.Files[0].Filename != name {
		t.Fatalf("unexpected list: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/upload/"+name, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", w.Code, w.Body.String())
	}
	if _, err := os.Stat(filepath.Join(api.uploadDir, name)); !os.IsNotExist(err) {
		t.Fatal("file still present after delete")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/upload/"+name, nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing file, got %d", w.Code)
	}
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	r, api := newUploadEngine(t)

	outside := filepath.Join(filepath.Dir(api.uploadDir), "outside.txt")
	if err := os.WriteFile(outside, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("failed to create outside file: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/upload/..%2Foutside.txt", nil))
	if w.Code == http.StatusOK {
		t.Fatalf("traversal delete must not succeed: %d %s", w.Code, w.Body.String())
	}
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("file outside upload dir was removed: %v", err)
	}
}
