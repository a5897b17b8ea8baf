package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxUploadSize  = 10 << 20 // 10 MiB per file
	maxUploadCount = 10
)

type uploadedFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
	URL          string `json:"url"`
	Path         string `json:"path"`
}

type storedFile struct {
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url"`
	Path      string    `json:"path"`
}

// UploadFile stores a single multipart file under a generated unique name
// and returns its public URL. Any content type is accepted.
func (a *API) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Dosya yüklenmedi"})
		return
	}

	stored, err := a.saveUpload(c, file)
	if err != nil {
		a.uploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Dosya başarıyla yüklendi",
		"file":    stored,
	})
}

// UploadFiles stores up to ten multipart files in one call.
func (a *API) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Dosya yüklenmedi"})
		return
	}

	files := form.File["files"]
	if len(files) > maxUploadCount {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("En fazla %d dosya yüklenebilir", maxUploadCount),
		})
		return
	}

	uploaded := make([]uploadedFile, 0, len(files))
	for _, file := range files {
		stored, err := a.saveUpload(c, file)
		if err != nil {
			a.uploadError(c, err)
			return
		}
		uploaded = append(uploaded, stored)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d dosya başarıyla yüklendi", len(uploaded)),
		"files":   uploaded,
	})
}

// DeleteFile removes a stored file by its generated name.
func (a *API) DeleteFile(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	if filename == "." || filename == ".." || filename == "/" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz dosya adı"})
		return
	}

	path := filepath.Join(a.uploadDir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Dosya bulunamadı"})
		return
	}

	if err := os.Remove(path); err != nil {
		a.log.Error().Err(err).Str("file", filename).Msg("file delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Dosya silinirken hata oluştu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Dosya başarıyla silindi"})
}

// ListFiles enumerates every stored file with size and creation time.
func (a *API) ListFiles(c *gin.Context) {
	entries, err := os.ReadDir(a.uploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusOK, gin.H{"success": true, "count": 0, "files": []storedFile{}})
			return
		}
		a.log.Error().Err(err).Msg("file list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Dosya listesi alınırken hata oluştu"})
		return
	}

	files := make([]storedFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, storedFile{
			Filename:  entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
			URL:       a.publicBaseURL + a.uploadURLPath + "/" + entry.Name(),
			Path:      a.uploadURLPath + "/" + entry.Name(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(files), "files": files})
}

var errFileTooLarge = fmt.Errorf("file exceeds %d bytes", maxUploadSize)

func (a *API) saveUpload(c *gin.Context, file *multipart.FileHeader) (uploadedFile, error) {
	if file.Size > maxUploadSize {
		return uploadedFile{}, errFileTooLarge
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		return uploadedFile{}, err
	}

	ext := filepath.Ext(file.Filename)
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(a.uploadDir, name)); err != nil {
		return uploadedFile{}, err
	}

	return uploadedFile{
		Filename:     name,
		OriginalName: file.Filename,
		Size:         file.Size,
		Mimetype:     file.Header.Get("Content-Type"),
		URL:          a.publicBaseURL + a.uploadURLPath + "/" + name,
		Path:         a.uploadURLPath + "/" + name,
	}, nil
}

func (a *API) uploadError(c *gin.Context, err error) {
	if err == errFileTooLarge {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Dosya boyutu 10MB sınırını aşıyor"})
		return
	}
	a.log.Error().Err(err).Msg("file upload failed")
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Dosya yüklenirken hata oluştu"})
}
