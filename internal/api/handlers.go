package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/youruser/certgen/internal/cert"
	"github.com/youruser/certgen/internal/detect"
	"github.com/youruser/certgen/internal/roster"
	"github.com/youruser/certgen/internal/util"
)

// Single-operator session tokens, valid for the process lifetime.
// The gate is active only when CERTGEN_PASSWORD is set.
var (
	tokensMu sync.Mutex
	tokens   = map[string]bool{}
)

func operatorPassword() string {
	return os.Getenv("CERTGEN_PASSWORD")
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pw := operatorPassword()
	if pw == "" || req.Password != pw {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	tok := hex.EncodeToString(buf)
	tokensMu.Lock()
	tokens[tok] = true
	tokensMu.Unlock()
	c.JSON(http.StatusOK, gin.H{"token": tok})
}

func requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if operatorPassword() == "" {
			c.Next()
			return
		}
		tok := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		tokensMu.Lock()
		ok := tokens[tok]
		tokensMu.Unlock()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

// detect scans a base directory for conventional input files
func detectHandler(c *gin.Context) {
	dir := c.Query("dir")
	if dir == "" {
		dir = "."
	}
	c.JSON(http.StatusOK, detect.Scan(dir))
}

type generateRequest struct {
	TemplatePath  string            `json:"template_path"`
	RosterPath    string            `json:"roster_path"`
	SignaturePath string            `json:"signature_path"`
	FontPaths     map[string]string `json:"font_paths"`
	OutputDir     string            `json:"output_dir"`
	Config        *cert.Config      `json:"config"`
}

// generate runs one full batch and reports the produced artifacts.
func generateHandler(c *gin.Context) {
	var req generateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := cert.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := roster.Load(req.RosterPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := imaging.Open(req.TemplatePath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "template not readable: " + err.Error()})
		return
	}

	fontPaths := make(map[cert.FontRole]string, len(req.FontPaths))
	for role, path := range req.FontPaths {
		fontPaths[cert.FontRole(role)] = path
	}
	fonts := cert.LoadFontSet(fontPaths)

	outDir := req.OutputDir
	if outDir == "" {
		outDir, err = os.MkdirTemp("", "cert_output_")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	created, zipPath, err := cert.RenderBatch(rows, template, fonts, req.SignaturePath, outDir, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	artifacts := make([]string, len(created))
	for i, p := range created {
		artifacts[i] = filepath.Base(p)
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(created),
		"artifacts":  artifacts,
		"archive":    filepath.Base(zipPath),
		"output_dir": outDir,
	})
}

// download streams one produced file back from an output directory.
func downloadHandler(c *gin.Context) {
	name := c.Param("name")
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid artifact name"})
		return
	}
	dir := c.Query("dir")
	if dir == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dir query parameter required"})
		return
	}
	path := filepath.Join(dir, name)
	if !util.FileExists(path) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such artifact"})
		return
	}
	c.FileAttachment(path, name)
}
