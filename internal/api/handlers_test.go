package api

import (
	"bytes"
	"encoding/json"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doJSON(t, newRouter(), http.MethodGet, "/api/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("health = %d, want 200", w.Code)
	}
}

func TestLoginGate(t *testing.T) {
	t.Setenv("CERTGEN_PASSWORD", "hunter2")
	r := newRouter()

	if w := doJSON(t, r, http.MethodGet, "/api/detect", nil, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("ungated detect = %d, want 401", w.Code)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{"password": "wrong"}, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password login = %d, want 401", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{"password": "hunter2"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d, want 200", w.Code)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("no token in login response: %s", w.Body.String())
	}

	if w := doJSON(t, r, http.MethodGet, "/api/detect", nil, resp.Token); w.Code != http.StatusOK {
		t.Fatalf("gated detect with token = %d, want 200", w.Code)
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	t.Setenv("CERTGEN_PASSWORD", "")
	r := newRouter()

	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.png")
	template := imaging.New(800, 500, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if err := imaging.Save(template, templatePath); err != nil {
		t.Fatal(err)
	}
	rosterPath := filepath.Join(dir, "attendees.csv")
	csv := "Name,Webinar Name,Webinar Date\nAda Lovelace,Intro to ML,2024-01-10\n"
	if err := os.WriteFile(rosterPath, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")

	w := doJSON(t, r, http.MethodPost, "/api/generate", generateRequest{
		TemplatePath: templatePath,
		RosterPath:   rosterPath,
		OutputDir:    outDir,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("generate = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Count     int      `json:"count"`
		Artifacts []string `json:"artifacts"`
		Archive   string   `json:"archive"`
		OutputDir string   `json:"output_dir"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Count != 1 || len(resp.Artifacts) != 1 {
		t.Fatalf("count = %d, artifacts = %v, want one", resp.Count, resp.Artifacts)
	}
	if resp.Artifacts[0] != "Intro_to_ML_2024-01-10_Ada_Lovelace.png" {
		t.Errorf("artifact = %q", resp.Artifacts[0])
	}
	if resp.Archive != "certificates.zip" {
		t.Errorf("archive = %q, want certificates.zip", resp.Archive)
	}

	dl := doJSON(t, r, http.MethodGet, "/api/download/"+resp.Archive+"?dir="+resp.OutputDir, nil, "")
	if dl.Code != http.StatusOK {
		t.Fatalf("download = %d", dl.Code)
	}
	if dl.Body.Len() == 0 {
		t.Error("downloaded archive is empty")
	}
}

func TestGenerateMissingColumn(t *testing.T) {
	t.Setenv("CERTGEN_PASSWORD", "")
	r := newRouter()

	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.png")
	if err := imaging.Save(imaging.New(100, 100, color.NRGBA{A: 255}), templatePath); err != nil {
		t.Fatal(err)
	}
	rosterPath := filepath.Join(dir, "attendees.csv")
	if err := os.WriteFile(rosterPath, []byte("Name,Webinar Name\nAda,ML\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/generate", generateRequest{
		TemplatePath: templatePath,
		RosterPath:   rosterPath,
		OutputDir:    t.TempDir(),
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("generate with bad roster = %d, want 400", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Webinar Date")) {
		t.Errorf("error does not name the missing column: %s", w.Body.String())
	}
}

func TestDownloadRejectsTraversal(t *testing.T) {
	t.Setenv("CERTGEN_PASSWORD", "")
	r := newRouter()

	w := doJSON(t, r, http.MethodGet, "/api/download/..%2Fsecret?dir=/tmp", nil, "")
	if w.Code == http.StatusOK {
		t.Error("path traversal served a file")
	}
}
