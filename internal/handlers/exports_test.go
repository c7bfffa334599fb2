package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func upload(t *testing.T, field, content string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, "catalog.yaml")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	part.Write([]byte(content))
	mw.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/catalog/import", &body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())

	ImportCatalogHandler(c)
	return w
}

func TestExportThenImportCatalog(t *testing.T) {
	setupHandlerTestDB(t)
	saveCombination(t, "Marino y cian", "two_tone", "#000080", "#00FFFF")

	w := call(t, ExportCatalogHandler, "GET", "/api/catalog/export", nil)
	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "catalog-") {
		t.Errorf("Expected attachment header, got %q", w.Header().Get("Content-Disposition"))
	}
	exported := w.Body.String()
	if !strings.Contains(exported, "Marino y cian") {
		t.Fatalf("Export missing combination:\n%s", exported)
	}

	// same catalog: everything is skipped
	w = upload(t, "file", exported)
	if w.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["imported"].(float64) != 0 || len(body["skipped"].([]interface{})) != 1 {
		t.Errorf("Expected one skipped combination, got %v", body)
	}

	// fresh catalog: imported
	setupHandlerTestDB(t)
	w = upload(t, "file", exported)
	if body := decode(t, w); body["imported"].(float64) != 1 {
		t.Errorf("Expected one imported combination, got %v", body)
	}
}

func TestImportCatalogRejectsBadInput(t *testing.T) {
	setupHandlerTestDB(t)

	if w := upload(t, "other", "version: 1"); w.Code != 400 {
		t.Errorf("Expected 400 for missing file field, got %d", w.Code)
	}
	if w := upload(t, "file", "version: 99\ncombinations: []\n"); w.Code != 400 {
		t.Errorf("Expected 400 for unsupported version, got %d", w.Code)
	}
}
