package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/CodeSmart-NG/school-service/internal/models"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
	"github.com/CodeSmart-NG/school-service/internal/repositories/inmem"
	"github.com/CodeSmart-NG/school-service/internal/utils"
	"github.com/CodeSmart-NG/school-service/internal/validator"
	"github.com/gin-gonic/gin"
)

func newTestPanel(t *testing.T) (*gin.Engine, *inmem.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := inmem.NewRepository()
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))

	hash, err := HashPassword("sup3r-secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if err := repo.User().Create(context.Background(), &models.User{
		Name:     "Root Admin",
		Email:    "root@codesmart.ng",
		Password: hash,
		Role:     models.RoleSuperadmin,
	}); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	sessions, err := NewSessionManager("test-signing-secret", time.Hour, repo.User())
	if err != nil {
		t.Fatalf("session manager failed: %v", err)
	}

	v := validator.New()
	registry, err := BuildResources(repo, v)
	if err != nil {
		t.Fatalf("build resources failed: %v", err)
	}

	router := gin.New()
	NewPanel(registry, sessions, repo, v, logger, "/admin").Mount(router)
	return router, repo
}

func loginCookie(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(gin.H{"email": "root@codesmart.ng", "password": "sup3r-secret"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func adminRequest(t *testing.T, router *gin.Engine, cookie *http.Cookie, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionManager_RequiresSecret(t *testing.T) {
	repo := inmem.NewRepository()
	if _, err := NewSessionManager("", time.Hour, repo.User()); err == nil {
		t.Fatal("empty signing secret must be rejected")
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	router, _ := newTestPanel(t)

	w := adminRequest(t, router, nil, http.MethodPost, "/admin/login", gin.H{
		"email":    "root@codesmart.ng",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", w.Code)
	}

	w = adminRequest(t, router, nil, http.MethodPost, "/admin/login", gin.H{
		"email":    "nobody@codesmart.ng",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown email, got %d", w.Code)
	}
}

func TestPanel_RequiresSession(t *testing.T) {
	router, _ := newTestPanel(t)

	w := adminRequest(t, router, nil, http.MethodGet, "/admin/resources/messages", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without session, got %d", w.Code)
	}

	bad := &http.Cookie{Name: sessionCookie, Value: "not-a-token"}
	w = adminRequest(t, router, bad, http.MethodGet, "/admin/resources/messages", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with forged cookie, got %d", w.Code)
	}
}

func TestPanel_CourseCRUD(t *testing.T) {
	router, _ := newTestPanel(t)
	cookie := loginCookie(t, router)

	created := adminRequest(t, router, cookie, http.MethodPost, "/admin/resources/courses", gin.H{
		"name":        "Frontend Development",
		"category":    "frontend",
		"duration":    "3 Months",
		"fee":         50000,
		"status":      "active",
		"description": "Learn HTML, CSS, JavaScript and React",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", created.Code, created.Body.String())
	}

	var createResp struct {
		Data models.Course `json:"data"`
	}
	if err := json.Unmarshal(created.Body.Bytes(), &createResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id := createResp.Data.ID
	if id == 0 {
		t.Fatal("created course has no id")
	}

	updated := adminRequest(t, router, cookie, http.MethodPut, "/admin/resources/courses/1", gin.H{
		"fee": 60000,
	})
	if updated.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", updated.Code, updated.Body.String())
	}

	got := adminRequest(t, router, cookie, http.MethodGet, "/admin/resources/courses/1", nil)
	var getResp struct {
		Data models.Course `json:"data"`
	}
	if err := json.Unmarshal(got.Body.Bytes(), &getResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if getResp.Data.Fee != 60000 {
		t.Errorf("expected updated fee 60000, got %v", getResp.Data.Fee)
	}
	if getResp.Data.Name != "Frontend Development" {
		t.Errorf("partial update must keep untouched fields, got %q", getResp.Data.Name)
	}

	deleted := adminRequest(t, router, cookie, http.MethodDelete, "/admin/resources/courses/1", nil)
	if deleted.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", deleted.Code)
	}
	missing := adminRequest(t, router, cookie, http.MethodGet, "/admin/resources/courses/1", nil)
	if missing.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", missing.Code)
	}
}

func TestPanel_CreateCourse_RejectsInvalid(t *testing.T) {
	router, repo := newTestPanel(t)
	cookie := loginCookie(t, router)

	w := adminRequest(t, router, cookie, http.MethodPost, "/admin/resources/courses", gin.H{
		"name":        "Frontend Development",
		"category":    "frontend",
		"duration":    "3 Months",
		"fee":         -100,
		"description": "Learn HTML, CSS, JavaScript and React",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative fee, got %d %s", w.Code, w.Body.String())
	}

	if _, total, _ := repo.Course().List(context.Background(), repositories.CourseFilters{}); total != 0 {
		t.Errorf("rejected course must not be stored, found %d", total)
	}
}

func TestPanel_CreateTestimonial_RejectsInvalid(t *testing.T) {
	router, _ := newTestPanel(t)
	cookie := loginCookie(t, router)

	w := adminRequest(t, router, cookie, http.MethodPost, "/admin/resources/testimonials", gin.H{
		"name":    "Adaeze O.",
		"message": "Great school",
		"rating":  9,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range rating, got %d %s", w.Code, w.Body.String())
	}
}

func TestPanel_UpdateCourse_ValidatesMergedRecord(t *testing.T) {
	router, _ := newTestPanel(t)
	cookie := loginCookie(t, router)

	created := adminRequest(t, router, cookie, http.MethodPost, "/admin/resources/courses", gin.H{
		"name":        "Backend Development",
		"category":    "backend",
		"duration":    "4 Months",
		"fee":         75000,
		"description": "APIs, databases and authentication",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", created.Code, created.Body.String())
	}

	// A partial body that breaks a rule on the merged record fails.
	w := adminRequest(t, router, cookie, http.MethodPut, "/admin/resources/courses/1", gin.H{
		"fee": -1,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for merged invalid fee, got %d %s", w.Code, w.Body.String())
	}

	// A valid partial body still works.
	w = adminRequest(t, router, cookie, http.MethodPut, "/admin/resources/courses/1", gin.H{
		"fee": 80000,
	})
	if w.Code != http.StatusOK {
		t.Errorf("valid partial update failed: %d %s", w.Code, w.Body.String())
	}
}

func TestPanel_CreateUser_CredentialIsUsable(t *testing.T) {
	router, repo := newTestPanel(t)
	cookie := loginCookie(t, router)

	created := adminRequest(t, router, cookie, http.MethodPost, "/admin/resources/users", gin.H{
		"name":     "Second Admin",
		"email":    "second@codesmart.ng",
		"password": "an0ther-secret",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", created.Code, created.Body.String())
	}
	if bytes.Contains(created.Body.Bytes(), []byte("an0ther-secret")) {
		t.Error("plain password must not appear in the response")
	}

	stored, err := repo.User().GetByEmail(context.Background(), "second@codesmart.ng")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Password == "" || stored.Password == "an0ther-secret" {
		t.Fatalf("stored password must be a hash, got %q", stored.Password)
	}
	if stored.Role != models.RoleAdmin {
		t.Errorf("role should default to admin, got %q", stored.Role)
	}

	w := adminRequest(t, router, nil, http.MethodPost, "/admin/login", gin.H{
		"email":    "second@codesmart.ng",
		"password": "an0ther-secret",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login with the created credential failed: %d %s", w.Code, w.Body.String())
	}
}

func TestPanel_CreateUser_RequiresPassword(t *testing.T) {
	router, _ := newTestPanel(t)
	cookie := loginCookie(t, router)

	w := adminRequest(t, router, cookie, http.MethodPost, "/admin/resources/users", gin.H{
		"name":  "No Password",
		"email": "nopass@codesmart.ng",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without password, got %d %s", w.Code, w.Body.String())
	}
}

func TestPanel_UpdateUser_PasswordHandling(t *testing.T) {
	router, _ := newTestPanel(t)
	cookie := loginCookie(t, router)

	created := adminRequest(t, router, cookie, http.MethodPost, "/admin/resources/users", gin.H{
		"name":     "Rotating Admin",
		"email":    "rotate@codesmart.ng",
		"password": "first-secret1",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", created.Code, created.Body.String())
	}

	// Patching the name keeps the stored hash.
	w := adminRequest(t, router, cookie, http.MethodPut, "/admin/resources/users/2", gin.H{
		"name": "Renamed Admin",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", w.Code, w.Body.String())
	}
	w = adminRequest(t, router, nil, http.MethodPost, "/admin/login", gin.H{
		"email": "rotate@codesmart.ng", "password": "first-secret1",
	})
	if w.Code != http.StatusOK {
		t.Errorf("password must survive a patch that omits it: %d", w.Code)
	}

	// Supplying a password rotates the credential.
	w = adminRequest(t, router, cookie, http.MethodPut, "/admin/resources/users/2", gin.H{
		"password": "second-secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("password update failed: %d %s", w.Code, w.Body.String())
	}
	w = adminRequest(t, router, nil, http.MethodPost, "/admin/login", gin.H{
		"email": "rotate@codesmart.ng", "password": "first-secret1",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("old password must stop working, got %d", w.Code)
	}
	w = adminRequest(t, router, nil, http.MethodPost, "/admin/login", gin.H{
		"email": "rotate@codesmart.ng", "password": "second-secret1",
	})
	if w.Code != http.StatusOK {
		t.Errorf("new password must work, got %d %s", w.Code, w.Body.String())
	}
}

func TestPanel_MarkAsRead_Idempotent(t *testing.T) {
	router, repo := newTestPanel(t)
	cookie := loginCookie(t, router)
	ctx := context.Background()

	msg := &models.Message{
		Name:  "Ahmed Musa",
		Email: "ahmed@email.com",
		Body:  "Question about fees",
		Date:  time.Now().UTC(),
	}
	if err := repo.Message().Create(ctx, msg); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		w := adminRequest(t, router, cookie, http.MethodPost, "/admin/resources/messages/1/actions/mark-as-read", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("invocation %d failed: %d %s", i+1, w.Code, w.Body.String())
		}
	}

	stored, err := repo.Message().GetByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !stored.IsRead {
		t.Error("message should be read")
	}

	missing := adminRequest(t, router, cookie, http.MethodPost, "/admin/resources/messages/99/actions/mark-as-read", nil)
	if missing.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing message, got %d", missing.Code)
	}
}

func TestPanel_Export(t *testing.T) {
	router, repo := newTestPanel(t)
	cookie := loginCookie(t, router)

	if err := repo.Course().Create(context.Background(), &models.Course{
		Name: "Backend Development", Fee: 75000, Status: models.CourseActive,
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	w := adminRequest(t, router, cookie, http.MethodGet, "/admin/resources/courses/export.xlsx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export failed: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("export body should not be empty")
	}
}

func TestPanel_Stats(t *testing.T) {
	router, repo := newTestPanel(t)
	cookie := loginCookie(t, router)
	ctx := context.Background()

	repo.Message().Create(ctx, &models.Message{Name: "A", Email: "a@b.com", Body: "hi", Date: time.Now()})
	repo.Message().Create(ctx, &models.Message{Name: "B", Email: "b@b.com", Body: "yo", Date: time.Now(), IsRead: true})
	repo.Course().Create(ctx, &models.Course{Name: "Frontend Development", Status: models.CourseActive})

	w := adminRequest(t, router, cookie, http.MethodGet, "/admin/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats failed: %d", w.Code)
	}

	var resp struct {
		Data DashboardStats `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.TotalMessages != 2 || resp.Data.UnreadMessages != 1 {
		t.Errorf("unexpected message counts %+v", resp.Data)
	}
	if resp.Data.ActiveCourses != 1 {
		t.Errorf("expected 1 active course, got %d", resp.Data.ActiveCourses)
	}
}

func TestPanel_UnknownResource(t *testing.T) {
	router, _ := newTestPanel(t)
	cookie := loginCookie(t, router)

	w := adminRequest(t, router, cookie, http.MethodGet, "/admin/resources/webinars", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown resource, got %d", w.Code)
	}
}
