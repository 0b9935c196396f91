package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmapsite/internal/config"
	"github.com/dmapsite/internal/db"
	"github.com/dmapsite/internal/handler"
	"github.com/dmapsite/internal/router"
	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	handler   http.Handler
	public    *localClient
	admin     *localClient
	store     *storage.Storage
	adminPass string
}

// localClient drives the handler in-process. It is deliberately minimal:
// cookies are added onto the caller's request and redirects are not
// followed.
type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:e2e-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	adminPass := "e2e-secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	store := storage.New(gdb)
	if _, err := store.CreateUser(storage.UserInput{
		Username: "admin",
		Password: string(hashed),
		Role:     db.RoleAdmin,
	}); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	cfg := config.AppConfig{
		SessionSecret: "e2e-session-secret",
		UploadDir:     t.TempDir(),
		UploadURLPath: "/static/uploads",
		BrochurePath:  t.TempDir() + "/brochure.pdf",
	}
	r := router.SetupRouter(cfg, handler.NewAPI(store, cfg))

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return &e2eSuite{
		handler:   r,
		public:    newLocalClient(r, false),
		admin:     newLocalClient(r, true),
		store:     store,
		adminPass: adminPass,
	}
}

func (s *e2eSuite) request(t *testing.T, client *localClient, method, path string, payload interface{}) (*http.Response, envelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, "http://local"+path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: decode envelope: %v (body %q)", method, path, err, raw)
		}
	}
	return resp, env
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	resp, _ := s.request(t, s.admin, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": s.adminPass,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
}

func TestE2E_SiteAPI(t *testing.T) {
	suite := newE2ESuite(t)
	suite.login(t)

	t.Run("project lifecycle", suite.testProjectLifecycle)
	t.Run("company profile upsert", suite.testCompanyProfile)
	t.Run("contact inbox", suite.testContactInbox)
	t.Run("blog flow", suite.testBlogFlow)
}

func (s *e2eSuite) testProjectLifecycle(t *testing.T) {
	resp, env := s.request(t, s.public, http.MethodPost, "/api/projects", map[string]string{
		"title":            "Bridge Retrofit",
		"shortDescription": "Beam strengthening for an aging flyover",
		"status":           "ongoing",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create project: status %d", resp.StatusCode)
	}
	var created struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	if created.ID == 0 || created.Status != "ongoing" {
		t.Fatalf("unexpected created project: %+v", created)
	}

	listIDs := func(path string) map[uint]bool {
		resp, env := s.request(t, s.public, http.MethodGet, path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: status %d", path, resp.StatusCode)
		}
		var rows []struct {
			ID uint `json:"id"`
		}
		if err := json.Unmarshal(env.Data, &rows); err != nil {
			t.Fatalf("decode projects: %v", err)
		}
		ids := make(map[uint]bool, len(rows))
		for _, row := range rows {
			ids[row.ID] = true
		}
		return ids
	}

	if !listIDs("/api/projects?status=ongoing")[created.ID] {
		t.Fatal("ongoing filter should include the new project")
	}

	resp, _ = s.request(t, s.public, http.MethodPut, fmt.Sprintf("/api/projects/%d", created.ID), map[string]string{
		"status": "completed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update project: status %d", resp.StatusCode)
	}

	if listIDs("/api/projects?status=ongoing")[created.ID] {
		t.Fatal("completed project should leave the ongoing filter")
	}
	if !listIDs("/api/projects")[created.ID] {
		t.Fatal("unfiltered list should still include the project")
	}

	resp, _ = s.request(t, s.public, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete project: status %d", resp.StatusCode)
	}
	resp, _ = s.request(t, s.public, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
	resp, _ = s.request(t, s.public, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("repeated delete should stay 200, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) testCompanyProfile(t *testing.T) {
	put := func(mission string) uint {
		resp, env := s.request(t, s.public, http.MethodPut, "/api/company", map[string]string{
			"name":    "DMAP Retrofit Construction Company",
			"tagline": "Experts in Retrofitting, Reconstruction & Civil Works",
			"mission": mission,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("put company: status %d", resp.StatusCode)
		}
		var row struct {
			ID uint `json:"id"`
		}
		if err := json.Unmarshal(env.Data, &row); err != nil {
			t.Fatalf("decode company: %v", err)
		}
		return row.ID
	}

	first := put("Reinforcing infrastructure.")
	second := put("Reinforcing infrastructure across the country.")
	if first != second {
		t.Fatalf("company upsert created a second row: %d vs %d", first, second)
	}

	resp, env := s.request(t, s.public, http.MethodGet, "/api/company", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get company: status %d", resp.StatusCode)
	}
	var got struct {
		Mission string `json:"mission"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode company: %v", err)
	}
	if got.Mission != "Reinforcing infrastructure across the country." {
		t.Fatalf("mission not updated: %q", got.Mission)
	}
}

func (s *e2eSuite) testContactInbox(t *testing.T) {
	resp, env := s.request(t, s.public, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Prospective Client",
		"email":   "prospect@example.com",
		"message": "We need a structural audit.",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit contact form: status %d", resp.StatusCode)
	}
	if env.Message != "Message received! We will contact you soon." {
		t.Fatalf("unexpected message %q", env.Message)
	}

	resp, _ = s.request(t, s.public, http.MethodGet, "/api/contact-submissions", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("inbox should require a session, got %d", resp.StatusCode)
	}

	resp, env = s.request(t, s.admin, http.MethodGet, "/api/contact-submissions", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin inbox: status %d", resp.StatusCode)
	}
	var rows []struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode submissions: %v", err)
	}
	found := false
	for _, row := range rows {
		if row.Email == "prospect@example.com" {
			found = true
		}
	}
	if !found {
		t.Fatalf("submission missing from inbox: %+v", rows)
	}
}

func (s *e2eSuite) testBlogFlow(t *testing.T) {
	resp, env := s.request(t, s.public, http.MethodPost, "/api/blog", map[string]interface{}{
		"slug":    "seismic-retrofitting-guide",
		"title":   "Seismic Retrofitting Guide",
		"date":    time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
		"excerpt": "How existing buildings are strengthened.",
		"content": "Strengthening **existing** structures.",
		"author":  "Site Team",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create post: status %d", resp.StatusCode)
	}
	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode post: %v", err)
	}

	resp, env = s.request(t, s.public, http.MethodGet, "/api/blog/seismic-retrofitting-guide", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get by slug: status %d", resp.StatusCode)
	}
	var view struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decode post view: %v", err)
	}
	if !bytes.Contains([]byte(view.HTML), []byte("<strong>existing</strong>")) {
		t.Fatalf("markdown not rendered: %q", view.HTML)
	}

	resp, _ = s.request(t, s.public, http.MethodPut, fmt.Sprintf("/api/blog/%d", created.ID), map[string]string{
		"title": "Seismic Retrofitting, A Field Guide",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update post: status %d", resp.StatusCode)
	}

	resp, _ = s.request(t, s.public, http.MethodDelete, fmt.Sprintf("/api/blog/%d", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete post: status %d", resp.StatusCode)
	}
	resp, _ = s.request(t, s.public, http.MethodGet, "/api/blog/seismic-retrofitting-guide", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}
