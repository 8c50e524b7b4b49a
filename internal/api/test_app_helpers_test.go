package api

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dojoaonde/internal/db"
	"github.com/terraincognita07/dojoaonde/internal/i18n"
	"github.com/terraincognita07/dojoaonde/internal/models"
	"github.com/terraincognita07/dojoaonde/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

type testApp struct {
	app      *fiber.App
	database *gorm.DB
	handler  *Handler
}

type pageResponse struct {
	Page        string        `json:"page"`
	Title       string        `json:"title"`
	Lang        string        `json:"lang"`
	Dojos       []dojoView    `json:"dojos"`
	Dojo        *dojoView     `json:"dojo"`
	User        *userView     `json:"user"`
	CurrentUser *userView     `json:"current_user"`
	Flash       *FlashPayload `json:"flash"`
	Notice      string        `json:"notice"`
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	return newTestAppWithPolicy(t, services.DojoEditAnyUser)
}

func newTestAppWithPolicy(t *testing.T, policy services.DojoEditPolicy) testApp {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "dojoaonde-test.db")
	database, err := db.OpenSQLite(databasePath, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager("en", i18n.EmbeddedLocales())
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler, err := NewHandler(database, "test-secret-key-0123456789abcdef", time.UTC, i18nManager, false, policy, logger)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }
	handler.hasher = services.BcryptHasher{Cost: bcrypt.MinCost}
	handler.withDependencies(database)

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return testApp{app: app, database: database, handler: handler}
}

func (env testApp) createUser(t *testing.T, name string, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    testNow,
	}
	if err := env.database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (env testApp) createDojo(t *testing.T, owner models.User, local string, day time.Time) models.Dojo {
	t.Helper()

	dojo := models.Dojo{
		UserID:  owner.ID,
		Local:   local,
		Day:     day,
		Address: "Rua Augusta, 100",
		City:    "São Paulo",
	}
	if err := env.database.Omit("User").Create(&dojo).Error; err != nil {
		t.Fatalf("create dojo: %v", err)
	}
	return dojo
}

func (env testApp) authCookie(t *testing.T, user models.User) string {
	t.Helper()

	token, err := env.handler.issueSessionToken(user.ID, time.Hour)
	if err != nil {
		t.Fatalf("build token: %v", err)
	}
	return authCookieName + "=" + token
}

type testRequest struct {
	method string
	path   string
	form   url.Values
	json   string
	cookie string
	accept string
	lang   string
}

func (env testApp) do(t *testing.T, request testRequest) *http.Response {
	t.Helper()

	var body io.Reader
	if request.form != nil {
		body = strings.NewReader(request.form.Encode())
	} else if request.json != "" {
		body = strings.NewReader(request.json)
	}

	httpRequest := httptest.NewRequest(request.method, request.path, body)
	if request.form != nil {
		httpRequest.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else if request.json != "" {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	if request.cookie != "" {
		httpRequest.Header.Set("Cookie", request.cookie)
	}
	if request.accept != "" {
		httpRequest.Header.Set("Accept", request.accept)
	}
	language := request.lang
	if language == "" {
		language = "en"
	}
	httpRequest.Header.Set("Accept-Language", language)

	response, err := env.app.Test(httpRequest, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.method, request.path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func assertRedirect(t *testing.T, response *http.Response, location string) {
	t.Helper()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if got := response.Header.Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func assertStatus(t *testing.T, response *http.Response, status int) {
	t.Helper()
	if response.StatusCode != status {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", status, response.StatusCode, string(body))
	}
}

func decodePage(t *testing.T, response *http.Response) pageResponse {
	t.Helper()

	page := pageResponse{}
	if err := json.NewDecoder(response.Body).Decode(&page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	return page
}

func readValidationErrors(t *testing.T, response *http.Response) []string {
	t.Helper()

	payload := struct {
		Errors []string `json:"errors"`
	}{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode validation errors: %v", err)
	}
	return payload.Errors
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]string{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload["error"]
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func readFlash(t *testing.T, response *http.Response) FlashPayload {
	t.Helper()

	cookie := responseCookie(response.Cookies(), flashCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected flash cookie in response")
	}
	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		t.Fatalf("decode flash payload: %v", err)
	}
	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		t.Fatalf("unmarshal flash payload: %v", err)
	}
	return payload
}

func countRows(t *testing.T, database *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	if err := database.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
