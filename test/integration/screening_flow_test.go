package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"child-screening-be/internal/bootstrap"
	"child-screening-be/internal/config"
	"child-screening-be/internal/dto"
	"child-screening-be/internal/model"
	"child-screening-be/internal/pkg/serverutils"
	"child-screening-be/internal/server"
	"child-screening-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp wires the full stack against the database named in the
// environment. Tests are skipped when no connection string is set so
// the suite stays green on machines without postgres.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	_ = godotenv.Load("../../.env")

	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.ChildProfile{},
		&model.QuestionnaireResponse{},
		&model.ScreeningResult{},
	))

	container := bootstrap.NewContainer(db, cfg)
	return server.New(cfg, container).GetApp()
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == serverutils.SessionCookie {
			return c
		}
	}
	return nil
}

func TestFullScreeningFlow(t *testing.T) {
	app := setupApp(t)

	email := fmt.Sprintf("parent-%s@example.com", uuid.New().String()[:8])

	// Register
	resp := postForm(t, app, "/register", url.Values{
		"name":             {"Integration Parent"},
		"username":         {"parent_" + uuid.New().String()[:8]},
		"email":            {email},
		"phone":            {"555-0101"},
		"password":         {"secret123"},
		"confirm-password": {"secret123"},
	}, nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login.html", resp.Header.Get("Location"))

	// Login
	resp = postForm(t, app, "/login", url.Values{
		"email":    {email},
		"password": {"secret123"},
	}, nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/child_info.html", resp.Header.Get("Location"))

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "login must issue a session cookie")

	// Child info with symptoms continues to the questionnaire.
	resp = postForm(t, app, "/child_info", url.Values{
		"child-name":   {"Sam"},
		"child-age":    {"4"},
		"child-gender": {"male"},
		"symptoms":     {"limited eye contact"},
	}, cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/questionaries.html", resp.Header.Get("Location"))

	// Questionnaire: five often + five never scores 50% Medium.
	form := url.Values{}
	for i := 1; i <= 5; i++ {
		form.Set(fmt.Sprintf("q%d", i), "often")
	}
	for i := 6; i <= 10; i++ {
		form.Set(fmt.Sprintf("q%d", i), "never")
	}
	resp = postForm(t, app, "/questionaries", form, cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/questionaries_result.html", resp.Header.Get("Location"))

	// The stored result is fetched back through the session.
	req := httptest.NewRequest("GET", "/results", nil)
	req.AddCookie(cookie)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, getResp.StatusCode)

	body, _ := io.ReadAll(getResp.Body)
	var envelope serverutils.BaseResponse[dto.ScreeningResultResponse]
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Medium", envelope.Data.Likelihood)
	assert.InDelta(t, 50.0, envelope.Data.Percentage, 0.0001)
	assert.Equal(t, "Monitor child behavior, consult doctor if needed.", envelope.Data.Recommendations)
}

func TestNoSymptomsSkipsQuestionnaire(t *testing.T) {
	app := setupApp(t)

	email := fmt.Sprintf("parent-%s@example.com", uuid.New().String()[:8])

	resp := postForm(t, app, "/register", url.Values{
		"name":             {"Integration Parent"},
		"username":         {"parent_" + uuid.New().String()[:8]},
		"email":            {email},
		"phone":            {"555-0102"},
		"password":         {"secret123"},
		"confirm-password": {"secret123"},
	}, nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	resp = postForm(t, app, "/login", url.Values{
		"email":    {email},
		"password": {"secret123"},
	}, nil)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	resp = postForm(t, app, "/child_info", url.Values{
		"child-name":   {"Alex"},
		"child-age":    {"3"},
		"child-gender": {"female"},
		"symptoms":     {"No"},
	}, cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/thankyou", resp.Header.Get("Location"))

	// No questionnaire was scored, so results must not exist yet.
	req := httptest.NewRequest("GET", "/results", nil)
	req.AddCookie(cookie)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, getResp.StatusCode)
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	app := setupApp(t)

	email := fmt.Sprintf("parent-%s@example.com", uuid.New().String()[:8])
	form := url.Values{
		"name":             {"Integration Parent"},
		"username":         {"parent_" + uuid.New().String()[:8]},
		"email":            {email},
		"phone":            {"555-0103"},
		"password":         {"secret123"},
		"confirm-password": {"secret123"},
	}

	resp := postForm(t, app, "/register", form, nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	resp = postForm(t, app, "/register", form, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
