package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"community-guard/internal/config"
	"community-guard/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, service.Setup(db))

	Initialize(&config.Config{
		Server: config.ServerConfig{JWTSecret: "test-secret"},
		Moderation: config.ModerationConfig{
			AdminEmails: []string{"admin@example.com"},
		},
	})

	app := fiber.New()
	RegisterRoutes(app)
	return app
}

func authedRequest(t *testing.T, method, target, email string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		token, err := IssueToken(email, time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/bans/me", "", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestModeratorGuard(t *testing.T) {
	app := newTestApp(t)

	body := map[string]interface{}{"email": "target@x.com", "reason": "규칙 위반입니다", "addWarnings": 1}

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/punishments", "member@example.com", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, http.MethodPost, "/api/punishments", "admin@example.com", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result service.PunishmentResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 1, result.WarningCount)
}

func TestApplyPunishmentValidationStatus(t *testing.T) {
	app := newTestApp(t)

	body := map[string]interface{}{"email": "target@x.com", "reason": "abcd", "addWarnings": 1}
	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/punishments", "admin@example.com", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "사유를 5글자 이상 입력하세요.", payload["error"])
}

func TestBanGuardFlow(t *testing.T) {
	app := newTestApp(t)

	// No ban yet.
	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/bans/me", "member@x.com", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.NoError(t, service.SaveBan("member@x.com", "차단 사유입니다", nil, "admin@example.com"))

	resp, err = app.Test(authedRequest(t, http.MethodGet, "/api/bans/me", "member@x.com", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ban map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ban))
	assert.Equal(t, "member@x.com", ban["user"])
}

func TestResolveAppealDefaultsRevokeOnApproval(t *testing.T) {
	app := newTestApp(t)
	user := "appellant@x.com"

	require.NoError(t, service.SaveBan(user, "차단 사유입니다", nil, "admin@example.com"))
	appeal, err := service.CreateAppeal(user, 0, "부당한 처벌입니다")
	require.NoError(t, err)

	body := map[string]interface{}{"status": "approved", "reason": "정당한 이의제기"}
	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/appeals/"+itoa(appeal.ID)+"/resolve", "admin@example.com", body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ban, err := service.FetchActiveBan(user)
	require.NoError(t, err)
	assert.Nil(t, ban, "approval defaults to revoking the ban")
}

func TestRecentPunishmentsOwnership(t *testing.T) {
	app := newTestApp(t)

	_, err := service.ApplyPunishment("member@x.com", "admin@example.com", "규칙 위반입니다", 1, 0, nil)
	require.NoError(t, err)

	// Members see their own records.
	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/punishments/recent", "member@x.com", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// But not anyone else's.
	resp, err = app.Test(authedRequest(t, http.MethodGet, "/api/punishments/recent?email=member@x.com", "other@x.com", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Moderators may query any user.
	resp, err = app.Test(authedRequest(t, http.MethodGet, "/api/punishments/recent?email=member@x.com", "admin@example.com", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAcknowledgeOwnership(t *testing.T) {
	app := newTestApp(t)
	user := "member@x.com"

	_, err := service.ApplyPunishment(user, "admin@example.com", "규칙 위반입니다", 0, 1, nil)
	require.NoError(t, err)
	pending, err := service.FetchPendingPunishment(user)
	require.NoError(t, err)
	require.NotNil(t, pending)

	// Another user cannot clear somebody else's pending notice.
	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/punishments/"+itoa(pending.ID)+"/ack", "other@x.com", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	still, err := service.FetchPendingPunishment(user)
	require.NoError(t, err)
	require.NotNil(t, still)

	// The affected user can.
	resp, err = app.Test(authedRequest(t, http.MethodPost, "/api/punishments/"+itoa(pending.ID)+"/ack", user, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cleared, err := service.FetchPendingPunishment(user)
	require.NoError(t, err)
	assert.Nil(t, cleared)
}

func itoa(v uint) string {
	return fmt.Sprint(v)
}
