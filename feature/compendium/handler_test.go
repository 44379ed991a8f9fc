package compendium

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"srd-mirror/core/remote"
	"srd-mirror/core/remote/mocks"
	"srd-mirror/core/syncer"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	db, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	app := fiber.New()
	client := new(mocks.Client)
	engine := syncer.NewEngine(gormDB, client, zap.NewNop(), syncer.Config{Concurrency: 1})
	handler := NewHandler(NewService(engine, zap.NewNop()))
	handler.RegisterRoutes(app)

	return app, client, sqlMock
}

func TestHandleSync_Success(t *testing.T) {
	app, client, sqlMock := setupTestApp(t)

	client.On("List", mock.Anything, "skills").Return([]remote.Ref{
		{Index: "acrobatics", Name: "Acrobatics", URL: "/api/skills/acrobatics"},
	}, nil)
	client.On("Get", mock.Anything, "/api/skills/acrobatics").Return(map[string]any{
		"index":         "acrobatics",
		"name":          "Acrobatics",
		"desc":          []any{"para1", "para2"},
		"ability_score": map[string]any{"name": "DEX"},
	}, nil)

	sqlMock.ExpectExec("INSERT INTO `skills`").
		WithArgs("DEX", "para1\n\npara2", "acrobatics", "Acrobatics").
		WillReturnResult(sqlmock.NewResult(1, 1))

	req := httptest.NewRequest("GET", "/sync-skills", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "skills synced successfully! 1 records processed.", body["message"])
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHandleSync_UpstreamFailure(t *testing.T) {
	app, client, _ := setupTestApp(t)

	client.On("List", mock.Anything, "monsters").Return(nil, remote.ErrUnavailable)

	req := httptest.NewRequest("GET", "/sync-monsters", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "unavailable")
}

func TestHandleSync_RouteExistsPerResource(t *testing.T) {
	app, client, _ := setupTestApp(t)

	// Unknown paths miss; every registered resource path hits a handler.
	client.On("List", mock.Anything, mock.Anything).Return(nil, remote.ErrUnavailable)

	req := httptest.NewRequest("GET", "/sync-not-a-resource", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	req = httptest.NewRequest("GET", "/sync-ability-scores", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestServiceTables_IncludeChildren(t *testing.T) {
	svc := NewService(nil, zap.NewNop())
	tables := svc.Tables()

	assert.Contains(t, tables, "skills")
	assert.Contains(t, tables, "monsters")
	assert.Contains(t, tables, "monster_condition_immunities")
	assert.Contains(t, tables, "class_levels")
	// 24 parents + 18 child tables.
	assert.Len(t, tables, 42)
}
