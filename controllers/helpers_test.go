package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"barbershop-backend/config"
	"barbershop-backend/models"
	"barbershop-backend/routes"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
	Cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection to :memory: would see a fresh empty
	// database, so the pool is pinned to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.CartItem{},
		&models.Offer{},
		&models.CustomerReview{},
	))

	cfg := &config.Config{
		Port:             "8080",
		JWTSecret:        "test-secret",
		JWTIssuer:        "barbershop-backend",
		JWTAudience:      "barbershop-frontend",
		JWTExpiryMinutes: 60,
		CORSOrigins:      []string{"http://localhost:5173"},
		UploadDir:        t.TempDir(),
	}

	return &testEnv{
		Router: routes.SetupRouter(db, cfg),
		DB:     db,
		Cfg:    cfg,
	}
}

// createUser inserts a user directly, bypassing the HTTP layer. MinCost keeps
// the fixtures fast; CheckPasswordHash accepts any cost.
func (e *testEnv) createUser(t *testing.T, email, role, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		FullName:     "Test " + role,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, e.DB.Create(user).Error)
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user, e.Cfg)
	require.NoError(t, err)
	return token
}

func (e *testEnv) createService(t *testing.T, name string, price float64) *models.Service {
	t.Helper()
	service := &models.Service{
		Name:              name,
		Price:             price,
		DurationInMinutes: 30,
		Category:          "General",
	}
	require.NoError(t, e.DB.Create(service).Error)
	return service
}

// doJSON runs one request with an optional JSON body and bearer token.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// doForm runs one multipart request. fileField/fileName/fileBody add an
// attached file when fileField is non-empty.
func (e *testEnv) doForm(t *testing.T, method, path string, fields map[string]string, fileField, fileName string, fileBody []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileBody)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&count).Error)
	return count
}
