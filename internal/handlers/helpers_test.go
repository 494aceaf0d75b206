package handlers_test

import (
	"SwapMarket/internal/config"
	"SwapMarket/internal/handlers"
	"SwapMarket/internal/middleware"
	"SwapMarket/internal/model"
	"SwapMarket/internal/repo"
	"SwapMarket/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// testEnv роутер поверх настоящих сервисов и in-memory SQLite
type testEnv struct {
	router http.Handler
	cfg    *config.Config
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)

	cfg := &config.Config{AuthSecret: testSecret, TokenTTL: time.Hour}
	logger := zap.NewNop().Sugar()
	items := repo.NewItemRepository(db)

	h := handlers.NewHandler(
		service.NewUserService(repo.NewUserRepository(db)),
		service.NewItemService(items, logger),
		service.NewSwapService(repo.NewSwapRepository(db), items, logger),
		logger,
		cfg,
		func(ctx context.Context) error { return repo.Ping(ctx, db) },
	)
	return &testEnv{router: h.Router, cfg: cfg, db: db}
}

func (e *testEnv) user(t *testing.T, name string) *model.User {
	t.Helper()
	u, err := repo.NewUserRepository(e.db).CreateUser(context.Background(),
		&model.User{Name: name, Email: name + "@example.com", Password: "hash"})
	require.NoError(t, err)
	return u
}

// do выполняет запрос; uid == 0 — анонимно.
func (e *testEnv) do(t *testing.T, method, path string, body any, uid int64) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if uid != 0 {
		addAuth(t, req, uid, e.cfg.AuthSecret)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// createItem создаёт вещь через API и возвращает её
func (e *testEnv) createItem(t *testing.T, uid int64, title string) model.Item {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/api/items", map[string]string{
		"title":       title,
		"description": title + " description",
		"imageUrl":    "https://img.example.com/" + title + ".jpg",
	}, uid)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var it model.Item
	decode(t, rr, &it)
	return it
}

func addAuth(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(v), rr.Body.String())
}

type errBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

func errorOf(t *testing.T, rr *httptest.ResponseRecorder) errBody {
	t.Helper()
	var b errBody
	decode(t, rr, &b)
	return b
}
