package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qlxz/couple-space/config"
	"github.com/qlxz/couple-space/database/models"
	repoAccounts "github.com/qlxz/couple-space/database/repo/accounts"
	repoAlbums "github.com/qlxz/couple-space/database/repo/albums"
	repoLovelist "github.com/qlxz/couple-space/database/repo/lovelist"
	repoMemorydays "github.com/qlxz/couple-space/database/repo/memorydays"
	repoSiteconfig "github.com/qlxz/couple-space/database/repo/siteconfig"
	"github.com/qlxz/couple-space/internal/auth"
	"github.com/qlxz/couple-space/storage"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	store  *storage.LocalStore
}

// setupTestServer 组装基于内存数据库和临时上传目录的完整路由
func setupTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	// 文件库加 busy_timeout，并发写入时串行等待而不是直接报锁冲突
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "app.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.SiteConfig{},
		&models.MemoryDay{},
		&models.MemoryDayPhoto{},
		&models.Album{},
		&models.AlbumPhoto{},
		&models.AlbumComment{},
		&models.LoveListItem{},
	)
	assert.NoError(t, err)

	store, err := storage.NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:           "test-secret-key-at-least-32-characters-long",
		JWTExpiresIn:        time.Hour,
		StaticDir:           t.TempDir(),
		UploadMaxSizeMB:     10,
		RateLimitAuthRPS:    1000,
		RateLimitAuthBurst:  1000,
		RateLimitExpireTime: time.Minute,
		ListMaxLimit:        500,
	}

	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	accountsRepo := repoAccounts.NewRepository(db)

	router, cleanup := setupRouter(&ServerDependencies{
		DB:             db,
		Config:         cfg,
		TokenService:   tokenService,
		LoginService:   auth.NewLoginService(accountsRepo, tokenService),
		AccountsRepo:   accountsRepo,
		SiteConfigRepo: repoSiteconfig.NewRepository(db),
		MemoryDaysRepo: repoMemorydays.NewRepository(db),
		AlbumsRepo:     repoAlbums.NewRepository(db),
		LoveListRepo:   repoLovelist.NewRepository(db),
		Store:          store,
	})
	t.Cleanup(cleanup)

	return &testServer{router: router, db: db, store: store}
}

func (s *testServer) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin 注册用户并返回 access token
func (s *testServer) registerAndLogin(t *testing.T) string {
	w := s.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "admin",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	form := url.Values{"username": {"admin"}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	var resp struct {
		Detail string `json:"detail"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Detail
}

func TestWelcomeAndHealth(t *testing.T) {
	s := setupTestServer(t)

	w := s.doJSON(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome")

	w = s.doJSON(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow(t *testing.T) {
	s := setupTestServer(t)

	token := s.registerAndLogin(t)

	// 注册响应不包含密码哈希
	w := s.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "second", "password": "pw",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hashed_password")

	// 用户名重复
	w = s.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "admin", "password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already registered", detailOf(t, w))

	// 密码错误
	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	// 修改密码：旧密码错误
	w = s.doJSON(t, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"old_password": "wrong", "new_password": "new-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Incorrect old password", detailOf(t, w))

	// 修改密码成功后新密码可登录
	w = s.doJSON(t, http.MethodPost, "/api/auth/change-password", token, map[string]string{
		"old_password": "password123", "new_password": "new-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	form = url.Values{"username": {"admin"}, "password": {"new-password"}}
	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	s := setupTestServer(t)

	body := map[string]interface{}{"title": "t", "date": "2024-03-14"}

	// 无令牌
	w := s.doJSON(t, http.MethodPost, "/api/memoryday/", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Could not validate credentials", detailOf(t, w))
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	// 伪造令牌
	w = s.doJSON(t, http.MethodPost, "/api/memoryday/", "garbage.token.value", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 读接口无需认证
	w = s.doJSON(t, http.MethodGet, "/api/memoryday/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestMemoryDayCRUD(t *testing.T) {
	s := setupTestServer(t)
	token := s.registerAndLogin(t)

	// 创建时未指定 icon，使用默认值
	w := s.doJSON(t, http.MethodPost, "/api/memoryday/", token, map[string]interface{}{
		"title":       "相识纪念日",
		"date":        "2024-03-14",
		"description": "第一次见面",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var created models.MemoryDay
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.DefaultMemoryDayIcon, created.Icon)
	assert.Equal(t, "2024-03-14", created.Date.String())

	// 空 photos 序列化为 []
	assert.Contains(t, w.Body.String(), `"photos":[]`)

	// 缺少必填字段
	w = s.doJSON(t, http.MethodPost, "/api/memoryday/", token, map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// 更新整体覆盖
	w = s.doJSON(t, http.MethodPut, fmt.Sprintf("/api/memoryday/%d", created.ID), token, map[string]interface{}{
		"title": "改名", "date": "2024-05-01", "icon": "🎂",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.MemoryDay
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "改名", updated.Title)
	assert.Equal(t, "🎂", updated.Icon)
	assert.Nil(t, updated.Description)

	// 删除并确认
	w = s.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/memoryday/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = s.doJSON(t, http.MethodPut, fmt.Sprintf("/api/memoryday/%d", created.ID), token, map[string]interface{}{
		"title": "x", "date": "2024-05-01",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found", detailOf(t, w))
}

// multipartRequest 构造带单个文件字段的 multipart 请求体
func multipartRequest(t *testing.T, fields map[string]string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		assert.NoError(t, mw.WriteField(key, value))
	}
	fw, err := mw.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func uploadedFiles(t *testing.T, store *storage.LocalStore) []string {
	entries, err := os.ReadDir(store.BasePath())
	assert.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestMemoryDayPhotoUpload(t *testing.T) {
	s := setupTestServer(t)
	token := s.registerAndLogin(t)

	// 父记录不存在时不落盘
	body, contentType := multipartRequest(t, nil, "pic.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/memoryday/99/photo", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, uploadedFiles(t, s.store))

	// 创建纪念日后上传
	resp := s.doJSON(t, http.MethodPost, "/api/memoryday/", token, map[string]interface{}{
		"title": "t", "date": "2024-03-14",
	})
	assert.Equal(t, http.StatusOK, resp.Code)
	var day models.MemoryDay
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &day))

	body, contentType = multipartRequest(t, nil, "pic.jpg")
	req = httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/memoryday/%d/photo", day.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var uploaded struct {
		URL string `json:"url"`
		ID  uint   `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &uploaded))
	assert.True(t, strings.HasPrefix(uploaded.URL, storage.PublicURLPrefix))
	assert.True(t, strings.HasSuffix(uploaded.URL, ".jpg"))
	assert.NotZero(t, uploaded.ID)
	assert.Len(t, uploadedFiles(t, s.store), 1)

	// 不支持的扩展名
	body, contentType = multipartRequest(t, nil, "script.exe")
	req = httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/memoryday/%d/photo", day.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "File type not allowed", detailOf(t, w))
	assert.Len(t, uploadedFiles(t, s.store), 1)

	// 删除照片记录时一并删除磁盘文件
	w = s.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/memoryday/photo/%d", uploaded.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Empty(t, uploadedFiles(t, s.store))

	w = s.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/memoryday/photo/%d", uploaded.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAlbumFlow(t *testing.T) {
	s := setupTestServer(t)
	token := s.registerAndLogin(t)

	// 创建相册，内联照片 URL 一并写入
	w := s.doJSON(t, http.MethodPost, "/api/album/", token, map[string]interface{}{
		"description": "旅行",
		"date":        "2024-10-01",
		"photos":      []string{"/static/uploads/album_a.jpg", "/static/uploads/album_b.jpg"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var album models.Album
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &album))
	assert.NotZero(t, album.ID)
	assert.Len(t, album.Photos, 2)
	assert.Contains(t, w.Body.String(), `"comments":[]`)

	// 评论返回完整相册
	w = s.doJSON(t, http.MethodPost, fmt.Sprintf("/api/album/%d/comments", album.ID), token, map[string]string{
		"username": "小王", "content": "好美",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var commented models.Album
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &commented))
	assert.Len(t, commented.Comments, 1)
	assert.Equal(t, "小王", commented.Comments[0].Username)

	// 更新只覆盖描述和日期，照片保持不变
	w = s.doJSON(t, http.MethodPut, fmt.Sprintf("/api/album/%d", album.ID), token, map[string]interface{}{
		"description": "新描述", "date": "2024-11-02",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Album
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "新描述", updated.Description)
	assert.Len(t, updated.Photos, 2)

	// 表单上传照片到相册
	body, contentType := multipartRequest(t, map[string]string{"album_id": fmt.Sprint(album.ID)}, "pic.png")
	req := httptest.NewRequest(http.MethodPost, "/api/album/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), storage.PublicURLPrefix+"album_")

	// 删除相册级联删除照片和评论
	w = s.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/album/%d", album.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var photos, comments int64
	assert.NoError(t, s.db.Model(&models.AlbumPhoto{}).Count(&photos).Error)
	assert.NoError(t, s.db.Model(&models.AlbumComment{}).Count(&comments).Error)
	assert.Zero(t, photos)
	assert.Zero(t, comments)

	w = s.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/album/%d", album.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSiteConfig(t *testing.T) {
	s := setupTestServer(t)
	token := s.registerAndLogin(t)

	// 无配置行时返回默认值且不落库
	w := s.doJSON(t, http.MethodGet, "/api/config/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.SiteConfig
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Zero(t, got.ID)
	assert.Equal(t, "Boy", got.BoyName)

	var count int64
	assert.NoError(t, s.db.Model(&models.SiteConfig{}).Count(&count).Error)
	assert.Zero(t, count)

	// 写入需要认证
	payload := map[string]interface{}{
		"boy_name":   "Tom",
		"girl_name":  "Lucy",
		"start_date": "2023-05-20T00:00:00",
		"site_title": "我们的小站",
	}
	w = s.doJSON(t, http.MethodPut, "/api/config/", "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.doJSON(t, http.MethodPut, "/api/config/", token, payload)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.doJSON(t, http.MethodGet, "/api/config/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotZero(t, got.ID)
	assert.Equal(t, "Tom", got.BoyName)
	assert.Equal(t, "我们的小站", got.SiteTitle)
	assert.Equal(t, "2023-05-20T00:00:00", got.StartDate.String())

	// 再次写入覆盖同一行
	payload["boy_name"] = "Jerry"
	w = s.doJSON(t, http.MethodPost, "/api/config/", token, payload)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, s.db.Model(&models.SiteConfig{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEmptyFreeTextFieldsAccepted(t *testing.T) {
	s := setupTestServer(t)
	token := s.registerAndLogin(t)

	// 空字符串是合法的自由文本输入
	w := s.doJSON(t, http.MethodPost, "/api/album/", token, map[string]interface{}{
		"description": "", "date": "2024-10-01",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var album models.Album
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &album))
	assert.Equal(t, "", album.Description)

	w = s.doJSON(t, http.MethodPost, fmt.Sprintf("/api/album/%d/comments", album.ID), token, map[string]string{
		"username": "", "content": "",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.doJSON(t, http.MethodPost, "/api/memoryday/", token, map[string]interface{}{
		"title": "", "date": "2024-03-14",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.doJSON(t, http.MethodPost, "/api/lovelist/", token, map[string]interface{}{
		"title": "",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.doJSON(t, http.MethodPut, "/api/config/", token, map[string]interface{}{
		"boy_name": "", "girl_name": "", "start_date": "2023-05-20T00:00:00", "site_title": "",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// 字段整体缺失仍然是校验错误
	w = s.doJSON(t, http.MethodPost, "/api/album/", token, map[string]interface{}{
		"date": "2024-10-01",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = s.doJSON(t, http.MethodPost, "/api/lovelist/", token, map[string]interface{}{
		"is_completed": true,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConcurrentUpdatesOneWriterWins(t *testing.T) {
	s := setupTestServer(t)
	token := s.registerAndLogin(t)

	w := s.doJSON(t, http.MethodPost, "/api/lovelist/", token, map[string]interface{}{
		"title": "初始",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var item models.LoveListItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	payloads := []map[string]interface{}{
		{"title": "版本甲", "is_completed": true},
		{"title": "版本乙", "is_completed": false},
	}

	var wg sync.WaitGroup
	codes := make([]int, len(payloads))
	for i := range payloads {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := s.doJSON(t, http.MethodPut, fmt.Sprintf("/api/lovelist/%d", item.ID), token, payloads[i])
			codes[i] = resp.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}

	// 最终状态整体等于其中一个请求体，不会字段级混合
	var final models.LoveListItem
	assert.NoError(t, s.db.First(&final, item.ID).Error)
	wonA := final.Title == "版本甲" && final.IsCompleted
	wonB := final.Title == "版本乙" && !final.IsCompleted
	assert.True(t, wonA || wonB, "final state: %q completed=%v", final.Title, final.IsCompleted)
}

func TestLoveListFlow(t *testing.T) {
	s := setupTestServer(t)
	token := s.registerAndLogin(t)

	w := s.doJSON(t, http.MethodPost, "/api/lovelist/", token, map[string]interface{}{
		"title": "一起去看海",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var item models.LoveListItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.NotZero(t, item.ID)
	assert.False(t, item.IsCompleted)

	w = s.doJSON(t, http.MethodPut, fmt.Sprintf("/api/lovelist/%d", item.ID), token, map[string]interface{}{
		"title": "一起去看海", "is_completed": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.LoveListItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.IsCompleted)

	// 上传配图写回 image_url
	body, contentType := multipartRequest(t, nil, "pic.webp")
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/lovelist/%d/photo", item.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), storage.PublicURLPrefix+"lovelist_")

	w = s.doJSON(t, http.MethodGet, "/api/lovelist/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), storage.PublicURLPrefix+"lovelist_")

	w = s.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/lovelist/%d", item.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
