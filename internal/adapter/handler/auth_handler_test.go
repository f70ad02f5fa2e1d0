package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eventlyhq/evently-backend/internal/adapter/handler"
	"github.com/eventlyhq/evently-backend/internal/domain"
	"github.com/eventlyhq/evently-backend/internal/domain/entity"
	"github.com/eventlyhq/evently-backend/internal/mocks"
	"github.com/eventlyhq/evently-backend/internal/usecase/auth"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("registers user and returns token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/register", h.Register)

		user := entity.NewUser("Alice", "alice@example.com", "$2a$04$hash")

		authSvc.EXPECT().Register(gomock.Any(), auth.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret",
		}).Return(user, "signed-token", nil)

		body := `{"name":"Alice","email":"alice@example.com","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "user created successfully", resp["message"])
		assert.Equal(t, "signed-token", resp["token"])

		userResp, ok := resp["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", userResp["email"])
		assert.Equal(t, "Alice", userResp["name"])
		assert.NotContains(t, userResp, "password")
		assert.NotContains(t, userResp, "password_hash")
	})

	t.Run("returns conflict for duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/register", h.Register)

		authSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, "", domain.ErrUserAlreadyExists)

		body := `{"name":"Alice","email":"taken@example.com","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("returns validation error for missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/register", h.Register)

		body := `{"name":"Alice","email":"alice@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("logs in successfully", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/login", h.Login)

		authSvc.EXPECT().Login(gomock.Any(), auth.LoginInput{
			Email:    "alice@example.com",
			Password: "secret",
		}).Return("signed-token", nil)

		body := `{"email":"alice@example.com","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp["token"])
	})

	t.Run("returns unauthorized for bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		authSvc := mocks.NewMockAuthService(ctrl)
		h := handler.NewAuthHandler(authSvc)

		router := setupRouter()
		router.POST("/login", h.Login)

		authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", domain.ErrInvalidCredentials)

		body := `{"email":"alice@example.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
