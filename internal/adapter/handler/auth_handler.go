package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/eventlyhq/evently-backend/internal/adapter/handler/dto/request"
	"github.com/eventlyhq/evently-backend/internal/adapter/handler/dto/response"
	"github.com/eventlyhq/evently-backend/internal/pkg/httputil"
	"github.com/eventlyhq/evently-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authSvc AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a user account and return a session token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.RegisterRequest	true	"Registration data"
//	@Success		201		{object}	response.RegisterResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		409		{object}	httputil.ErrorResponse	"Email already registered"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	user, token, err := h.authSvc.Register(c.Request.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.RegisterResponse{
		Message: "user created successfully",
		User:    response.UserFromEntity(user),
		Token:   token,
	})
}

// Login godoc
//
//	@Summary		Login
//	@Description	Authenticate with email and password and return a session token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	response.LoginResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse	"Invalid credentials"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.LoginResponse{
		Message: "logged in successfully",
		Token:   token,
	})
}
