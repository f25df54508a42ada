package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookshelf-backend/internal/domains/user"
	"bookshelf-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register xử lý POST /api/regis
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "USER_001", "Invalid request body")
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Login xử lý POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "USER_001", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func handleUserError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "USER_002", "Validation failed", vErrs)
	case errors.Is(err, user.ErrNameAlreadyTaken):
		response.Conflict(c, "USER_003", "Name already taken")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "USER_004", "Invalid name or password")
	default:
		response.InternalServerError(c, "USER_500", "Internal server error")
	}
}
