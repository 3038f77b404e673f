package handlers

import (
	"net/http"

	"techsphere-api/helper"
	"techsphere-api/middleware"
	"techsphere-api/models"
	"techsphere-api/pagination"
	"techsphere-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	pages       pagination.Parser
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, pages pagination.Parser) *UserHandler {
	return &UserHandler{
		userService: userService,
		pages:       pages,
		Helper:      &helper.HTTPHelper{},
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)
	id, ok := h.Helper.ParseID(c, "userId", models.MessageInvalidUserID)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), caller, id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)
	id, ok := h.Helper.ParseID(c, "userId", models.MessageInvalidUserID)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := h.Helper.DecodeJSON(c, &req, true); err != nil {
		if accessErr := h.userService.CheckAccess(c.Request.Context(), caller, id); accessErr != nil {
			err = accessErr
		}
		h.Helper.SendError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), caller, id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) DeleteProfile(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)
	id, ok := h.Helper.ParseID(c, "userId", models.MessageInvalidUserID)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), caller, id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)
	params, ok := h.Helper.ParsePage(c, h.pages)
	if !ok {
		return
	}

	users, meta, err := h.userService.ListUsers(c.Request.Context(), caller, params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendPage(c, users, meta, nil)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	caller, _ := middleware.CurrentCaller(c)

	var req models.CreateUserRequest
	if err := h.Helper.DecodeJSON(c, &req, true); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), caller, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *UserHandler) CountUsers(c *gin.Context) {
	count, err := h.userService.CountUsers(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"count": count})
}
