package handlers

import (
	"errors"
	"strconv"

	"gabeesh-social/helper"
	"gabeesh-social/models"
	"gabeesh-social/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

// AdminHandler covers the super-admin surface: user administration and
// content moderation.
type AdminHandler struct {
	userService         services.UserService
	announcementService services.AnnouncementService
	pollService         services.PollService
	Helper              *helper.HTTPHelper
}

func NewAdminHandler(userService services.UserService, announcementService services.AnnouncementService, pollService services.PollService, httpHelper *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{
		userService:         userService,
		announcementService: announcementService,
		pollService:         pollService,
		Helper:              httpHelper,
	}
}

func (h *AdminHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	user, err := h.userService.Register(req)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "User registered successfully", user.Public())
}

// RegisterForm returns the metadata the registration form is built from.
func (h *AdminHandler) RegisterForm(c *gin.Context) {
	h.Helper.SendSuccess(c, "Register form", gin.H{
		"roles": []models.Role{models.RoleMember, models.RoleMod, models.RoleLeader},
	})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	h.Helper.SendSuccess(c, "Success", public)
}

func (h *AdminHandler) AssignRole(c *gin.Context) {
	var req models.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.userService.AssignRole(req.Username, req.Role); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	h.Helper.SendSuccess(c, "Role updated", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) AssignVote(c *gin.Context) {
	var req models.AssignVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.userService.AssignVotePower(req.Username, req.Power); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	h.Helper.SendSuccess(c, "Vote power updated", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) MuteUser(c *gin.Context) {
	h.setMuted(c, true, "User muted")
}

func (h *AdminHandler) UnmuteUser(c *gin.Context) {
	h.setMuted(c, false, "User unmuted")
}

func (h *AdminHandler) setMuted(c *gin.Context, muted bool, message string) {
	var req models.UsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.userService.SetMuted(req.Username, muted); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	h.Helper.SendSuccess(c, message, h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	var req models.UsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.userService.Delete(req.Username); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	h.Helper.SendSuccess(c, "User deleted", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.userService.ResetPassword(req.Username, req.NewPassword); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	h.Helper.SendSuccess(c, "Password reset", h.Helper.EmptyJsonMap())
}

// Content is the moderation view: announcements newest first, polls by
// expiry, with the per-poll vote detail the admin page shows.
func (h *AdminHandler) Content(c *gin.Context) {
	announcements, err := h.announcementService.List()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	polls, err := h.pollService.ListByExpiry()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"announcements": announcements,
		"polls":         polls,
	})
}

func (h *AdminHandler) DeleteAnnouncement(c *gin.Context) {
	var req models.DeleteAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.announcementService.Delete(req.ID); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	h.Helper.SendSuccess(c, "Announcement deleted", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) DeletePoll(c *gin.Context) {
	var req models.DeletePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.pollService.Delete(req.ID); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	h.Helper.SendSuccess(c, "Poll deleted", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) GetPoll(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid poll ID", h.Helper.EmptyJsonMap())
		return
	}

	poll, err := h.pollService.Get(id)
	if err != nil {
		h.Helper.SendNotFoundErrorV2(c, "Poll Not Found", h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Success", poll)
}

func (h *AdminHandler) EditPoll(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid poll ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.EditPollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.pollService.UpdateExpiry(id, req.ExpiresAt); err != nil {
		if errors.Is(err, services.ErrPollNotFound) {
			h.Helper.SendNotFoundErrorV2(c, "Poll Not Found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	h.Helper.SendSuccess(c, "Poll expiration updated", h.Helper.EmptyJsonMap())
}
