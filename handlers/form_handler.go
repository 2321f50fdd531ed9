package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hctseng/formcraft-go/dto"
	"github.com/hctseng/formcraft-go/response"
	"github.com/hctseng/formcraft-go/services"
	"github.com/hctseng/formcraft-go/utils"
)

type FormHandler struct {
	Service *services.FormService
}

func NewFormHandler(svc *services.FormService) *FormHandler {
	return &FormHandler{Service: svc}
}

// settingsFields is the closed set of keys the settings endpoint accepts.
var settingsFields = map[string]bool{
	"is_active":                  true,
	"allow_multiple_submissions": true,
	"expires_at":                 true,
	"clear_expires_at":           true,
	"rate_limit_enabled":         true,
	"rate_limit_count":           true,
	"rate_limit_period":          true,
	"is_password_protected":      true,
	"access_code":                true,
	"submission_limit":           true,
	"clear_submission_limit":     true,
	"enable_email_notifications": true,
}

// POST /forms
func (h *FormHandler) Create(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	form, err := h.Service.Create(uid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

// GET /forms
func (h *FormHandler) List(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	forms, err := h.Service.ListByOwner(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GET /forms/:slug — full form for the owner, render view for everyone else
func (h *FormHandler) Get(c *gin.Context) {
	slug := c.Param("slug")
	if uid, err := utils.GetUserIDFromContext(c); err == nil {
		form, err := h.Service.GetOwned(uid, slug)
		if err == nil {
			c.JSON(http.StatusOK, form)
			return
		}
		if !errors.Is(err, services.ErrForbidden) {
			writeError(c, err)
			return
		}
	}
	form, err := h.Service.GetPublic(slug)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// PUT /forms/:slug
func (h *FormHandler) Update(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	form, err := h.Service.Update(uid, c.Param("slug"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// PATCH /forms/:slug/settings
func (h *FormHandler) UpdateSettings(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid JSON payload"})
		return
	}
	for key := range payload {
		if !settingsFields[key] {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: fmt.Sprintf("Field %s not allowed", key)})
			return
		}
	}
	var input dto.FormSettingsDTO
	if err := json.Unmarshal(raw, &input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.Service.UpdateSettings(uid, c.Param("slug"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// POST /forms/:slug/duplicate
func (h *FormHandler) Duplicate(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	form, err := h.Service.Duplicate(uid, c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

// DELETE /forms/:slug
func (h *FormHandler) Delete(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.Service.Delete(uid, c.Param("slug")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted"})
}

// GET /forms/:slug/client-schema
func (h *FormHandler) ClientSchema(c *gin.Context) {
	schema, err := h.Service.ClientSchema(c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, schema)
}

// GET /forms/:slug/check-access
func (h *FormHandler) CheckAccess(c *gin.Context) {
	status, err := h.Service.CheckAccess(c.Param("slug"), utils.ClientIP(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// POST /forms/:slug/verify-access
func (h *FormHandler) VerifyAccess(c *gin.Context) {
	var input dto.VerifyAccessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.Service.VerifyAccess(c.Param("slug"), input.Code); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Access granted"})
}

// GET /forms/:slug/ratelimit/status?ip=...
func (h *FormHandler) RateLimitStatus(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	ip := c.Query("ip")
	if ip == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Query parameter ip is required"})
		return
	}
	status, err := h.Service.RateLimitStatus(uid, c.Param("slug"), ip)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// POST /forms/:slug/ratelimit/reset
func (h *FormHandler) RateLimitReset(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.RateLimitResetInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	}
	cleared, err := h.Service.RateLimitReset(uid, c.Param("slug"), input.IP)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ResetResponse{Message: "Rate limit cleared", Cleared: cleared})
}
