package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hctseng/formcraft-go/dto"
	"github.com/hctseng/formcraft-go/middleware"
	"github.com/hctseng/formcraft-go/response"
	"github.com/hctseng/formcraft-go/services"
	"github.com/hctseng/formcraft-go/utils"
)

type SubmissionHandler struct {
	Service *services.SubmissionService
}

func NewSubmissionHandler(svc *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: svc}
}

// optionalUserID reads the authenticated user when a token is present.
// Submissions are anonymous by default.
func optionalUserID(c *gin.Context) *uint {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := claimsVal.(*middleware.Claims)
	if !ok {
		return nil
	}
	return &claims.UserID
}

// POST /forms/:slug/submissions — public
func (h *SubmissionHandler) Create(c *gin.Context) {
	var input dto.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	sub, err := h.Service.Create(c.Param("slug"), utils.ClientIP(c), optionalUserID(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// PUT /forms/:slug/submissions/:id — public, drafts only
func (h *SubmissionHandler) SaveDraft(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid submission id"})
		return
	}
	var input dto.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	sub, err := h.Service.SaveDraft(c.Param("slug"), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// POST /forms/:slug/submissions/:id/finalize — public
func (h *SubmissionHandler) Finalize(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid submission id"})
		return
	}
	sub, err := h.Service.Finalize(c.Param("slug"), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// GET /forms/:slug/submissions — owner only
func (h *SubmissionHandler) List(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	subs, err := h.Service.ListByForm(uid, c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// GET /forms/:slug/submissions/:id — owner only
func (h *SubmissionHandler) Get(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid submission id"})
		return
	}
	sub, err := h.Service.Get(uid, c.Param("slug"), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
