package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hctseng/formcraft-go/dto"
	"github.com/hctseng/formcraft-go/response"
	"github.com/hctseng/formcraft-go/services"
	"github.com/hctseng/formcraft-go/utils"
)

type QuestionHandler struct {
	Service *services.QuestionService
}

func NewQuestionHandler(svc *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: svc}
}

// GET /forms/:slug/questions
func (h *QuestionHandler) List(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	questions, err := h.Service.List(uid, c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// POST /forms/:slug/questions
func (h *QuestionHandler) Create(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	question, err := h.Service.Create(uid, c.Param("slug"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// PUT /forms/:slug/questions/:id
func (h *QuestionHandler) Update(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid question id"})
		return
	}
	var input dto.UpdateQuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	question, err := h.Service.Update(uid, c.Param("slug"), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DELETE /forms/:slug/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid question id"})
		return
	}
	if err := h.Service.Delete(uid, c.Param("slug"), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Question deleted"})
}

// PATCH /forms/:slug/questions/reorder
func (h *QuestionHandler) Reorder(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	questions, err := h.Service.Reorder(uid, c.Param("slug"), input.Order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// POST /forms/:slug/questions/:id/validate — public, persists nothing
func (h *QuestionHandler) ValidateAnswer(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid question id"})
		return
	}
	var input dto.ValidateAnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	fieldErrs, err := h.Service.ValidateAnswer(c.Param("slug"), id, input.Value())
	if err != nil {
		writeError(c, err)
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "errors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}
