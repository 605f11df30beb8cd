package handlers

import (
	"encoding/json"
	"net/http"
	"todoai/internal/adapter/http/mapper"
	"todoai/internal/adapter/http/validation"
	"todoai/internal/core/ports"
	"todoai/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiService ports.AIService
}

func NewAIHandler(aiService ports.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

func (h *AIHandler) AnalyzeTodos(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondAIError(c, validation.ErrInvalidAnalyzePayload, apierrors.MsgAIAnalysisFailed)
		return
	}

	items, err := validation.ParseAnalyzeTodos(raw)
	if err != nil {
		respondAIError(c, err, apierrors.MsgAIAnalysisFailed)
		return
	}

	result, err := h.aiService.AnalyzeTodos(c.Request.Context(), mapper.ToDomainTodos(items))
	if err != nil {
		respondAIError(c, err, apierrors.MsgAIAnalysisFailed)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAnalysisResponse(result))
}

func (h *AIHandler) BreakdownGoal(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondAIError(c, validation.ErrInvalidBreakdownPayload, apierrors.MsgAIBreakdownFailed)
		return
	}

	req, err := validation.BuildBreakdownRequest(raw)
	if err != nil {
		respondAIError(c, err, apierrors.MsgAIBreakdownFailed)
		return
	}

	result, err := h.aiService.BreakdownGoal(c.Request.Context(), req)
	if err != nil {
		respondAIError(c, err, apierrors.MsgAIBreakdownFailed)
		return
	}

	c.JSON(http.StatusOK, mapper.ToBreakdownResponse(result))
}
