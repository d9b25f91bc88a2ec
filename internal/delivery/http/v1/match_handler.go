package v1

import (
	"net/http"

	"farmatch-backend/internal/delivery/http/response"
	"farmatch-backend/internal/domain"
	"farmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

// NewMatchHandler registers the public match and questionnaire routes
func NewMatchHandler(public *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	public.GET("/questions", handler.ListQuestions)
	public.POST("/match", handler.SubmitMatch)
}

// ListQuestions godoc
// @Summary      List questionnaire
// @Description  Returns the ordered questions and their allowed options.
// @Tags         match
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /questions [get]
func (h *MatchHandler) ListQuestions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Questionnaire", gin.H{"questions": domain.Questions})
}

// SubmitMatch godoc
// @Summary      Submit answers and get matches
// @Description  Stores the caller's answers under their identity and returns up to three compatible builders.
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        match  body      domain.MatchRequest  true  "Identity and answers"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /match [post]
func (h *MatchHandler) SubmitMatch(c *gin.Context) {
	var req domain.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.matchUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Matches found"
	if result.NoMatches {
		message = result.Message
	}
	response.Success(c, http.StatusOK, message, result)
}
