package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janhq/site-agent/internal/interfaces/httpserver/handlers"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/requests"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/responses"
	agentres "github.com/janhq/site-agent/internal/interfaces/httpserver/responses/agent"
	"github.com/janhq/site-agent/internal/utils/platformerrors"
)

// RegisterAgentRoutes registers the chat and generate routes.
func RegisterAgentRoutes(router gin.IRoutes, handler *handlers.AgentHandler) {
	router.POST("/chat", chat(handler))
	router.POST("/generate", generate(handler))
}

// chat godoc
// @Summary      Chat with the agent
// @Description  Sends the conversation to the model and records the turn. When the model returns files they are written into a project folder next to the conversation document.
// @Tags         Agent API
// @Accept       json
// @Produce      json
// @Param        request body requests.ChatRequest true "Chat turn"
// @Success      200 {object} agentres.ChatResponse
// @Failure      409 {object} responses.ErrorResponse
// @Failure      422 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /v1/chat [post]
func chat(handler *handlers.AgentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, requests.ValidationMessage(err))
			return
		}

		result, err := handler.Chat(c.Request.Context(), req.ToInput())
		if err != nil {
			responses.HandleError(c, err, "failed to process chat")
			return
		}

		c.JSON(http.StatusOK, agentres.NewChatResponse(result))
	}
}

// generate godoc
// @Summary      Generate a project
// @Description  Plans a project from the objective, asks the model for every scaffold file and writes them under the output directory, optionally committing the result.
// @Tags         Agent API
// @Accept       json
// @Produce      json
// @Param        request body requests.GenerateRequest true "Generation request"
// @Success      200 {object} agentres.GenerateResponse
// @Failure      409 {object} responses.ErrorResponse
// @Failure      422 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /v1/generate [post]
func generate(handler *handlers.AgentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, requests.ValidationMessage(err))
			return
		}

		result, err := handler.Generate(c.Request.Context(), req.ToInput())
		if err != nil {
			responses.HandleError(c, err, "failed to generate project")
			return
		}

		c.JSON(http.StatusOK, agentres.NewGenerateResponse(result))
	}
}
