package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janhq/site-agent/internal/interfaces/httpserver/handlers"
	"github.com/janhq/site-agent/internal/interfaces/httpserver/responses"
	conversationres "github.com/janhq/site-agent/internal/interfaces/httpserver/responses/conversation"
)

// RegisterConversationRoutes registers the conversation history routes.
func RegisterConversationRoutes(router gin.IRoutes, handler *handlers.ConversationHandler) {
	router.GET("/conversations", listConversations(handler))
	router.GET("/conversations/:id", getConversation(handler))
	router.DELETE("/conversations/:id", deleteConversation(handler))
	router.GET("/conversations/:id/export", exportConversation(handler))
}

// listConversations godoc
// @Summary      List conversations
// @Description  Lists stored conversations, most recently updated first
// @Tags         Conversations API
// @Produce      json
// @Success      200 {array}  conversationres.SummaryResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /v1/conversations [get]
func listConversations(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := handler.List(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to list conversations")
			return
		}

		c.JSON(http.StatusOK, conversationres.NewListResponse(list))
	}
}

// getConversation godoc
// @Summary      Get a conversation
// @Description  Retrieves a conversation with its full message history
// @Tags         Conversations API
// @Produce      json
// @Param        id path string true "Conversation ID"
// @Success      200 {object} conversationres.ConversationResponse
// @Failure      404 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /v1/conversations/{id} [get]
func getConversation(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		conv, err := handler.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			responses.HandleError(c, err, "failed to get conversation")
			return
		}

		c.JSON(http.StatusOK, conversationres.NewConversationResponse(conv))
	}
}

// deleteConversation godoc
// @Summary      Delete a conversation
// @Description  Removes the conversation document together with any project generated inside its folder
// @Tags         Conversations API
// @Param        id path string true "Conversation ID"
// @Success      204
// @Failure      404 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /v1/conversations/{id} [delete]
func deleteConversation(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler.Delete(c.Request.Context(), c.Param("id")); err != nil {
			responses.HandleError(c, err, "failed to delete conversation")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// exportConversation godoc
// @Summary      Export a conversation
// @Description  Downloads a conversation as JSON, YAML or Markdown
// @Tags         Conversations API
// @Produce      json
// @Produce      application/yaml
// @Produce      text/markdown
// @Param        id     path  string true  "Conversation ID"
// @Param        format query string false "Export format" Enums(json, yaml, markdown)
// @Success      200 {file} file
// @Failure      404 {object} responses.ErrorResponse
// @Failure      422 {object} responses.ErrorResponse
// @Router       /v1/conversations/{id}/export [get]
func exportConversation(handler *handlers.ConversationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := handler.Export(c.Request.Context(), c.Param("id"), c.Query("format"))
		if err != nil {
			responses.HandleError(c, err, "failed to export conversation")
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
		c.Data(http.StatusOK, out.ContentType, out.Body)
	}
}
