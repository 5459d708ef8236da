// Package agentres contains HTTP response DTOs for the chat and generate endpoints.
package agentres

import (
	"github.com/janhq/site-agent/internal/domain/agent"
)

// ChatResponse is returned by POST /v1/chat.
type ChatResponse struct {
	Reply          string   `json:"reply"`
	ConversationID string   `json:"conversation_id"`
	File           string   `json:"file"`
	Context        *string  `json:"context,omitempty"`
	FilesSaved     []string `json:"files_saved"`
	ProjectDir     *string  `json:"project_dir,omitempty"`
}

// PlanResponse describes the project plan that drove a generation.
type PlanResponse struct {
	Base                string   `json:"base"`
	Files               []string `json:"files"`
	ExecutionSteps      string   `json:"execution_steps,omitempty"`
	AbsoluteDestination string   `json:"absolute_destination"`
}

// GenerateResponse is returned by POST /v1/generate.
type GenerateResponse struct {
	Plan   PlanResponse `json:"plan"`
	Files  []string     `json:"files"`
	Commit *string      `json:"commit,omitempty"`
}

// NewChatResponse creates a ChatResponse from the agent result.
func NewChatResponse(result *agent.ChatResult) *ChatResponse {
	saved := result.FilesSaved
	if saved == nil {
		saved = []string{}
	}
	return &ChatResponse{
		Reply:          result.Reply,
		ConversationID: result.ConversationID,
		File:           result.File,
		Context:        optional(result.Context),
		FilesSaved:     saved,
		ProjectDir:     optional(result.ProjectDir),
	}
}

// NewGenerateResponse creates a GenerateResponse from the agent result.
func NewGenerateResponse(result *agent.GenerateResult) *GenerateResponse {
	files := result.Files
	if files == nil {
		files = []string{}
	}
	return &GenerateResponse{
		Plan: PlanResponse{
			Base:                result.Plan.Base,
			Files:               result.Plan.Files,
			ExecutionSteps:      result.Plan.ExecutionSteps,
			AbsoluteDestination: result.Plan.AbsoluteDestination,
		},
		Files:  files,
		Commit: optional(result.Commit),
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
