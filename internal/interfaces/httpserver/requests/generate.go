package requests

import (
	"github.com/janhq/site-agent/internal/domain/agent"
)

// GenerateRequest is the body of POST /v1/generate.
type GenerateRequest struct {
	Objective  string  `json:"objective" binding:"notblank" example:"Landing page for a barbershop with online booking"`
	OutputPath *string `json:"output_path,omitempty"`
	Overwrite  bool    `json:"overwrite"`
	Git        bool    `json:"git"`
}

// ToInput converts the request into the agent generation input. The minimum
// objective length is enforced by the agent service.
func (r *GenerateRequest) ToInput() agent.GenerateInput {
	return agent.GenerateInput{
		Objective:  r.Objective,
		OutputPath: trimmedOrEmpty(r.OutputPath),
		Overwrite:  r.Overwrite,
		Git:        r.Git,
	}
}
