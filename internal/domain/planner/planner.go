// Package planner derives the output folder and file scaffold for a generation request.
package planner

import (
	"github.com/janhq/site-agent/internal/utils/stringutils"
)

const (
	maxBaseLength = 40
	fallbackBase  = "project"
)

// scaffold is the fixed list of files requested from the model for every project.
var scaffold = []string{
	"README.md",
	"pyproject.toml",
	"requirements.txt",
	"Makefile",
	"Dockerfile",
	"docker-compose.yml",
	"src/app/main.py",
	"src/app/api/saude.py",
	"src/app/core/settings.py",
	"src/app/core/logging_config.py",
	"src/app/core/errors.py",
	"src/app/schemas/base.py",
	"src/app/services/modulo.py",
	"tests/test_saude.py",
}

// Plan describes where a project is written and which files it is made of.
// ExecutionSteps and AbsoluteDestination are filled in after generation.
type Plan struct {
	Base                string   `json:"base"`
	Files               []string `json:"files"`
	ExecutionSteps      string   `json:"execution_steps,omitempty"`
	AbsoluteDestination string   `json:"absolute_destination,omitempty"`
}

// Planner builds plans.
type Planner struct{}

// NewPlanner returns a Planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// Plan returns the folder (with a trailing slash) and scaffold for objective.
func (p *Planner) Plan(objective string) Plan {
	name := stringutils.SanitizeFilename(objective)
	if len(name) > maxBaseLength {
		name = name[:maxBaseLength]
	}
	if name == "" {
		name = fallbackBase
	}

	files := make([]string, len(scaffold))
	copy(files, scaffold)

	return Plan{
		Base:  name + "/",
		Files: files,
	}
}
