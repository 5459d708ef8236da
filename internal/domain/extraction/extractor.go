// Package extraction turns a raw LLM completion into a summary message and a list of files.
package extraction

import (
	"encoding/json"
	"strings"

	"github.com/janhq/site-agent/internal/domain/workspace"
)

// Kind tags which response shape Extract recognized.
type Kind string

const (
	KindStructured Kind = "structured"
	KindFenced     Kind = "fenced"
)

// DefaultMessage replaces an empty summary.
const DefaultMessage = "structure created successfully"

const fence = "```"

// Result is the parsed form of a completion.
type Result struct {
	Kind           Kind
	Message        string
	Files          []workspace.File
	ExecutionSteps string
	ProjectSlug    string
}

// Extract parses raw as a single JSON object when possible and otherwise as
// fenced code blocks whose first line is the file path. It never fails; unusable
// fragments are dropped.
func Extract(raw string) Result {
	if result, ok := extractStructured(raw); ok {
		return result
	}
	return extractFenced(raw)
}

func extractStructured(raw string) (Result, bool) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil || payload == nil {
		return Result{}, false
	}

	result := Result{
		Kind:        KindStructured,
		Message:     strings.TrimSpace(firstString(payload, "message", "mensagem")),
		ProjectSlug: strings.TrimSpace(firstString(payload, "slug_project", "slug", "slug_projeto")),
	}

	entries, _ := firstValue(payload, "files", "arquivos").([]any)
	for _, entry := range entries {
		object, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		path, pathOK := firstValue(object, "path", "caminho").(string)
		content, contentOK := firstValue(object, "content", "conteudo").(string)
		if !pathOK || !contentOK {
			continue
		}
		path = strings.TrimSpace(path)
		if path == "" || !workspace.IsSafeRelativePath(path) {
			continue
		}
		result.Files = append(result.Files, workspace.File{Path: path, Content: content})
	}

	if result.Message == "" {
		result.Message = DefaultMessage
	}
	return result, true
}

func extractFenced(raw string) Result {
	result := Result{Kind: KindFenced}
	var prose []string

	for i, segment := range strings.Split(raw, fence) {
		if i%2 == 0 {
			if text := strings.TrimSpace(segment); text != "" {
				prose = append(prose, text)
			}
			continue
		}

		block := strings.TrimSpace(segment)
		if block == "" {
			continue
		}
		header, body, found := strings.Cut(block, "\n")
		if !found {
			continue
		}
		path := strings.Trim(strings.TrimSpace(header), "/")
		content := strings.TrimRight(body, " \t\r\n")
		if path == "" || content == "" {
			continue
		}

		if isExecutionSteps(path) {
			result.ExecutionSteps = content
			continue
		}
		if !workspace.IsSafeRelativePath(path) {
			continue
		}
		result.Files = append(result.Files, workspace.File{Path: path, Content: content})
	}

	result.Message = strings.TrimSpace(strings.Join(prose, "\n\n"))
	if result.Message == "" {
		result.Message = DefaultMessage
	}
	return result
}

func isExecutionSteps(path string) bool {
	name := strings.ToUpper(path)
	return name == "PASSOS_EXECUCAO.MD" || name == "PASSOS_EXECUCAO.TXT"
}

func firstValue(object map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := object[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

func firstString(object map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := object[key].(string); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
