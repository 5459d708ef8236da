package conversation

import (
	"strings"

	"github.com/janhq/site-agent/internal/utils/stringutils"
)

type topic struct {
	keyword string
	title   string
}

// topics is scanned in order; the first keyword found in a user message wins.
var topics = []topic{
	{"dashboard", "Custom dashboard"},
	{"landing page", "Tailored landing page"},
	{"landing-page", "Tailored landing page"},
	{"site", "Institutional website"},
	{"portfólio", "Digital portfolio"},
	{"portfolio", "Digital portfolio"},
	{"ecommerce", "Online store"},
	{"loja", "Online shop"},
	{"blog", "Modern blog"},
	{"formulário", "Interactive form"},
}

// InferTitle picks a title from the context, a topic keyword in the user
// messages, or the first user message, in that order.
func InferTitle(contextText string, messages []Message) string {
	if cleaned := strings.TrimSpace(contextText); cleaned != "" {
		return formatTitle(cleaned)
	}

	if title := inferTopic(messages); title != "" {
		return title
	}

	for _, message := range messages {
		if message.Role == RoleUser {
			return formatTitle(message.Content)
		}
	}
	return DefaultTitle
}

func inferTopic(messages []Message) string {
	for _, message := range messages {
		if message.Role != RoleUser {
			continue
		}
		text := strings.ToLower(message.Content)
		for _, t := range topics {
			if strings.Contains(text, t.keyword) {
				return t.title
			}
		}
	}
	return ""
}

func formatTitle(text string) string {
	if title := stringutils.FormatTitle(text); title != "" {
		return title
	}
	return DefaultTitle
}
