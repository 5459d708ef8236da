package conversation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferTitle(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		messages []Message
		want     string
	}{
		{
			name:     "context wins",
			context:  "  barbearia premium. com agenda  ",
			messages: []Message{{Role: RoleUser, Content: "quero um blog"}},
			want:     "Barbearia premium",
		},
		{
			name:     "keyword table order",
			messages: []Message{{Role: RoleUser, Content: "Um SITE com blog e dashboard"}},
			want:     "Custom dashboard",
		},
		{
			name: "agent messages ignored for keywords",
			messages: []Message{
				{Role: RoleAgent, Content: "posso montar um blog"},
				{Role: RoleUser, Content: "cardápio digital para restaurante"},
			},
			want: "Cardápio digital para restaurante",
		},
		{
			name:     "accented keyword",
			messages: []Message{{Role: RoleUser, Content: "Preciso de um Formulário de contato"}},
			want:     "Interactive form",
		},
		{
			name:     "fallback",
			messages: []Message{{Role: RoleSystem, Content: "x"}},
			want:     DefaultTitle,
		},
		{
			name:     "unformattable user message",
			messages: []Message{{Role: RoleUser, Content: ". . ."}},
			want:     DefaultTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferTitle(tt.context, tt.messages))
		})
	}
}

func TestInferTitle_LongFirstMessage(t *testing.T) {
	content := "quero uma página para minha barbearia com agenda online galeria de cortes depoimentos de clientes e mapa"
	title := InferTitle("", []Message{{Role: RoleUser, Content: content}})

	assert.NotEqual(t, DefaultTitle, title)
	assert.True(t, strings.HasSuffix(title, "..."))
	assert.LessOrEqual(t, len([]rune(title)), 80)
	assert.True(t, strings.HasPrefix(title, "Quero uma página"))
}
