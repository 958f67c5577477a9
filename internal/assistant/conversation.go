package assistant

import (
	"strings"

	"github.com/athlytiq/athlytiq/internal/gemini"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one message in a conversation as the browser sends it back on
// every call. The server keeps no conversation state of its own.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Attachment is an inline image introduced by the current turn. The
// caller sends it exactly once; follow-up turns reference the same
// conversation without resending the bytes.
type Attachment struct {
	Data     string
	MimeType string
}

// normalizeRole maps the wire role onto what the model accepts. "system"
// entries in client history are forwarded as "user".
func normalizeRole(role string) string {
	if role == RoleModel {
		return RoleModel
	}
	return RoleUser
}

// historyContents maps client history onto request contents in order.
// Blank or whitespace-only entries are dropped; everything else is kept
// as-is with no reordering or deduplication.
func historyContents(history []Turn) []gemini.Content {
	contents := make([]gemini.Content, 0, len(history))
	for _, turn := range history {
		if strings.TrimSpace(turn.Text) == "" {
			continue
		}
		contents = append(contents, gemini.Content{
			Role:  normalizeRole(turn.Role),
			Parts: []gemini.Part{{Text: turn.Text}},
		})
	}
	return contents
}

// userTurn builds the final user content for a request: the new message,
// plus the inline image when this turn introduces one.
func userTurn(text string, image *Attachment) gemini.Content {
	parts := []gemini.Part{{Text: text}}
	if image != nil {
		parts = append(parts, gemini.Part{
			InlineData: &gemini.InlineData{
				MimeType: image.MimeType,
				Data:     image.Data,
			},
		})
	}
	return gemini.Content{Role: RoleUser, Parts: parts}
}
