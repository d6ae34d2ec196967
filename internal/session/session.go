// Package session models kiro-cli conversations and reads them back from the
// local conversation store.
package session

import "encoding/json"

// Response is the assistant payload variant that carries human-readable text.
type Response struct {
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
}

// ToolUse is the assistant payload variant for tool invocations. It carries
// no matchable text.
type ToolUse struct {
	MessageID string `json:"message_id"`
	Content   string `json:"content"`
}

// AssistantMessage is the tagged assistant-side payload of a turn. Exactly one
// variant is set for payloads kiro-cli writes today; variants this binary does
// not know about decode with all fields nil and report no text.
type AssistantMessage struct {
	Response *Response `json:"Response,omitempty"`
	ToolUse  *ToolUse  `json:"ToolUse,omitempty"`
}

// Text returns the human-readable text of the payload and whether the variant
// carries any. Only Response payloads do.
func (m *AssistantMessage) Text() (string, bool) {
	if m == nil || m.Response == nil {
		return "", false
	}
	return m.Response.Content, true
}

// Turn is one exchange in a conversation. Both sides are optional.
type Turn struct {
	User      json.RawMessage   `json:"user,omitempty"`
	Assistant *AssistantMessage `json:"assistant,omitempty"`
}

// Session is a parsed kiro-cli conversation.
type Session struct {
	ConversationID string `json:"conversation_id"`
	History        []Turn `json:"history"`
}

// LastAssistantText returns the text of the most recent assistant Response,
// scanning turns newest to oldest. Turns whose assistant payload carries no
// text (tool invocations, empty responses) are skipped.
func (s *Session) LastAssistantText() (string, bool) {
	for i := len(s.History) - 1; i >= 0; i-- {
		if text, ok := s.History[i].Assistant.Text(); ok && text != "" {
			return text, true
		}
	}
	return "", false
}

// CheckCompletionPromise reports whether the last assistant response contains
// the completion promise wrapped in <promise> tags.
func (s *Session) CheckCompletionPromise(promise string) bool {
	text, ok := s.LastAssistantText()
	if !ok {
		return false
	}
	return MatchesPromise(text, promise)
}
