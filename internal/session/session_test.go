package session

import (
	"encoding/json"
	"testing"
)

func respTurn(text string) Turn {
	return Turn{Assistant: &AssistantMessage{Response: &Response{MessageID: "m", Content: text}}}
}

func toolTurn() Turn {
	return Turn{Assistant: &AssistantMessage{ToolUse: &ToolUse{MessageID: "m"}}}
}

func TestLastAssistantText(t *testing.T) {
	tests := []struct {
		name     string
		history  []Turn
		wantText string
		wantOK   bool
	}{
		{
			name:     "last response wins",
			history:  []Turn{respTurn("first"), respTurn("second")},
			wantText: "second",
			wantOK:   true,
		},
		{
			name:     "tool use after response is skipped",
			history:  []Turn{respTurn("answer"), toolTurn()},
			wantText: "answer",
			wantOK:   true,
		},
		{
			name:     "empty response content is skipped",
			history:  []Turn{respTurn("answer"), respTurn("")},
			wantText: "answer",
			wantOK:   true,
		},
		{
			name:    "no assistant payloads",
			history: []Turn{{}, {}},
			wantOK:  false,
		},
		{
			name:    "only tool uses",
			history: []Turn{toolTurn(), toolTurn()},
			wantOK:  false,
		},
		{
			name:   "empty history",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{History: tt.history}
			got, ok := s.LastAssistantText()
			if ok != tt.wantOK {
				t.Fatalf("LastAssistantText() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.wantText {
				t.Errorf("LastAssistantText() = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestAssistantMessageText(t *testing.T) {
	var nilMsg *AssistantMessage
	if _, ok := nilMsg.Text(); ok {
		t.Error("nil message should carry no text")
	}

	// Unknown variants decode with all known fields nil and carry no text.
	var unknown AssistantMessage
	if err := json.Unmarshal([]byte(`{"Thinking": {"message_id": "m", "content": "hmm"}}`), &unknown); err != nil {
		t.Fatalf("unmarshal unknown variant: %v", err)
	}
	if _, ok := unknown.Text(); ok {
		t.Error("unknown variant should carry no text")
	}
}

func TestSessionDecodeFromStorePayload(t *testing.T) {
	payload := `{
		"conversation_id": "abc-123",
		"history": [
			{"user": {"content": "do the thing"}, "assistant": {"ToolUse": {"message_id": "t1"}}},
			{"assistant": {"Response": {"message_id": "r1", "content": "Finished.\n\n<promise>done</promise>"}}}
		]
	}`

	var s Session
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		t.Fatalf("unmarshal session: %v", err)
	}

	if s.ConversationID != "abc-123" {
		t.Errorf("ConversationID = %q, want %q", s.ConversationID, "abc-123")
	}
	text, ok := s.LastAssistantText()
	if !ok {
		t.Fatal("expected assistant text")
	}
	if text != "Finished.\n\n<promise>done</promise>" {
		t.Errorf("LastAssistantText() = %q", text)
	}
	if !s.CheckCompletionPromise("DONE") {
		t.Error("CheckCompletionPromise(DONE) = false, want true")
	}
	if s.CheckCompletionPromise("SHIPPED") {
		t.Error("CheckCompletionPromise(SHIPPED) = true, want false")
	}
}

func TestCheckCompletionPromiseNoText(t *testing.T) {
	s := &Session{History: []Turn{toolTurn()}}
	if s.CheckCompletionPromise("COMPLETE") {
		t.Error("session without assistant text should never match")
	}
}
