package store_test

import (
	"strings"
	"testing"

	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

func TestChatStartsWithWelcome(t *testing.T) {
	t.Parallel()
	s := store.NewChatStore(nil)
	messages, typing, open := s.Messages()
	if len(messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(messages))
	}
	if messages[0].Role != models.ChatRoleBot || !strings.Contains(messages[0].Text, "CulinaMind") {
		t.Errorf("welcome = %+v", messages[0])
	}
	if typing || open {
		t.Errorf("typing=%v open=%v", typing, open)
	}
}

func TestChatClearResetsToWelcome(t *testing.T) {
	t.Parallel()
	s := store.NewChatStore(nil)
	s.AddMessage(models.ChatRoleUser, "how do I poach an egg?")
	s.AddMessage(models.ChatRoleBot, "Gently!")
	s.ClearMessages()
	messages, _, _ := s.Messages()
	if len(messages) != 1 || messages[0].Role != models.ChatRoleBot {
		t.Errorf("clear must leave exactly the welcome message, got %+v", messages)
	}
}

func TestChatHistoryExcludesWelcomeAndMapsRoles(t *testing.T) {
	t.Parallel()
	s := store.NewChatStore(nil)
	s.AddMessage(models.ChatRoleUser, "hi")
	s.AddMessage(models.ChatRoleBot, "hello!")

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("history = %+v", history)
	}
	if history[0].Role != "user" || history[1].Role != "model" {
		t.Errorf("role mapping wrong: %+v", history)
	}
}

func TestChatAddAssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()
	s := store.NewChatStore(nil)
	msg := s.AddMessage(models.ChatRoleUser, "test")
	if msg.ID == "" || msg.Timestamp == 0 {
		t.Errorf("msg = %+v", msg)
	}
}

func TestChatOpenCloseToggle(t *testing.T) {
	t.Parallel()
	s := store.NewChatStore(nil)
	s.Open()
	if _, _, open := s.Messages(); !open {
		t.Error("expected open")
	}
	s.Toggle()
	if _, _, open := s.Messages(); open {
		t.Error("expected closed after toggle")
	}
	s.Close()
	if _, _, open := s.Messages(); open {
		t.Error("expected closed")
	}
}
