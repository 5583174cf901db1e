package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"culinamind-go-be/models"
)

const welcomeMessageID = "welcome"

const welcomeText = "Hi there! 👋 I'm CulinaMind, your AI cooking assistant. " +
	"Ask me anything about recipes, ingredients, cooking techniques, nutrition, " +
	"meal planning, or food storage tips!"

func welcomeMessage() models.ChatMessage {
	return models.ChatMessage{
		ID:        welcomeMessageID,
		Role:      models.ChatRoleBot,
		Text:      welcomeText,
		Timestamp: time.Now().UnixMilli(),
	}
}

// ChatStore owns the linear conversation transcript. Clearing resets to the
// single canonical welcome message, never to zero messages. The typing flag
// is UI feedback only; it does not queue or block concurrent sends.
type ChatStore struct {
	mu       sync.Mutex
	db       *gorm.DB
	messages []models.ChatMessage
	typing   bool
	open     bool
}

func NewChatStore(db *gorm.DB) *ChatStore {
	return &ChatStore{db: db, messages: []models.ChatMessage{welcomeMessage()}}
}

// Load hydrates the transcript; an empty table keeps the welcome message.
func (s *ChatStore) Load() error {
	if s.db == nil {
		return nil
	}
	var messages []models.ChatMessage
	if err := s.db.Order("timestamp").Find(&messages).Error; err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}
	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()
	return nil
}

// AddMessage appends with a generated id and timestamp.
func (s *ChatStore) AddMessage(role, text string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	s.messages = append(s.messages, msg)
	if s.db != nil {
		if err := s.db.Create(&msg).Error; err != nil {
			log.Printf("chat: failed to persist %s: %v", msg.ID, err)
		}
	}
	return msg
}

func (s *ChatStore) SetTyping(typing bool) {
	s.mu.Lock()
	s.typing = typing
	s.mu.Unlock()
}

func (s *ChatStore) Open()  { s.mu.Lock(); s.open = true; s.mu.Unlock() }
func (s *ChatStore) Close() { s.mu.Lock(); s.open = false; s.mu.Unlock() }

func (s *ChatStore) Toggle() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
}

// Messages returns the transcript with the typing and open flags.
func (s *ChatStore) Messages() (messages []models.ChatMessage, typing, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages = make([]models.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return messages, s.typing, s.open
}

// ClearMessages resets the transcript to the canonical welcome message.
func (s *ChatStore) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []models.ChatMessage{welcomeMessage()}
	if s.db != nil {
		if err := s.db.Where("1 = 1").Delete(&models.ChatMessage{}).Error; err != nil {
			log.Printf("chat: failed to clear: %v", err)
		}
	}
}

// History returns the transcript minus the welcome message, translated into
// the user/model role vocabulary the model API expects.
func (s *ChatStore) History() []models.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := make([]models.ChatTurn, 0, len(s.messages))
	for _, msg := range s.messages {
		if msg.ID == welcomeMessageID {
			continue
		}
		role := "user"
		if msg.Role == models.ChatRoleBot {
			role = "model"
		}
		turns = append(turns, models.ChatTurn{Role: role, Text: msg.Text})
	}
	return turns
}
