package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"culinamind-go-be/gemini"
	"culinamind-go-be/models"
	"culinamind-go-be/store"
)

type ChatHandler struct {
	chat   *store.ChatStore
	pantry *store.PantryStore
	ai     *gemini.Client
}

func NewChatHandler(chat *store.ChatStore, pantry *store.PantryStore, ai *gemini.Client) *ChatHandler {
	return &ChatHandler{chat: chat, pantry: pantry, ai: ai}
}

func (h *ChatHandler) List(c *fiber.Ctx) error {
	messages, typing, open := h.chat.Messages()
	return c.JSON(fiber.Map{
		"messages": messages,
		"typing":   typing,
		"open":     open,
	})
}

type chatSendRequest struct {
	Text string `json:"text"`
}

// Send appends the user message, asks the model with the prior history plus
// the serialized pantry, and appends the reply. A provider failure becomes a
// bot message in the transcript, not an error status: the conversation stays
// linear either way.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req chatSendRequest
	if err := c.BodyParser(&req); err != nil || req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text is required"})
	}

	history := h.chat.History()
	userMsg := h.chat.AddMessage(models.ChatRoleUser, req.Text)

	if h.ai == nil {
		botMsg := h.chat.AddMessage(models.ChatRoleBot, "Sorry, the AI assistant is not configured right now.")
		return c.JSON(fiber.Map{"user_message": userMsg, "bot_message": botMsg})
	}

	h.chat.SetTyping(true)
	pantryContext := gemini.PantryContext(h.pantry.All(), time.Now())
	reply, err := h.ai.Chat(c.Context(), req.Text, history, pantryContext)
	h.chat.SetTyping(false)

	if err != nil {
		reply = err.Error()
	}
	botMsg := h.chat.AddMessage(models.ChatRoleBot, reply)
	return c.JSON(fiber.Map{"user_message": userMsg, "bot_message": botMsg})
}

func (h *ChatHandler) Clear(c *fiber.Ctx) error {
	h.chat.ClearMessages()
	messages, _, _ := h.chat.Messages()
	return c.JSON(fiber.Map{"messages": messages})
}

func (h *ChatHandler) Open(c *fiber.Ctx) error {
	h.chat.Open()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ChatHandler) Close(c *fiber.Ctx) error {
	h.chat.Close()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ChatHandler) Toggle(c *fiber.Ctx) error {
	h.chat.Toggle()
	_, _, open := h.chat.Messages()
	return c.JSON(fiber.Map{"open": open})
}

type transcribeRequest struct {
	Audio    string `json:"audio"`
	MimeType string `json:"mime_type"`
}

func (h *ChatHandler) Transcribe(c *fiber.Ctx) error {
	if h.ai == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI service is not configured"})
	}
	var req transcribeRequest
	if err := c.BodyParser(&req); err != nil || req.Audio == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "audio is required"})
	}
	text, err := h.ai.TranscribeAudio(c.Context(), req.Audio, req.MimeType)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"text": text})
}
