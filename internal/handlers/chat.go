package handlers

import (
	"errors"
	"log"
	"net/http"

	"jolliville/internal/models"
	"jolliville/internal/services"
	"jolliville/internal/utils"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct{}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

type chatRequest struct {
	Messages       []services.Message `json:"messages" binding:"required,min=1"`
	ConversationID string             `json:"conversation_id"`
}

// Chat answers the running message list. Provider failures surface as a
// single generic 502; nothing is retried or queued.
func (h *ChatHandler) Chat(c *gin.Context) {
	profile := CurrentProfile(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid chat payload")
		return
	}

	var lastUser string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		req.Messages[i].Content = utils.SanitizeText(req.Messages[i].Content)
		if lastUser == "" && req.Messages[i].Role == models.RoleUser {
			lastUser = req.Messages[i].Content
		}
	}
	if lastUser == "" {
		JSONError(c, http.StatusBadRequest, "no user message")
		return
	}

	reply, err := services.Reply(profile, req.Messages)
	if err != nil {
		log.Printf("Chat reply failed for profile %d: %v", profile.ID, err)
		JSONError(c, http.StatusBadGateway, "assistant is unavailable right now")
		return
	}

	// Persist the exchange when the client is keeping a conversation.
	if req.ConversationID != "" {
		conv, err := services.FindConversation(profile.ID, req.ConversationID)
		if err == nil {
			if err := services.AppendMessages(conv, lastUser, reply); err != nil {
				log.Printf("Failed to persist chat messages for profile %d: %v", profile.ID, err)
			}
		} else if !errors.Is(err, services.ErrConversationNotFound) {
			log.Printf("Conversation lookup failed for profile %d: %v", profile.ID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": reply})
}

type createConversationRequest struct {
	Title string `json:"title"`
}

func (h *ChatHandler) CreateConversation(c *gin.Context) {
	profile := CurrentProfile(c)

	var req createConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	conv, err := services.CreateConversation(profile.ID, req.Title)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to create conversation")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"conversation": conv})
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	profile := CurrentProfile(c)

	convs, err := services.ListConversations(profile.ID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load conversations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convs})
}

func (h *ChatHandler) Messages(c *gin.Context) {
	profile := CurrentProfile(c)

	conv, err := services.FindConversation(profile.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrConversationNotFound) {
			JSONError(c, http.StatusNotFound, "conversation not found")
			return
		}
		JSONError(c, http.StatusInternalServerError, "failed to load conversation")
		return
	}

	msgs, err := services.ConversationMessages(conv.ID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "failed to load messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation": conv, "messages": msgs})
}
