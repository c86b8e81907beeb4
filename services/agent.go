package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"innpilot/config"
	"innpilot/dto"
	"innpilot/errors"
	"innpilot/services/logger"
)

const openAIChatURL = "https://api.openai.com/v1/chat/completions"

// AgentService is the LLM ops assistant. The model either answers in prose or
// emits a single JSON tool call, which the dispatcher in agent_tools.go
// executes against the regular services.
type AgentService struct {
	apiKey string
	model  string
	client *http.Client

	Bookings      *BookingService
	Rates         *RateService
	Availability  *AvailabilityService
	Promos        *PromoService
	Reports       *ReportService
	Notifications *NotificationService
	Logger        logger.Logger
}

func NewAgentService(cfg config.Config, bookings *BookingService, rates *RateService,
	availability *AvailabilityService, promos *PromoService, reports *ReportService,
	notifications *NotificationService, log logger.Logger) *AgentService {
	return &AgentService{
		apiKey:        cfg.OpenAIAPIKey,
		model:         cfg.OpenAIModel,
		client:        &http.Client{Timeout: 30 * time.Second},
		Bookings:      bookings,
		Rates:         rates,
		Availability:  availability,
		Promos:        promos,
		Reports:       reports,
		Notifications: notifications,
		Logger:        log,
	}
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func agentSystemPrompt(today string) string {
	return `You are the operations assistant for a hotel property-management system.
Today's date is ` + today + `.

When the user's request maps to one of the tools below, reply with ONLY a JSON
object in this exact shape and nothing else:

{"tool": "<tool name>", "args": { ... }}

Tools:
- dashboard_stats: {} (today's arrivals, departures, occupancy and revenue)
- search_bookings: {"status": "...", "search": "...", "date_from": "yyyy-mm-dd", "date_to": "yyyy-mm-dd"} (all args optional)
- booking_details: {"reference": "BK-XXXXXXXX"}
- cancel_booking: {"reference": "BK-XXXXXXXX"}
- arrivals: {"date": "yyyy-mm-dd"} (date optional, defaults to today)
- departures: {"date": "yyyy-mm-dd"} (date optional, defaults to today)
- room_inventory: {"date_from": "yyyy-mm-dd", "date_to": "yyyy-mm-dd"} (availability grid)
- update_room_price: {"room_type": "<name>", "date_from": "yyyy-mm-dd", "date_to": "yyyy-mm-dd", "price": number}
- block_dates: {"room_type": "<name>", "start_date": "yyyy-mm-dd", "end_date": "yyyy-mm-dd", "count": number, "reason": "..."}
- create_promo: {"code": "...", "discount_type": "percentage"|"fixed_amount", "discount_value": number, "start_date": "yyyy-mm-dd", "end_date": "yyyy-mm-dd", "max_usage": number}

Notes:
- Room type names may be approximate; the system resolves them.
- Omit args you do not have. Dates use yyyy-mm-dd.
- For anything that is not a tool request (greetings, how-to questions,
  advice), answer helpfully in plain text and do NOT emit JSON.`
}

// toolCall is what the model emits when it wants an action executed.
type toolCall struct {
	Tool string          `json:"tool"`
	Args json.RawMessage `json:"args"`
}

// Chat runs one turn: history + user message to the model, then either a
// prose reply or a dispatched tool call. Both turns are persisted.
func (s *AgentService) Chat(ctx context.Context, hotelID, userID uint, role int, message string) (dto.AgentReply, error) {
	var reply dto.AgentReply
	if s.apiKey == "" {
		return reply, errors.NewAppError(errors.ErrCodeInvalidOperation, "assistant is not configured", nil)
	}

	messages := []map[string]string{
		{"role": "system", "content": agentSystemPrompt(DateOnly(time.Now()).Format("2006-01-02"))},
	}
	if history, err := s.Notifications.RecentChatMessages(ctx, userID, 10); err == nil {
		for _, turn := range history {
			sender := "user"
			if turn.Sender == "agent" {
				sender = "assistant"
			}
			messages = append(messages, map[string]string{"role": sender, "content": turn.Message})
		}
	}
	messages = append(messages, map[string]string{"role": "user", "content": message})

	content, err := s.complete(ctx, messages)
	if err != nil {
		return reply, err
	}

	s.Notifications.SaveChatMessage(ctx, userID, "user", message)

	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "{") {
		reply.Reply = content
		s.Notifications.SaveChatMessage(ctx, userID, "agent", content)
		return reply, nil
	}

	var call toolCall
	if err := json.Unmarshal([]byte(content), &call); err != nil || call.Tool == "" {
		// Model said it was JSON but it is not a usable call; show it as prose.
		reply.Reply = content
		s.Notifications.SaveChatMessage(ctx, userID, "agent", content)
		return reply, nil
	}

	reply, err = s.dispatch(ctx, hotelID, role, call)
	if err != nil {
		return reply, err
	}
	s.Notifications.SaveChatMessage(ctx, userID, "agent", reply.Reply)
	return reply, nil
}

// complete performs one chat-completions round trip.
func (s *AgentService) complete(ctx context.Context, messages []map[string]string) (string, error) {
	requestBody, err := json.Marshal(map[string]interface{}{
		"model":       s.model,
		"messages":    messages,
		"max_tokens":  500,
		"temperature": 0.2,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidOperation, "assistant request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		s.Logger.Error("chat completion returned %d: %s", resp.StatusCode, string(body))
		return "", errors.NewAppError(errors.ErrCodeInvalidOperation,
			fmt.Sprintf("assistant request failed with status %d", resp.StatusCode), nil)
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Choices) == 0 {
		return "", errors.NewAppError(errors.ErrCodeInvalidOperation, "assistant returned an empty response", err)
	}
	return parsed.Choices[0].Message.Content, nil
}
