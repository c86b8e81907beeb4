package services

import (
	"context"
	"encoding/json"
	"fmt"

	"innpilot/constants"
	"innpilot/errors"
	"innpilot/models"
	"innpilot/services/logger"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// NotificationService persists notifications and pushes them to connected
// dashboard sessions over websocket. A nil melody instance degrades to
// persist-only; callers never need to care.
type NotificationService struct {
	DB     *gorm.DB
	Melody *melody.Melody
	Logger logger.Logger
}

func NewNotificationService(db *gorm.DB, m *melody.Melody, log logger.Logger) *NotificationService {
	return &NotificationService{DB: db, Melody: m, Logger: log}
}

type wsEvent struct {
	Type    string      `json:"type"`
	HotelID uint        `json:"hotelId"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (s *NotificationService) broadcast(event wsEvent) {
	if s.Melody == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.Logger.Error("failed to marshal websocket event: %v", err)
		return
	}
	if err := s.Melody.Broadcast(payload); err != nil {
		s.Logger.Error("websocket broadcast failed: %v", err)
	}
}

// Notify stores a notification and broadcasts it.
func (s *NotificationService) Notify(ctx context.Context, hotelID uint, kind, title, message string, data interface{}) {
	n := models.Notification{
		HotelID: hotelID,
		Type:    kind,
		Title:   title,
		Message: message,
	}
	if err := s.DB.WithContext(ctx).Create(&n).Error; err != nil {
		s.Logger.Error("failed to persist notification: %v", err)
	}
	s.broadcast(wsEvent{Type: kind, HotelID: hotelID, Title: title, Message: message, Data: data})
}

// BookingCreated announces a new booking to the hotel's dashboard.
func (s *NotificationService) BookingCreated(ctx context.Context, booking models.Booking) {
	title := "New booking " + booking.ReferenceCode
	message := fmt.Sprintf("%d room(s), %s to %s, total %.2f",
		len(booking.Rooms),
		booking.CheckIn.Format(constants.DateLayout),
		booking.CheckOut.Format(constants.DateLayout),
		booking.TotalPrice)
	s.Notify(ctx, booking.HotelID, "booking_created", title, message, booking)
}

// List returns the hotel's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, hotelID uint, limit int) ([]models.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	var notifications []models.Notification
	if err := s.DB.WithContext(ctx).Where("hotel_id = ?", hotelID).
		Order("created_at desc").Limit(limit).Find(&notifications).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list notifications", err)
	}
	return notifications, nil
}

// MarkRead flags a notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, hotelID, notificationID uint) error {
	result := s.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND hotel_id = ?", notificationID, hotelID).
		Update("is_read", true)
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to mark notification read", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "notification not found", nil)
	}
	return nil
}

// SaveChatMessage records one turn of an agent conversation.
func (s *NotificationService) SaveChatMessage(ctx context.Context, userID uint, sender, message string) {
	msg := models.ChatMessage{UserID: userID, Sender: sender, Message: message}
	if err := s.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		s.Logger.Error("failed to persist chat message: %v", err)
	}
}

// RecentChatMessages returns the last n turns for a user, oldest first.
func (s *NotificationService) RecentChatMessages(ctx context.Context, userID uint, n int) ([]models.ChatMessage, error) {
	if n < 1 {
		n = 10
	}
	var messages []models.ChatMessage
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc").Limit(n).Find(&messages).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load chat history", err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
