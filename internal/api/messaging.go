package api

import (
	"context"
	"fmt"
)

// MessageService maps the /communications resource (user-to-user mail).
type MessageService struct{ c *Client }

func (c *Client) Messages() *MessageService { return &MessageService{c} }

// SendMessage is the compose payload. Sender and receiver are addressed by
// (type, id) pairs because the three roles live in separate tables.
type SendMessage struct {
	SenderType   string `json:"sender_type"`
	SenderID     int    `json:"sender_id"`
	ReceiverType string `json:"receiver_type"`
	ReceiverID   int    `json:"receiver_id"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
}

func (s *MessageService) Send(ctx context.Context, req SendMessage) error {
	return s.c.postJSON(ctx, "/communications", req, nil)
}

func (s *MessageService) Inbox(ctx context.Context, userType string, userID int) ([]Message, error) {
	var out []Message
	err := s.c.get(ctx, fmt.Sprintf("/communications/inbox/%s/%d", userType, userID), &out)
	return out, err
}

func (s *MessageService) Sent(ctx context.Context, userType string, userID int) ([]Message, error) {
	var out []Message
	err := s.c.get(ctx, fmt.Sprintf("/communications/sent/%s/%d", userType, userID), &out)
	return out, err
}

func (s *MessageService) Get(ctx context.Context, id int) (*Message, error) {
	var out Message
	if err := s.c.get(ctx, fmt.Sprintf("/communications/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MessageService) MarkRead(ctx context.Context, id int) error {
	return s.c.put(ctx, fmt.Sprintf("/communications/%d/read", id), nil)
}

func (s *MessageService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/communications/%d", id))
}

// UnreadCount is the badge counter the shells poll.
func (s *MessageService) UnreadCount(ctx context.Context, userType string, userID int) (int, error) {
	var out UnreadCount
	if err := s.c.get(ctx, fmt.Sprintf("/communications/unread-count/%s/%d", userType, userID), &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

// NotificationService maps the /notifications resource.
type NotificationService struct{ c *Client }

func (c *Client) Notifications() *NotificationService { return &NotificationService{c} }

func (s *NotificationService) List(ctx context.Context, userType string, userID int) ([]Notification, error) {
	var out []Notification
	err := s.c.get(ctx, fmt.Sprintf("/notifications/%s/%d", userType, userID), &out)
	return out, err
}

func (s *NotificationService) UnreadCount(ctx context.Context, userType string, userID int) (int, error) {
	var out UnreadCount
	if err := s.c.get(ctx, fmt.Sprintf("/notifications/%s/%d/count", userType, userID), &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id int) error {
	return s.c.put(ctx, fmt.Sprintf("/notifications/%d/read", id), nil)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userType string, userID int) error {
	return s.c.put(ctx, fmt.Sprintf("/notifications/%s/%d/read-all", userType, userID), nil)
}

func (s *NotificationService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/notifications/%d", id))
}
