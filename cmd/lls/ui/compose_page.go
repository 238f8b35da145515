package ui

import (
	"context"

	"github.com/arunvs830/lls-app-sub000/internal/api"
)

// NewComposePage builds the message composer. The receiver is addressed by
// role and id because accounts live in separate tables per role.
func NewComposePage(a *App) Page {
	return NewFormPage(a, FormConfig{
		PageTitle: "New Message",
		Fields: []FormField{
			{Name: "receiver_type", Label: "To (role)", Placeholder: "admin | staff | student"},
			{Name: "receiver_id", Label: "To (user ID)", Placeholder: "numeric id"},
			{Name: "subject", Label: "Subject"},
			{Name: "message", Label: "Message"},
		},
		Validate: func(v map[string]string) string {
			if msg := requireAll(v, "receiver_type", "receiver_id", "subject", "message"); msg != "" {
				return msg
			}
			if !api.Role(v["receiver_type"]).Valid() {
				return "Recipient role must be admin, staff or student"
			}
			if _, ok := parseID(v, "receiver_id"); !ok {
				return "Recipient ID must be a positive number"
			}
			return ""
		},
		Submit: func(ctx context.Context, v map[string]string) error {
			senderType, senderID := "", 0
			if prin := a.principal(); prin != nil {
				senderType, senderID = string(prin.Role), prin.ID
			}
			receiverID, _ := parseID(v, "receiver_id")
			return a.client.Messages().Send(ctx, api.SendMessage{
				SenderType:   senderType,
				SenderID:     senderID,
				ReceiverType: v["receiver_type"],
				ReceiverID:   receiverID,
				Subject:      v["subject"],
				Message:      v["message"],
			})
		},
		SuccessText:  "Message sent",
		SuccessRoute: RouteInbox,
	})
}
