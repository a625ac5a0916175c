package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/cafedelight/menu-backend/internal/logger"
)

// Publisher emits best-effort activity events. Failures are the caller's
// to log; they never fail the request that produced them.
type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

// Subjects.
const (
	MenuItemCreated          = "menu.item.created"
	MenuItemUpdated          = "menu.item.updated"
	MenuItemDeleted          = "menu.item.deleted"
	MenuItemSpecialToggled   = "menu.item.special_toggled"
	MenuItemAvailableToggled = "menu.item.availability_toggled"
	AuthOTPRequested         = "auth.otp.requested"
	AuthAdminLoggedIn        = "auth.admin.logged_in"
)

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "publishing event", "subject", subject)

	return n.conn.Publish(subject, payload)
}

func (n *NATSPublisher) Close() error {
	n.conn.Close()
	return nil
}

// NoopPublisher is used when no NATS URL is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NoopPublisher) Close() error                                       { return nil }
