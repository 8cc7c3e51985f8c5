// Package messaging publishes integration events for downstream services.
// The auth flows never fail on a publish error; it is logged and dropped.
package messaging

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"members-portal/internal/domain"
)

const (
	subjectUserCreated = "user.created"
	subjectRoleChanged = "user.role_changed"
)

type Publisher struct {
	nc *nats.Conn
}

// Connect establishes the NATS connection used for event publishing.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		url = nats.DefaultURL
	}
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{nc: nc}, nil
}

type userCreatedEvent struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type roleChangedEvent struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ChangedAt time.Time `json:"changed_at"`
}

func (p *Publisher) UserCreated(user *domain.User) {
	p.publish(subjectUserCreated, userCreatedEvent{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	})
}

func (p *Publisher) RoleChanged(username string, role domain.Role) {
	p.publish(subjectRoleChanged, roleChangedEvent{
		Username:  username,
		Role:      string(role),
		ChangedAt: time.Now(),
	})
}

func (p *Publisher) publish(subject string, event any) {
	if p.nc == nil || !p.nc.IsConnected() {
		log.Printf("nats: connection down, dropping %s event", subject)
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("nats: failed to marshal %s event: %v", subject, err)
		return
	}
	if err := p.nc.Publish(subject, data); err != nil {
		log.Printf("nats: failed to publish to %s: %v", subject, err)
	}
}

// Close drains the connection gracefully.
func (p *Publisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
	}
}
