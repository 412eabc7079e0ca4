package messaging

import "fmt"

// Broker is the publish side of the message server.
type Broker interface {
	Publish(subject string, data []byte) error
}

// ActiveLister reports which usernames currently have a live session.
type ActiveLister interface {
	ListActive() []string
}

// PlayerSubject returns the per-player delivery subject.
func PlayerSubject(username string) string {
	return fmt.Sprintf("player-%s", username)
}

// Publisher fans game text out to sessions via their player subjects.
type Publisher struct {
	broker   Broker
	sessions ActiveLister
}

func NewPublisher(broker Broker, sessions ActiveLister) *Publisher {
	return &Publisher{
		broker:   broker,
		sessions: sessions,
	}
}

// SendTo delivers text to one player's session.
func (p *Publisher) SendTo(username, text string) error {
	return p.broker.Publish(PlayerSubject(username), []byte(text))
}

// Broadcast delivers text to every live session except the excluded
// usernames. Delivery order across sessions is not guaranteed.
func (p *Publisher) Broadcast(text string, exclude ...string) error {
	excludeSet := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = true
	}

	var firstErr error
	for _, name := range p.sessions.ListActive() {
		if excludeSet[name] {
			continue
		}
		if err := p.SendTo(name, text); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
