package mail

import "errors"

// ErrNoSender is returned when a Mailer is built without a Sender.
var ErrNoSender = errors.New("mail: sender is required")

// Mailer forwards messages to the Sender it was built with.
type Mailer struct {
	sender Sender
}

// NewMailer binds sender to a new Mailer for its whole lifetime.
func NewMailer(sender Sender) (*Mailer, error) {
	if sender == nil {
		return nil, ErrNoSender
	}

	return &Mailer{sender: sender}, nil
}

// SendMessage hands message to the sender unchanged.
func (m *Mailer) SendMessage(message string) {
	m.sender.Send(message)
}
