package mailer

import (
	"log/slog"
	"sync"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP settings. Host, User and Pass are all required for
// delivery; when any of them is empty the dispatcher is considered not
// configured and silently skips every message.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Configured reports whether enough settings are present to attempt
// delivery.
func (c Config) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

// from resolves the sender address: explicit From, then the SMTP user,
// then the recipient itself.
func (c Config) from(recipient string) string {
	if c.From != "" {
		return c.From
	}
	if c.User != "" {
		return c.User
	}
	return recipient
}

// Message is a single plain-text email to one recipient.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher delivers messages best-effort on a background worker.
// Callers enqueue and move on: no outcome, success or failure, is ever
// reported back. Delivery errors terminate here as log lines.
type Dispatcher struct {
	cfg  Config
	jobs chan Message
	once sync.Once
	done chan struct{}
}

const defaultQueueSize = 64

// New creates a dispatcher and starts its worker goroutine.
func New(cfg Config) *Dispatcher {
	d := &Dispatcher{
		cfg:  cfg,
		jobs: make(chan Message, defaultQueueSize),
		done: make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue schedules a message for delivery and returns immediately.
// When the queue is full the message is dropped; a contact submission
// must never block on, or fail because of, the mail provider.
func (d *Dispatcher) Enqueue(msg Message) bool {
	select {
	case d.jobs <- msg:
		return true
	default:
		slog.Warn("notification queue full, dropping message", "to", msg.To)
		return false
	}
}

// Close stops intake, drains messages already queued and waits for the
// worker to finish.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.jobs)
	})
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.jobs {
		d.deliver(msg)
	}
}

// deliver attempts one send. Every failure is swallowed: the dispatcher
// has no error channel.
func (d *Dispatcher) deliver(msg Message) {
	if !d.cfg.Configured() {
		// SMTP not configured; the submission is already stored, skip sending.
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", d.cfg.from(msg.To))
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	// gomail negotiates STARTTLS automatically on the standard
	// submission port before authenticating.
	dialer := gomail.NewDialer(d.cfg.Host, d.cfg.Port, d.cfg.User, d.cfg.Pass)
	if err := dialer.DialAndSend(m); err != nil {
		slog.Warn("failed to send notification email", "to", msg.To, "error", err)
		return
	}
	slog.Info("notification email sent", "to", msg.To)
}
