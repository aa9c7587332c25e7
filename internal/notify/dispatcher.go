package notify

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/regen-engine/internal/domain/health"
	"github.com/KirkDiggler/regen-engine/internal/regen"
)

// Message is a rendered notification
type Message struct {
	CharacterID string
	Text        string
}

// Sink delivers rendered notifications somewhere a player will see them
type Sink interface {
	Send(msg Message) error
}

// Config holds the configuration for a Dispatcher
type Config struct {
	// Locale is a BCP 47 tag. Unsupported locales fall back to English.
	Locale string

	// NotifyEveryone also reports heals on characters nobody plays
	NotifyEveryone bool

	Sinks  []Sink
	Logger *zap.Logger
}

// Dispatcher renders heal notifications and fans them out to sinks
type Dispatcher struct {
	printer  *message.Printer
	everyone bool
	sinks    []Sink
	logger   *zap.Logger
}

var _ regen.Notifier = (*Dispatcher)(nil)

// NewDispatcher creates a new dispatcher
func NewDispatcher(cfg *Config) *Dispatcher {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dispatcher{
		printer:  NewPrinter(MatchLocale(cfg.Locale)),
		everyone: cfg.NotifyEveryone,
		sinks:    cfg.Sinks,
		logger:   logger.Named("notify"),
	}
}

// ShouldNotifyAbout implements regen.Notifier
func (d *Dispatcher) ShouldNotifyAbout(ch *health.Character) bool {
	if ch == nil {
		return false
	}
	return d.everyone || ch.PlayerControlled
}

// Notify implements regen.Notifier. Every sink is tried; their errors are combined.
func (d *Dispatcher) Notify(n regen.Notification) error {
	msg := Message{Text: d.Render(n)}
	if n.Character != nil {
		msg.CharacterID = n.Character.ID
	}

	var err error
	for _, sink := range d.sinks {
		if sendErr := sink.Send(msg); sendErr != nil {
			d.logger.Warn("notification sink failed",
				zap.String("character", msg.CharacterID),
				zap.Error(sendErr))
			err = multierr.Append(err, sendErr)
		}
	}
	return err
}

// Render formats n in the dispatcher's locale
func (d *Dispatcher) Render(n regen.Notification) string {
	cause := d.printer.Sprintf(message.Key(MessageUnknownCause, "Regeneration"))
	if n.Cause != nil {
		cause = n.Cause.Label()
	}

	character := ""
	if n.Character != nil {
		character = n.Character.Label()
	}

	healed := ""
	if n.Healed != nil {
		healed = n.Healed.Label()
	}

	return d.printer.Sprintf(permanentWoundHealed, cause, character, healed)
}
