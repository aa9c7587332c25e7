package notify

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	apperrors "github.com/KirkDiggler/regen-engine/internal/errors"
)

// LogSink writes notifications to a logger
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink logging at info level
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

// Send implements Sink
func (s *LogSink) Send(msg Message) error {
	s.logger.Info(msg.Text, zap.String("character", msg.CharacterID))
	return nil
}

// MessageSender is the part of *discordgo.Session the Discord sink needs
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// healedColor is the embed accent for heals
const healedColor = 0x2ecc71

// DiscordSink posts notifications to a Discord channel
type DiscordSink struct {
	sender    MessageSender
	channelID string
}

// NewDiscordSink creates a sink posting to channelID
func NewDiscordSink(sender MessageSender, channelID string) (*DiscordSink, error) {
	if sender == nil {
		return nil, apperrors.InvalidArgument("discord session is required")
	}
	if channelID == "" {
		return nil, apperrors.InvalidArgument("discord channel ID is required")
	}
	return &DiscordSink{sender: sender, channelID: channelID}, nil
}

// Send implements Sink
func (s *DiscordSink) Send(msg Message) error {
	_, err := s.sender.ChannelMessageSendComplex(s.channelID, &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Description: msg.Text,
			Color:       healedColor,
			Footer: &discordgo.MessageEmbedFooter{
				Text: msg.CharacterID,
			},
		},
	})
	if err != nil {
		return apperrors.Wrapf(err, "failed to post notification to channel %s", s.channelID)
	}
	return nil
}
