package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Notifier publishes transient notifications to a Redis pub/sub channel
// where connected admin frontends pick them up. Notify is fire-and-forget:
// publish failures are logged and swallowed, never surfaced to the caller.
type Notifier struct {
	client  *redis.Client
	channel string
	log     zerolog.Logger
}

func NewNotifier(client *redis.Client, channel string, log zerolog.Logger) *Notifier {
	return &Notifier{client: client, channel: channel, log: log}
}

type notification struct {
	Message    string `json:"message"`
	DurationMs int64  `json:"duration_ms"`
}

func (n *Notifier) Notify(ctx context.Context, message string, duration time.Duration) {
	payload, err := json.Marshal(notification{
		Message:    message,
		DurationMs: duration.Milliseconds(),
	})
	if err != nil {
		n.log.Warn().Err(err).Msg("failed to encode notification")
		return
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.log.Warn().Err(err).Str("channel", n.channel).Msg("failed to publish notification")
	}
}

// LogNotifier is the fallback sink used when Redis is absent (development,
// tests): notifications go to the log instead of a pub/sub channel.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, message string, duration time.Duration) {
	n.log.Info().Dur("duration", duration).Msg(message)
}
