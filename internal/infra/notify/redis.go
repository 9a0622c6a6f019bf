package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bargain-market/internal/domain/bargain"
	"bargain-market/internal/pkg/config"
	"bargain-market/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	channelOperation = "bargain-events"
	inboxOperation   = "inbox"
	defaultTimeout   = 2 * time.Second
)

// Payload is the JSON document published for every bargain event.
type Payload struct {
	ThreadID    string `json:"thread_id"`
	ProductID   string `json:"product_id"`
	Type        string `json:"type"`
	ActorID     string `json:"actor_id"`
	RecipientID string `json:"recipient_id"`
	Amount      int64  `json:"amount"`
	OccurredAt  string `json:"occurred_at"`
}

func NewPayload(ev bargain.Event) Payload {
	return Payload{
		ThreadID:    ev.ThreadID.String(),
		ProductID:   ev.ProductID.String(),
		Type:        ev.Type.String(),
		ActorID:     ev.ActorID.String(),
		RecipientID: ev.RecipientID.String(),
		Amount:      ev.Amount.Amount(),
		OccurredAt:  ev.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
}

// RedisDispatcher publishes each event on one channel and keeps a capped
// per-recipient inbox list for clients that were offline.
type RedisDispatcher struct {
	client    redis.Cmdable
	keyPrefix string
	inboxSize int64
	inboxTTL  time.Duration
	timeout   time.Duration
}

func NewRedisDispatcher(client redis.Cmdable, cfg config.RedisConfig) *RedisDispatcher {
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RedisDispatcher{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		inboxSize: cfg.InboxSize,
		inboxTTL:  cfg.InboxTTL,
		timeout:   timeout,
	}
}

func (d *RedisDispatcher) Dispatch(ctx context.Context, ev bargain.Event) error {
	body, err := json.Marshal(NewPayload(ev))
	if err != nil {
		return errs.Wrap(err, "failed to encode bargain event")
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	inbox := d.InboxKey(ev.RecipientID.String())
	_, err = d.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Publish(ctx, d.ChannelKey(), body)
		pipe.LPush(ctx, inbox, body)
		if d.inboxSize > 0 {
			pipe.LTrim(ctx, inbox, 0, d.inboxSize-1)
		}
		if d.inboxTTL > 0 {
			pipe.Expire(ctx, inbox, d.inboxTTL)
		}
		return nil
	})
	if err != nil {
		return errs.Wrapf(err, "failed to publish %s event for thread %s", ev.Type, ev.ThreadID)
	}
	return nil
}

func (d *RedisDispatcher) ChannelKey() string {
	return d.generateKey(channelOperation, "all")
}

func (d *RedisDispatcher) InboxKey(recipientID string) string {
	return d.generateKey(inboxOperation, recipientID)
}

func (d *RedisDispatcher) generateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", d.keyPrefix, operation, key)
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
}
