package bargain

import (
	"strings"
	"time"
	"unicode/utf8"

	"bargain-market/internal/domain/pricing"

	"github.com/google/uuid"
)

const DefaultMaxMessageRunes = 1000

type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func BuyerActor(userID uuid.UUID) Actor {
	return Actor{UserID: userID, Role: RoleBuyer}
}

func SellerActor(userID uuid.UUID) Actor {
	return Actor{UserID: userID, Role: RoleSeller}
}

type MessageText struct {
	value string
}

func NewMessageText(s string, maxRunes int) (MessageText, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MessageText{}, ErrEmptyMessage
	}
	if maxRunes <= 0 {
		maxRunes = DefaultMaxMessageRunes
	}
	if utf8.RuneCountInString(s) > maxRunes {
		return MessageText{}, ErrMessageTooLong
	}
	return MessageText{value: s}, nil
}

func (m MessageText) String() string {
	return m.value
}

type Message struct {
	id       uuid.UUID
	threadID uuid.UUID
	senderID uuid.UUID
	text     MessageText
	sentAt   time.Time
}

func ReconstructMessage(id, threadID, senderID uuid.UUID, text string, sentAt time.Time) Message {
	return Message{id: id, threadID: threadID, senderID: senderID, text: MessageText{value: text}, sentAt: sentAt}
}

func (m Message) ID() uuid.UUID       { return m.id }
func (m Message) ThreadID() uuid.UUID { return m.threadID }
func (m Message) SenderID() uuid.UUID { return m.senderID }
func (m Message) Text() string        { return m.text.String() }
func (m Message) SentAt() time.Time   { return m.sentAt }

// Event is emitted by a committed transition and handed to the notifier.
type Event struct {
	Type        EventType
	ThreadID    uuid.UUID
	ProductID   uuid.UUID
	ActorID     uuid.UUID
	RecipientID uuid.UUID
	Amount      pricing.Money
	OccurredAt  time.Time
}
