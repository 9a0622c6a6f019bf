package bargain

type Status string

const (
	StatusPending   Status = "pending"
	StatusCountered Status = "countered"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCountered, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Role is the capability an actor claims on a thread.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleBuyer || r == RoleSeller
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

type EventType string

const (
	EventOffer    EventType = "offer"
	EventCounter  EventType = "counter"
	EventAccepted EventType = "accepted"
	EventRejected EventType = "rejected"
)

func (e EventType) String() string {
	return string(e)
}
