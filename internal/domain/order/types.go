package order

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var nextStatus = map[Status]Status{
	StatusPending:    StatusProcessing,
	StatusProcessing: StatusShipped,
	StatusShipped:    StatusDelivered,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next is the forward step in the fulfilment sequence, if any.
func (s Status) Next() (Status, bool) {
	n, ok := nextStatus[s]
	return n, ok
}

// CanTransitionTo allows one step forward or cancellation before delivery.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return nextStatus[s] == next
}

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentESewa  PaymentMethod = "esewa"
	PaymentKhalti PaymentMethod = "khalti"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCOD, PaymentESewa, PaymentKhalti:
		return true
	default:
		return false
	}
}
