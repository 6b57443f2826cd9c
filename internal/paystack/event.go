package paystack

import "encoding/json"

// Webhook event names this service reacts to.
const (
	EventChargeSuccess   = "charge.success"
	EventChargeFailed    = "charge.failed"
	EventTransferSuccess = "transfer.success"
	EventTransferFailed  = "transfer.failed"
)

// Event is the provider's webhook envelope: {event, data}.
type Event struct {
	Event string    `json:"event"`
	Data  EventData `json:"data"`
}

type EventData struct {
	Reference string        `json:"reference"`
	Amount    int64         `json:"amount"`
	Currency  string        `json:"currency"`
	Metadata  EventMetadata `json:"metadata"`
}

// Metadata is round-tripped from transaction initialization. CartID is
// the cart to clear once the order completes.
type EventMetadata struct {
	CartID  *int64 `json:"cart_id,omitempty"`
	OrderID *int64 `json:"order_id,omitempty"`
}

func ParseEvent(body []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return Event{}, err
	}
	return ev, nil
}
