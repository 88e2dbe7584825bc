package serialization

import "github.com/DevRoss/nautilus-trader/model"

// The serializer contracts for each message family. This allows peers to
// swap wire formats (MsgPack, BSON, etc.) per family while interacting
// with the same domain types.

// OrderSerializer serializes and deserializes order payloads.
type OrderSerializer interface {
	Serialize(order model.Order) ([]byte, error)
	Deserialize(data []byte) (model.Order, error)
}

// CommandSerializer serializes and deserializes command messages.
type CommandSerializer interface {
	Serialize(command model.Command) ([]byte, error)
	Deserialize(data []byte) (model.Command, error)
}

// EventSerializer serializes and deserializes event messages.
type EventSerializer interface {
	Serialize(event model.Event) ([]byte, error)
	Deserialize(data []byte) (model.Event, error)
}

// RequestSerializer serializes and deserializes data requests.
type RequestSerializer interface {
	Serialize(request model.DataRequest) ([]byte, error)
	Deserialize(data []byte) (model.DataRequest, error)
}

// ResponseSerializer serializes and deserializes data responses.
type ResponseSerializer interface {
	Serialize(response model.DataResponse) ([]byte, error)
	Deserialize(data []byte) (model.DataResponse, error)
}

// InstrumentSerializer serializes and deserializes instrument definitions.
type InstrumentSerializer interface {
	Serialize(instrument model.Instrument) ([]byte, error)
	Deserialize(data []byte) (model.Instrument, error)
}
