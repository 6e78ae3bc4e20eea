package parley

// Message kinds carried by the WireMessage envelope. Tags are lowercase on
// the wire and matched case-sensitively on decode.
const (
	// KindUsers carries the full online-user roster in DataList.
	KindUsers = "users"
	// KindRegister announces the client's username in Data.
	KindRegister = "register"
	// KindMessage carries a JSON-encoded ChatMessage in Data.
	KindMessage = "message"
)

// WireMessage is the envelope for everything exchanged with the server.
// Exactly one of DataList/Data is meaningful per kind; decoders tolerate
// either being null or absent.
type WireMessage struct {
	Kind     string   `json:"messageType"`
	DataList []string `json:"dataArray,omitempty"`
	Data     *string  `json:"data,omitempty"`
}

// ChatMessage is the nested payload inside a message-kind frame. The server
// stamps From; clients never set it. There is no identifier or timestamp,
// arrival order is display order.
type ChatMessage struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// SendFunc delivers one encoded frame to the transport. Best-effort and
// non-blocking: a full buffer or closed connection comes back as an error.
type SendFunc func(text string) error
