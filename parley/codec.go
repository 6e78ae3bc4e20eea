package parley

import (
	"encoding/json"
	"fmt"
)

// EncodeRegister serializes a register intent. The username passes through
// unmodified; the server owns any validation of it.
func EncodeRegister(username string) (string, error) {
	return encodeEnvelope(WireMessage{Kind: KindRegister, Data: &username})
}

// EncodeChatMessage serializes an outbound chat message. Callers trim and
// reject empty text first (see Session.SubmitMessage).
func EncodeChatMessage(text string) (string, error) {
	return encodeEnvelope(WireMessage{Kind: KindMessage, Data: &text})
}

// DecodeFrame parses raw wire text into a WireMessage. Malformed JSON and
// unknown kinds both fail with ErrorDecode so callers can treat any error as
// "skip this frame".
func DecodeFrame(raw string) (WireMessage, error) {
	var msg WireMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return WireMessage{}, WrapError(ErrorDecode, "malformed frame", err)
	}
	switch msg.Kind {
	case KindUsers, KindRegister, KindMessage:
	default:
		return WireMessage{}, NewError(ErrorDecode, fmt.Sprintf("unknown kind %q", msg.Kind))
	}
	return msg, nil
}

// DecodeChatPayload unwraps the JSON-encoded ChatMessage carried in a
// message-kind frame's Data field.
func DecodeChatPayload(data string) (ChatMessage, error) {
	var cm ChatMessage
	if err := json.Unmarshal([]byte(data), &cm); err != nil {
		return ChatMessage{}, WrapError(ErrorNestedDecode, "bad chat payload", err)
	}
	return cm, nil
}

func encodeEnvelope(msg WireMessage) (string, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return "", WrapError(ErrorSerialization, "encode frame", err)
	}
	return string(b), nil
}
