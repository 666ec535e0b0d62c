package chat

import (
	"encoding/json"
	"time"
)

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message is one turn in the assistant transcript. Bot turns carry the
// extracted keywords and the recommended doctor, when any.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Keywords  []string  `json:"keywords,omitempty"`
	DoctorID  string    `json:"doctor_id,omitempty"`
}

// EncodeHistory serializes a transcript for the blob store.
func EncodeHistory(messages []Message) ([]byte, error) {
	return json.Marshal(messages)
}

// DecodeHistory deserializes a transcript read from the blob store.
func DecodeHistory(data []byte) ([]Message, error) {
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
