package rabbitmq

import (
	"github.com/goccy/go-json"
)

// ClickMessage is the body of a queued click.
type ClickMessage struct {
	UserID          string `json:"userId"`
	ClickedCategory string `json:"clickedCategory"`
}

func EncodeClick(userID, category string) ([]byte, error) {
	return json.Marshal(ClickMessage{UserID: userID, ClickedCategory: category})
}

func decodeClick(body []byte) (ClickMessage, error) {
	var msg ClickMessage
	err := json.Unmarshal(body, &msg)
	return msg, err
}
