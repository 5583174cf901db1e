package models

// Chat roles as stored in the transcript.
const (
	ChatRoleUser = "user"
	ChatRoleBot  = "bot"
)

// ChatMessage is one line of the linear transcript. Timestamp is unix
// milliseconds; creation order is display order.
type ChatMessage struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// ChatTurn is a transcript line translated into the role vocabulary the
// model API expects (user/model).
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
