package entities

// PushNotification сообщение для push-канала получателя.
type PushNotification struct {
	AccountID string
	Title     string
	Body      string
}
