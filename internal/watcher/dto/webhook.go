package dto

// MaxContentLength is Discord's limit for a message body, in characters.
const MaxContentLength = 2000

// WebhookMessage is the JSON body posted to a Discord webhook.
type WebhookMessage struct {
	Content string `json:"content" validate:"required,max=2000"`
}
