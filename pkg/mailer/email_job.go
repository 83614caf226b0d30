package mailer

// Template names carried on the queue.
const (
	TemplateWelcome          = "welcome"
	TemplateRequestFulfilled = "request_fulfilled"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Text/HTML are optional when Template is set; the worker renders them.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
