package notify

import "context"

// SMSGateway sends one text message and returns the provider-assigned id.
// Implementations do not retry, dedupe or rate-limit: a caller retry is a
// second outbound message.
type SMSGateway interface {
	SendSMS(ctx context.Context, phone, message string) (string, error)
}

// EmailSender delivers the same notification over a templated-email
// provider. toName may be empty; the template tolerates it.
type EmailSender interface {
	SendEmail(ctx context.Context, toEmail, toName, message string) (string, error)
}
