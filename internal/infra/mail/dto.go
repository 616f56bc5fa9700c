package mail

// MandateNotificationData feeds templates/mandate_notification.html.
type MandateNotificationData struct {
	Headline         string
	LeadID           string
	ClientName       string
	Residency        string
	Status           string
	PreviousStatus   string
	ChangedBy        string
	EstimatedValue   string
	PropertyInterest string
	OccurredAt       string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	DeskTo   string

	dialer Dialer
}
