// Package mail sends best-effort notification emails. Delivery is never
// guaranteed and a send failure never fails the operation that triggered it.
package mail

import (
	"fmt"

	"github.com/go-gomail/gomail"
)

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// New returns nil when no SMTP credentials are configured; a nil *Mailer
// silently drops every send.
func New(host string, port int, username, password, from string) *Mailer {
	if host == "" || username == "" {
		return nil
	}
	if from == "" {
		from = username
	}
	return &Mailer{host: host, port: port, username: username, password: password, from: from}
}

func (m *Mailer) SendBookingConfirmation(to, doctorName, date, clock string) error {
	if m == nil {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Booking Confirmation")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your appointment with Dr. %s on %s at %s is confirmed.", doctorName, date, clock))

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
