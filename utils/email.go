package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingStatusData fills the booking notification mails.
type BookingStatusData struct {
	ListingName   string
	Quantity      int
	Amount        float64
	Status        string
	PaymentStatus string
}

func sendMail(to, subject, body string) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP not configured, skipping mail to", to)
		return
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to send mail to %s: %v", to, err)
	}
}

// SendWelcomeEmail greets a new account. Sent in the background so signup
// does not wait on SMTP.
func SendWelcomeEmail(to string) {
	go sendMail(to, "Welcome to PrepHub",
		"Your account has been created. Sign in to browse coaching centers, libraries, hostels and tiffin services near you.")
}

// SendBookingStatusEmail notifies the booking user after the lister or admin
// moved their booking.
func SendBookingStatusEmail(to string, data BookingStatusData) {
	go sendMail(to, fmt.Sprintf("Your booking for %s is %s", data.ListingName, data.Status),
		fmt.Sprintf("Booking update for %s\nQuantity: %d\nAmount: %.2f\nStatus: %s\nPayment: %s\n",
			data.ListingName, data.Quantity, data.Amount, data.Status, data.PaymentStatus))
}
