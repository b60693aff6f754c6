package utils

import (
	"os"

	mailjet "github.com/mailjet/mailjet-apiv3-go"
)

func SendMail(to string, subject string, html string) (bool, error) {
	mailjetClient := mailjet.NewMailjetClient(
		os.Getenv("MAILJET_API_KEY"), os.Getenv("MAILJET_SECRET_KEY"))

	messagesInfo := []mailjet.InfoMessagesV31{
		{
			From: &mailjet.RecipientV31{
				Email: os.Getenv("MAILJET_SENDER_EMAIL"),
				Name:  "HotelHub",
			},
			To: &mailjet.RecipientsV31{
				mailjet.RecipientV31{
					Email: to,
				},
			},
			Subject:  subject,
			HTMLPart: html,
		},
	}

	messages := mailjet.MessagesV31{Info: messagesInfo}
	_, err := mailjetClient.SendMailV31(&messages)
	if err != nil {
		return false, err
	}

	return true, nil
}
