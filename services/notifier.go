package services

import (
	"context"
	"errors"
	"strings"

	"laundryhub-backend/logger"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelLog      = "log"
)

// Notifier delivers a short text message to a phone number. It returns the
// channel actually used.
type Notifier interface {
	Send(ctx context.Context, to, body string) (channel string, err error)
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier sends WhatsApp messages to E.164 numbers and SMS otherwise.
type TwilioNotifier struct {
	api          messageCreator
	smsFrom      string
	whatsAppFrom string
}

func NewTwilioNotifier(accountSID, authToken, smsFrom, whatsAppFrom string) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioNotifier{api: client.Api, smsFrom: smsFrom, whatsAppFrom: whatsAppFrom}
}

func (n *TwilioNotifier) Send(_ context.Context, to, body string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return ChannelSMS, errors.New("no recipient number")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	channel := ChannelSMS
	if strings.HasPrefix(to, "+") && n.whatsAppFrom != "" {
		channel = ChannelWhatsApp
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + n.whatsAppFrom)
	} else {
		params.SetTo(to)
		params.SetFrom(n.smsFrom)
	}

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return channel, err
	}
	if resp != nil && resp.Sid != nil {
		logger.Get().Info("message sent", "channel", channel, "sid", *resp.Sid)
	}
	return channel, nil
}

// LogNotifier writes messages to the log. It is used when Twilio is not configured.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, to, body string) (string, error) {
	logger.Get().Info("notification", "to", to, "body", body)
	return ChannelLog, nil
}
