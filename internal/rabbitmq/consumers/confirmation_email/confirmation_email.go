package confirmationemail

import (
	"context"

	"just2kleen/internal/core/domain/account"
	c "just2kleen/internal/core/domain/common"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
	sendconfirmationemail "just2kleen/internal/core/services/send_confirmation_email"
	"just2kleen/internal/rabbitmq"
	"just2kleen/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[sendconfirmationemail.Input, sendconfirmationemail.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[sendconfirmationemail.Input, sendconfirmationemail.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			message := &schema.ConfirmationEmail{}
			if err := message.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal confirmation email message.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got confirmation email for sending.",
				logging.Entry("email", message.Email),
				logging.Entry("role", message.Role),
			)
			_, err := c.service.Run(
				context.Background(),
				sendconfirmationemail.Input{Account: decodeAccount(message)},
			)
			if err != nil {
				c.log.Error(
					context.Background(),
					"Could not send confirmation email, service returned an error.",
					logging.Entry("email", message.Email),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

func decodeAccount(m *schema.ConfirmationEmail) account.Account {
	return account.Account{
		Role:     account.Role(m.Role),
		Email:    c.NewEmail(m.Email),
		FullName: m.FullName,
		VerificationToken: c.NewOptional(
			account.VerificationToken(m.VerificationToken),
			m.VerificationToken != "",
		),
	}
}
