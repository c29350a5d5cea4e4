package confirmationemail

import (
	"context"
	"fmt"

	"just2kleen/internal/core/domain/account"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/rabbitmq"
	"just2kleen/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ schedules confirmation emails by publishing them to the email
// exchange. The sweeper stays fast and delivery retries happen on the
// consumer side.
type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (s *RabbitMQ) ScheduleConfirmationEmail(ctx context.Context, a account.Account) error {
	if !a.VerificationToken.IsPresent {
		return fmt.Errorf("account %s has no verification token", a.ID)
	}
	message := schema.ConfirmationEmail{
		Role:              string(a.Role),
		Email:             string(a.Email),
		FullName:          a.FullName,
		VerificationToken: string(a.VerificationToken.Value),
	}
	body, err := message.Marshal()
	if err != nil {
		return err
	}
	err = s.channel.PublishWithContext(ctx, s.exchange, s.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", s.exchange),
		logging.Entry("RK", s.routingKey),
		logging.Entry("accountID", a.ID),
	)
	return nil
}
