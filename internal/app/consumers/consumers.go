package consumers

import (
	"context"

	"just2kleen/internal/app/deps"
	"just2kleen/internal/app/services"
	dl "just2kleen/internal/core/domain/logging"
	confirmationemail "just2kleen/internal/rabbitmq/consumers/confirmation_email"
)

func initConfirmationEmailConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqEmailQueue
	confirmationEmailConsumer := confirmationemail.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		services.SendConfirmationEmail,
	)
	if err = confirmationEmailConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	shutdownConfirmationEmailConsumer := initConfirmationEmailConsumer(deps, services)

	return func() {
		shutdownConfirmationEmailConsumer()
	}
}
