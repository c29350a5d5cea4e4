package deps

import (
	"context"
	"fmt"
	"sync"
	"time"

	"just2kleen/internal/config"
	"just2kleen/internal/core/domain/account"
	dl "just2kleen/internal/core/domain/logging"
	drl "just2kleen/internal/core/domain/rate_limiter"
	dbaccount "just2kleen/internal/db/account"
	"just2kleen/internal/implementations/logging"
	"just2kleen/internal/implementations/mail"
	passwordhasher "just2kleen/internal/implementations/password_hasher"
	ratelimiter "just2kleen/internal/implementations/rate_limiter"
	tokengenerator "just2kleen/internal/implementations/token_generator"
	"just2kleen/internal/rabbitmq"
	confirmationemail "just2kleen/internal/rabbitmq/publishers/confirmation_email"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

// emailSender is what every mail backend must provide: both email kinds go
// out through the same relay.
type emailSender interface {
	account.ConfirmationEmailSender
	account.PasswordResetEmailSender
}

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	AccountRepository account.Repository

	RateLimiter drl.RateLimiter

	EmailSender emailSender

	VerificationTokenGenerator account.VerificationTokenGenerator
	ResetTokenGenerator        account.ResetTokenGenerator
	PasswordHasher             account.PasswordHasher

	ConfirmationEmailScheduler account.ConfirmationEmailScheduler
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.AccountRepository = dbaccount.NewPgxRepository(deps.DB)
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.initEmailSender()

	generator := tokengenerator.NewGenerator()
	deps.VerificationTokenGenerator = generator
	deps.ResetTokenGenerator = generator
	deps.initPasswordHasher()

	closeEmailScheduler := deps.initRabbitmqEmailScheduler()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeEmailScheduler,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	connString, err := deps.Config.PostgresqlURL()
	if err != nil {
		panic(err)
	}
	db, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initEmailSender() {
	switch deps.Config.EmailBackend {
	case config.EmailBackendSMTP:
		sender, err := mail.NewSMTPSender(
			mail.SMTPConfig{
				Host:     deps.Config.EmailHost,
				Port:     deps.Config.EmailPort,
				Username: deps.Config.EmailUser,
				Password: deps.Config.EmailPassword,
				From:     deps.Config.EmailFrom,
			},
			deps.Config.BaseURL,
		)
		if err != nil {
			deps.Logger.Error(context.Background(), "Could not create SMTP client.", dl.Entry("err", err))
			panic(err)
		}
		deps.EmailSender = sender
	case config.EmailBackendSES:
		deps.EmailSender = mail.NewSESSender(
			deps.initAwsConfig(),
			deps.Config.EmailFrom,
			deps.Config.BaseURL,
		)
	default:
		panic(fmt.Sprintf("invalid email backend: %s", deps.Config.EmailBackend))
	}
}

func (deps *Deps) initAwsConfig() aws.Config {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (deps *Deps) initPasswordHasher() {
	switch deps.Config.PasswordHasher {
	case config.PasswordHasherBcrypt:
		deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	default:
		deps.PasswordHasher = passwordhasher.NewSha256()
	}
}

func (deps *Deps) initRabbitmqEmailScheduler() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqEmailExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}
	_, err = rabbitmqChannel.QueueDeclare(deps.Config.RabbitmqEmailQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.QueueBind(
		deps.Config.RabbitmqEmailQueue,
		deps.Config.RabbitmqEmailQueue,
		deps.Config.RabbitmqEmailExchange,
		false,
		nil,
	); err != nil {
		deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.ConfirmationEmailScheduler = confirmationemail.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqEmailExchange,
		deps.Config.RabbitmqEmailQueue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down confirmation email scheduler.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Confirmation email scheduler shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDSN,
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
