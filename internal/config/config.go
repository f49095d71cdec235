package config

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v8"
)

type Config interface {
	ServerAddress() string
	DatabaseURI() string
	BotToken() string
	AdminChatID() int64
	LogLevel() string
	PaymentCardNumber() string
	PaymentCardHolder() string
}

type Builder struct {
	parameters *parameters
	arguments  []string
	err        error
}

type parameters struct {
	ServerAddress     string `env:"RUN_ADDRESS"`
	DatabaseURI       string `env:"DATABASE_URI"`
	BotToken          string `env:"TELEGRAM_BOT_TOKEN"`
	AdminChatID       int64  `env:"ADMIN_CHAT_ID"`
	LogLevel          string `env:"LOG_LEVEL"`
	PaymentCardNumber string `env:"PAYMENT_CARD_NUMBER"`
	PaymentCardHolder string `env:"PAYMENT_CARD_HOLDER"`
}

const (
	defaultServerAddress     = "localhost:8080"
	defaultLogLevel          = "info"
	defaultPaymentCardNumber = "5614 6822 0446 9599"
	defaultPaymentCardHolder = "ORIPOV BAKHTIYOR"
)

func NewBuilder() *Builder {
	return &Builder{
		parameters: &parameters{
			ServerAddress:     defaultServerAddress,
			LogLevel:          defaultLogLevel,
			PaymentCardNumber: defaultPaymentCardNumber,
			PaymentCardHolder: defaultPaymentCardHolder,
		},
		arguments: os.Args[1:],
	}
}

func (b *Builder) LoadEnv() *Builder {
	if b.err != nil {
		return b
	}

	b.err = env.Parse(b.parameters)

	return b
}

func (b *Builder) LoadFlags() *Builder {
	flags := flag.NewFlagSet("orderpay", flag.ContinueOnError)
	flags.StringVar(&b.parameters.ServerAddress, "a", b.parameters.ServerAddress, "адрес и порт запуска HTTP-сервера")
	flags.StringVar(&b.parameters.DatabaseURI, "d", b.parameters.DatabaseURI, "адрес подключения к PostgreSQL")
	flags.StringVar(&b.parameters.BotToken, "t", b.parameters.BotToken, "токен Telegram-бота")
	b.err = flags.Parse(b.arguments)

	return b
}

func (b *Builder) Build() (Config, error) {
	return b, b.err
}

func (b *Builder) ServerAddress() string {
	return b.parameters.ServerAddress
}

func (b *Builder) DatabaseURI() string {
	return b.parameters.DatabaseURI
}

func (b *Builder) BotToken() string {
	return b.parameters.BotToken
}

func (b *Builder) AdminChatID() int64 {
	return b.parameters.AdminChatID
}

func (b *Builder) LogLevel() string {
	return b.parameters.LogLevel
}

func (b *Builder) PaymentCardNumber() string {
	return b.parameters.PaymentCardNumber
}

func (b *Builder) PaymentCardHolder() string {
	return b.parameters.PaymentCardHolder
}
