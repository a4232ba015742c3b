package config

import "time"

type Bot struct {
	Token string `env:"BOT_TOKEN,required" json:"-" validate:"required"`
	// PollTimeout таймаут long polling getUpdates.
	PollTimeout time.Duration `env:"BOT_POLL_TIMEOUT" envDefault:"60s" validate:"gte=0,lte=10m"`
	// OutboxSize буфер исходящих сообщений.
	OutboxSize int `env:"BOT_OUTBOX_SIZE" envDefault:"100" validate:"gte=0"`
	// LogHTTP уровень debug для дампов запросов к Bot API.
	LogHTTP bool `env:"BOT_LOG_HTTP" envDefault:"false"`
}

type Editor struct {
	// PendingTTL сколько ждать значение после нажатия кнопки. 0 без ограничения.
	PendingTTL time.Duration `env:"EDITOR_PENDING_TTL" envDefault:"0" validate:"gte=0"`
}

// Redis общее хранилище ожидаемых правок. Пустой адрес: хранение в памяти процесса.
type Redis struct {
	Address  string `env:"REDIS_ADDRESS" validate:"omitempty,hostname_port"`
	Username string `env:"REDIS_USERNAME"`
	Password string `env:"REDIS_PASSWORD" json:"-"`
	DB       int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10" validate:"gte=1"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}
