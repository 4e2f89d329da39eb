package cmd

import "fmt"

// Config carries all runtime settings, loaded from environment variables.
// KafkaHost may be left empty to disable event publishing.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"pos"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	KafkaHost            string `env:"KAFKA_HOST"`
	KafkaOrderEventTopic string `env:"KAFKA_ORDER_EVENT_TOPIC" envDefault:"order-events"`

	// Cron expression with a seconds field. Defaults to hourly.
	StatsRecountSpec string `env:"STATS_RECOUNT_SPEC" envDefault:"0 0 * * * *"`
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
