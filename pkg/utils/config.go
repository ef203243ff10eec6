package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	OTP      OTPConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
}

// RedisConfig configures the flight catalog cache. Empty Addr disables it.
type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	FlightsTTLHours int
}

// KafkaConfig configures the notification event stream. Empty Brokers
// disables publishing.
type KafkaConfig struct {
	Brokers            []string
	NotificationsTopic string
	GroupID            string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_FLIGHTS_TTL_HOURS", 1)
	viper.SetDefault("KAFKA_NOTIFICATIONS_TOPIC", "booking.notifications")
	viper.SetDefault("KAFKA_GROUP_ID", "ticket-mailer")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	var brokers []string
	if raw := viper.GetString("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("SENDER_EMAIL"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		Redis: RedisConfig{
			Addr:            viper.GetString("REDIS_ADDR"),
			Password:        viper.GetString("REDIS_PASS"),
			DB:              viper.GetInt("REDIS_DB"),
			FlightsTTLHours: viper.GetInt("REDIS_FLIGHTS_TTL_HOURS"),
		},
		Kafka: KafkaConfig{
			Brokers:            brokers,
			NotificationsTopic: viper.GetString("KAFKA_NOTIFICATIONS_TOPIC"),
			GroupID:            viper.GetString("KAFKA_GROUP_ID"),
		},
	}

	return config, nil
}
