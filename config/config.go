package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	SmtpHost      string
	SmtpPort      string
	SmtpUsername  string
	SmtpPassword  string
	FromEmail     string
	MailWorkers   int
	MailQueueSize int

	DefaultRateLimitCount  uint
	DefaultRateLimitPeriod uint
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "formcraft")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "formcraft")
	ServerPort = getEnv("SERVER_PORT", "8080")

	SmtpHost = getEnv("SMTP_HOST", "localhost")
	SmtpPort = getEnv("SMTP_PORT", "587")
	SmtpUsername = getEnv("SMTP_USERNAME", "")
	SmtpPassword = getEnv("SMTP_PASSWORD", "")
	FromEmail = getEnv("FROM_EMAIL", "no-reply@formcraft.local")
	MailWorkers = getEnvInt("MAIL_WORKERS", 4)
	MailQueueSize = getEnvInt("MAIL_QUEUE_SIZE", 256)

	DefaultRateLimitCount = uint(getEnvInt("RATE_LIMIT_COUNT", 5))
	DefaultRateLimitPeriod = uint(getEnvInt("RATE_LIMIT_PERIOD", 3600))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
