package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	Port      string
	DBSource  string
	RedisAddr string

	JWTSecret string
	JWTTTL    time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	// payload rendered into the payment QR (e.g. a KBZPay deep link)
	PaymentQRPayload string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8000"),
		DBSource:         getEnv("DB_SOURCE", "campuseats.db"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPass:         getEnv("SMTP_PASS", ""),
		MailFrom:         getEnv("MAIL_FROM", "no-reply@campuseats.local"),
		PaymentQRPayload: getEnv("PAYMENT_QR_PAYLOAD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
