package logger

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request. Request-id ikut dicetak
// (di-set di main lewat header X-Request-ID) supaya log bisa dikorelasikan.
func LoggerMiddleware() fiber.Handler {
	tz := os.Getenv("LOG_TIMEZONE")
	if tz == "" {
		tz = "Asia/Jakarta"
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   tz,
		Format:     "[${time}] ${respHeader:X-Request-ID} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
