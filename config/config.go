package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	Port           string
	Timezone       string
	Lang           string
	LogLevel       string
	GeminiEndpoint string
	GeminiAPIKey   string
	GeminiModel    string
	AIRatePerMin   int
	CORSOrigins    []string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("[cfg] no .env file loaded")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	rate, err := strconv.Atoi(get("AI_RATE_PER_MIN", "6"))
	if err != nil || rate <= 0 {
		rate = 6
	}
	var origins []string
	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "Asia/Ho_Chi_Minh"),
		Lang:           get("APP_LANG", "vi"),
		LogLevel:       get("LOG_LEVEL", "info"),
		GeminiEndpoint: get("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta/models"),
		GeminiAPIKey:   get("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:    get("GEMINI_MODEL", "gemini-2.5-flash"),
		AIRatePerMin:   rate,
		CORSOrigins:    origins,
	}
	logrus.WithFields(logrus.Fields{
		"port":       cfg.Port,
		"tz":         cfg.Timezone,
		"lang":       cfg.Lang,
		"model":      cfg.GeminiModel,
		"ai_enabled": cfg.GeminiAPIKey != "",
	}).Info("[cfg] loaded")
	return cfg
}

// Level maps LOG_LEVEL onto logrus, defaulting to info.
func (c AppConfig) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
