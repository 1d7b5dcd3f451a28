package config

import "os"

// Config carries every environment-backed setting the service needs.
// Values are read once at startup; `.env` is loaded by main before Load runs.
type Config struct {
	Addr        string
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	CORSOrigins string

	// SMS relay: which gateway strategy to use ("primary" or "secondary")
	// and the credentials for each.
	SMSProvider  string
	Fast2SMSKey  string
	MSG91AuthKey string
	MSG91Sender  string

	// templated email provider
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSUserID     string

	// external data providers
	GeocodeBaseURL string
	PredictAPIURL  string
	WeatherBaseURL string
	MarketAPIURL   string
	MarketAPIKey   string
}

func Load() Config {
	return Config{
		Addr:        getenv("APP_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    getenv("REDIS_URL", "redis://localhost:6379/0"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: getenv("CORS_ORIGINS", "*"),

		SMSProvider:  getenv("SMS_PROVIDER", "primary"),
		Fast2SMSKey:  os.Getenv("FAST2SMS_API_KEY"),
		MSG91AuthKey: os.Getenv("MSG91_AUTH_KEY"),
		MSG91Sender:  getenv("MSG91_SENDER", "AGRLNK"),

		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSUserID:     os.Getenv("EMAILJS_USER_ID"),

		GeocodeBaseURL: getenv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		PredictAPIURL:  os.Getenv("PREDICT_API_URL"),
		WeatherBaseURL: getenv("WEATHER_BASE_URL", "https://api.open-meteo.com"),
		MarketAPIURL:   os.Getenv("MARKET_API_URL"),
		MarketAPIKey:   os.Getenv("MARKET_API_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
