package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the app reads from the environment. Loaded once in
// main and passed to constructors explicitly.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	DBURL string `envconfig:"DB_URL" required:"true"`

	JWTSecret        string `envconfig:"JWT_SECRET" required:"true"`
	JWTIssuer        string `envconfig:"JWT_ISSUER" default:"barbershop-backend"`
	JWTAudience      string `envconfig:"JWT_AUDIENCE" default:"barbershop-frontend"`
	JWTExpiryMinutes int    `envconfig:"JWT_EXPIRY_MINUTES" default:"60"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`

	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `envconfig:"TWILIO_FROM_NUMBER"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
