package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host           string
		Port           string
		AllowedOrigins []string
		// HealthPingURL is the public URL of our own health endpoint,
		// periodically hit by the keep-alive pinger. Empty disables the pinger.
		HealthPingURL string
	}

	DatabaseConfig struct {
		URI  string
		Name string
	}

	CloudinaryConfig struct {
		CloudName string
		APIKey    string
		APISecret string
	}

	Config struct {
		Debug              bool
		TestMode           bool
		Env                string
		Build              string
		AppName            string
		SecretKey          string
		FrontendBaseURL    string
		DefaultFromEmail   mail.Address
		ContactEmail       mail.Address
		JWTExpirationDelta time.Duration
		SendgridAPIKey     string
		RollbarToken       string
		Server             ServerConfig
		Database           DatabaseConfig
		Cloudinary         CloudinaryConfig
	}
)

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// NewConfig loads the app configuration from defaults, an optional
// `config/.env.<env>` file and environment variables (in increasing
// order of precedence).
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Bright Academy")
	v.SetDefault("secretKey", "q2n$8span+a0d)y6#yw0-p5^e&4t^+y9b#-ro057hnx(3u&f$m")
	v.SetDefault("frontendBaseURL", "http://localhost:5173")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("contactEmail", "hello@localhost")
	v.SetDefault("jwtExpirationDelta", 2*time.Hour)
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")
	v.SetDefault("serverHost", "")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("allowedOrigins", []string{"http://localhost:5173"})
	v.SetDefault("healthPingURL", "")
	v.SetDefault("databaseURI", "mongodb://localhost:27017")
	v.SetDefault("databaseName", "academy")
	v.SetDefault("cloudinaryCloudName", "")
	v.SetDefault("cloudinaryApiKey", "")
	v.SetDefault("cloudinaryApiSecret", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	testMode := false
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	appName := v.GetString("appName")
	return &Config{
		Debug:              v.GetBool("debug"),
		TestMode:           testMode,
		Env:                env,
		Build:              v.GetString("build"),
		AppName:            appName,
		SecretKey:          v.GetString("secretKey"),
		FrontendBaseURL:    v.GetString("frontendBaseURL"),
		DefaultFromEmail:   mail.Address{Name: appName, Address: v.GetString("defaultFromEmail")},
		ContactEmail:       mail.Address{Name: appName, Address: v.GetString("contactEmail")},
		JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		SendgridAPIKey:     v.GetString("sendgridApiKey"),
		RollbarToken:       v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:           v.GetString("serverHost"),
			Port:           v.GetString("serverPort"),
			AllowedOrigins: v.GetStringSlice("allowedOrigins"),
			HealthPingURL:  v.GetString("healthPingURL"),
		},
		Database: DatabaseConfig{
			URI:  v.GetString("databaseURI"),
			Name: v.GetString("databaseName"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: v.GetString("cloudinaryCloudName"),
			APIKey:    v.GetString("cloudinaryApiKey"),
			APISecret: v.GetString("cloudinaryApiSecret"),
		},
	}
}
