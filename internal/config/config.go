package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`

	Database  Database  `envPrefix:"DB_"`
	JWT       JWT       `envPrefix:"JWT_"`
	Admin     Admin     `envPrefix:"ADMIN_"`
	Razorpay  Razorpay  `envPrefix:"RAZORPAY_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type Database struct {
	// mysql or sqlite
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"storefront.db"`
}

type JWT struct {
	Secret string        `env:"SECRET,required"`
	Expiry time.Duration `env:"EXPIRY" envDefault:"168h"`
}

// Admin seeds the initial admin account at startup. Admin routes are gated
// by the role claim in the session token, not a shared password.
type Admin struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
	FullName string `env:"FULL_NAME" envDefault:"Store Admin"`
}

type Razorpay struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.razorpay.com"`
	KeyID      string `env:"KEY_ID"`
	KeySecret  string `env:"KEY_SECRET"`
}

type RateLimit struct {
	Enabled bool    `env:"ENABLED" envDefault:"true"`
	Rate    float64 `env:"RATE" envDefault:"5"`
	Burst   int     `env:"BURST" envDefault:"10"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
