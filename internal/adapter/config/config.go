package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Payment  *Payment
	SMTP     *SMTP
	Shop     *Shop
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	// DSN is optional: with no database configured the service falls back
	// to the in-memory order store.
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Payment struct {
	KeyID     string `env:"RAZORPAY_KEY_ID"`
	KeySecret string `env:"RAZORPAY_KEY_SECRET"`
}

type SMTP struct {
	Host       string `env:"SMTP_HOST"`
	Port       int    `env:"SMTP_PORT" envDefault:"587"`
	Username   string `env:"SMTP_USERNAME"`
	Password   string `env:"SMTP_PASSWORD"`
	From       string `env:"SMTP_FROM"`
	TimeoutSec int    `env:"SMTP_TIMEOUT_SEC" envDefault:"10"`
	QueueSize  int    `env:"NOTIFY_QUEUE_SIZE" envDefault:"64"`
}

type Shop struct {
	ShopURL     string `env:"SHOP_URL"`
	TrackingURL string `env:"SHOP_TRACKING_URL"`
	ReviewURL   string `env:"SHOP_REVIEW_URL"`
	Carrier     string `env:"SHOP_CARRIER"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var payment Payment
	var smtp SMTP
	var shop Shop
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&shop.ShopURL, "s", `http://localhost:3000`, "Storefront base URL")
	flag.StringVar(&shop.TrackingURL, "t", `http://localhost:3000/track`, "Order tracking base URL")
	flag.StringVar(&shop.ReviewURL, "r", `http://localhost:3000/reviews`, "Product review URL")
	flag.StringVar(&shop.Carrier, "c", `India Post`, "Shipping carrier name")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&payment)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment config: %w", err)
	}
	err = env.Parse(&smtp)
	if err != nil {
		return nil, fmt.Errorf("error parsing smtp config: %w", err)
	}
	err = env.Parse(&shop)
	if err != nil {
		return nil, fmt.Errorf("error parsing shop config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Payment:  &payment,
		SMTP:     &smtp,
		Shop:     &shop,
		App:      &app,
	}

	return &config, nil
}
