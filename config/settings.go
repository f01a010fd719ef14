package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the full runtime configuration shared by order-svc and agg-svc.
type Settings struct {
	HTTPAddr       string        `yaml:"http_addr"`
	PublicBaseURL  string        `yaml:"public_base_url"`
	LoginPath      string        `yaml:"login_path"`
	TokenTTL       time.Duration `yaml:"token_ttl"`
	CartTTL        time.Duration `yaml:"cart_ttl"`
	AuthURL        string        `yaml:"auth_url"`
	AuthServiceKey string        `yaml:"auth_service_key"`
	Postgres       Postgres      `yaml:"postgres"`
	Redis          Redis         `yaml:"redis"`
	Kafka          Kafka         `yaml:"kafka"`
}

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Name)
}

type Redis struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Kafka struct {
	Broker      string `yaml:"broker"`
	OrdersTopic string `yaml:"orders_topic"`
	GroupID     string `yaml:"group_id"`
}

func Defaults() Settings {
	return Settings{
		HTTPAddr:      ":8081",
		PublicBaseURL: "http://localhost:3000",
		LoginPath:     "/login",
		TokenTTL:      24 * time.Hour,
		CartTTL:       24 * time.Hour,
		Postgres:      Postgres{Host: "localhost", Port: "5432", Name: "restaurant", User: "postgres"},
		Redis:         Redis{Host: "localhost", Port: "6379"},
		Kafka:         Kafka{Broker: "localhost:9092", OrdersTopic: "order-events", GroupID: "agg-svc-consumer"},
	}
}

// Load builds settings from defaults, then the YAML file at path (if any),
// then environment variables.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return s, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := s.applyEnv(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) applyEnv() error {
	setString(&s.HTTPAddr, "HTTP_ADDR")
	setString(&s.PublicBaseURL, "PUBLIC_BASE_URL")
	setString(&s.LoginPath, "LOGIN_PATH")
	setString(&s.AuthURL, "AUTH_URL")
	setString(&s.AuthServiceKey, "AUTH_SERVICE_KEY")

	setString(&s.Postgres.Host, "DB_HOST")
	setString(&s.Postgres.Port, "DB_PORT")
	setString(&s.Postgres.Name, "DB_NAME")
	setString(&s.Postgres.User, "DB_USER")
	setString(&s.Postgres.Password, "DB_PASSWORD")

	setString(&s.Redis.Host, "REDIS_HOST")
	setString(&s.Redis.Port, "REDIS_PORT")

	setString(&s.Kafka.Broker, "KAFKA_BROKER")
	setString(&s.Kafka.OrdersTopic, "KAFKA_ORDERS_TOPIC")
	setString(&s.Kafka.GroupID, "KAFKA_GROUP_ID")

	if err := setDuration(&s.TokenTTL, "TOKEN_TTL"); err != nil {
		return err
	}
	return setDuration(&s.CartTTL, "CART_TTL")
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setDuration(dst *time.Duration, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("env %s: %w", key, err)
	}
	*dst = d
	return nil
}
