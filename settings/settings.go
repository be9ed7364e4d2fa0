package settings

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var lock = &sync.Mutex{}
var singleSettingsInstace *settings

type settings struct {
	PORT             string `envconfig:"PORT" default:"8080"`
	JWT_SECRET_KEY   string `envconfig:"JWT_SECRET_KEY" required:"true"`
	MONGO_DB         string `envconfig:"MONGO_DB" required:"true"`
	MONGO_CONNECTION string `envconfig:"MONGO_CONNECTION" default:"mongodb://localhost:27017"`
	CLIENT_URL       string `envconfig:"CLIENT_URL" default:"localhost:3000"`
	NODE_ENV         string `envconfig:"NODE_ENV" default:"dev"`
	RATE_LIMIT       uint   `envconfig:"RATE_LIMIT" default:"7"`
}

func (s *settings) IsProd() bool {
	return s.NODE_ENV == "prod"
}

func newSettings() (*settings, error) {
	var s settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadEnv() {
	if os.Getenv("NODE_ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using process environment")
		}
	}
}

func GetSettings() *settings {
	lock.Lock()
	defer lock.Unlock()
	if singleSettingsInstace == nil {
		s, err := newSettings()
		if err != nil {
			log.Fatalf("Invalid settings: %v", err)
		}
		singleSettingsInstace = s
	}
	return singleSettingsInstace
}
