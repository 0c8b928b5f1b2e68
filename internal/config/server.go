package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	TableDefaultName       string `env:"TABLE_DEFAULT_NAME" envDefault:"Table"`
	TableDefaultMaxPlayers int    `env:"TABLE_DEFAULT_MAX_PLAYERS" envDefault:"9"`
	TableDefaultSmallBlind int    `env:"TABLE_DEFAULT_SMALL_BLIND" envDefault:"1"`
	TableDefaultBigBlind   int    `env:"TABLE_DEFAULT_BIG_BLIND" envDefault:"2"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
