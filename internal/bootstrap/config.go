package bootstrap

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type Config struct {
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBDsn         string `mapstructure:"DB_DSN"`
	MongoUri      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"DB_DRIVER":      DriverPostgres,
	"DB_DSN":         "dbname=dippy",
	"MONGO_URI":      "mongodb://localhost:27017",
	"MONGO_DATABASE": "dippy",
	"LOG_LEVEL":      "info",
}

// Setup reads cfgPath if it exists. Environment variables win over the file,
// and defaults fill whatever neither sets.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	v.SetConfigFile(cfgPath)
	err := v.ReadInConfig()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
