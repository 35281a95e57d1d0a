package bootstrap

import (
	"errors"
	"io"
	"time"

	"github.com/daffahilmyf/dictators-seed/internal/config"
	"github.com/sirupsen/logrus"
)

// BuildLogger returns a logrus logger writing to out (stderr when nil).
func BuildLogger(cfg config.Config, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	if out != nil {
		log.SetOutput(out)
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	switch cfg.Log.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case "console", "":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		return nil, errors.New("log format error: supported values are console or json")
	}
	return log, nil
}
