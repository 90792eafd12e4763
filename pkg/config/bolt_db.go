package config

import (
	"time"
)

type BoltDB struct {
	Path    string        `default:"batchload.db"`
	Timeout time.Duration `default:"3s"`
}
