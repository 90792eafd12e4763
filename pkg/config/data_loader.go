package config

import (
	"time"
)

type DataLoader struct {
	Wait     time.Duration `default:"250us"`
	MaxBatch int           `split_words:"true" default:"1000"`
}
