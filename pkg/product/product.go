package product

import (
	"time"
)

type Product struct {
	Id         string
	Title      string
	CategoryId string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
