package entity

import "time"

type Product struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	ImageURL  string    `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`
}
