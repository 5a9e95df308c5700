package entity

import "time"

type Review struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	ProductID  int64     `db:"product_id"`
	Rating     int       `db:"rating"` // 1-5
	ReviewText *string   `db:"review_text"`
	ImageURL   *string   `db:"image_url"`
	CreatedAt  time.Time `db:"created_at"`
}
