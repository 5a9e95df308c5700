package request

// CreateReviewRequest carries the multipart form fields of a review
// submission. PhotoURL is filled in by the handler after the upload is
// stored, not by the client.
type CreateReviewRequest struct {
	UserID     int64   `json:"userId" validate:"required,min=1"`
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText *string `json:"reviewText,omitempty" validate:"omitempty,max=1000"`
	PhotoURL   *string `json:"-"`
}
