package request

type CreateProductRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	ImageURL string `json:"imageUrl" validate:"required"`
}
