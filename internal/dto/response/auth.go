package response

type LoginResponse struct {
	UserID int64 `json:"userId"`
}
