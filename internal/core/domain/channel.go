package domain

type Channel struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
