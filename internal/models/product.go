package models

// Product is a menu entry owned by the external catalog service.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Active   bool    `json:"active"`
}

// User is the internal identity resolved from a Telegram id by the
// external user service.
type User struct {
	ID         string `json:"id"`
	TelegramID string `json:"telegramId"`
	Name       string `json:"name,omitempty"`
}
