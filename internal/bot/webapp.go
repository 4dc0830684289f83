package bot

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/JoseSC30/superburguer-miniapp/internal/models"
)

// webAppOrder is the payload the Mini App serializes into
// Telegram.WebApp.sendData.
type webAppOrder struct {
	UserName string       `json:"user_name"`
	UserID   string       `json:"user_id"`
	Items    []webAppItem `json:"items"`
	Total    flexFloat    `json:"total"`
}

type webAppItem struct {
	ID       flexString `json:"id"`
	Name     string     `json:"name"`
	Price    flexFloat  `json:"price"`
	Quantity int        `json:"quantity"`
}

// ParseWebAppOrder converts the Web App cart payload into a creation
// request addressed to the submitting chat.
func ParseWebAppOrder(data string, chatID int64) (*models.CreateOrderRequest, error) {
	var payload webAppOrder
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("decode web app data: %w", err)
	}

	items := make([]models.OrderItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, models.OrderItem{
			ProductID: string(item.ID),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.Price),
		})
	}

	return &models.CreateOrderRequest{
		RequesterID: requesterID(chatID),
		UserID:      payload.UserID,
		UserName:    payload.UserName,
		Items:       items,
		Total:       float64(payload.Total),
	}, nil
}

func requesterID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

// flexFloat accepts both 25 and "25.00"; the catalog service serves prices
// either way depending on its version.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = flexFloat(v)
	return nil
}

// flexString accepts string and numeric ids.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	if trimmed == "null" {
		*s = ""
		return nil
	}
	*s = flexString(trimmed)
	return nil
}
