package models

type CreateOrderRequest struct {
	LeaseID int     `json:"lease_id"`
	Amount  float64 `json:"amount"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"` // paise
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}
