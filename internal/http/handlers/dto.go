package handlers

type ItemRequest struct {
	Id          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Threshold   *int   `json:"threshold,omitempty"` // defaults to 10 when absent
	Barcode     string `json:"barcode"`
}

type ItemResponse struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Threshold   int    `json:"threshold"`
	Barcode     string `json:"barcode"`
	Status      string `json:"status"`
	LowStock    bool   `json:"low_stock"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type AlertsResult struct {
	Notified int    `json:"notified"`
	Message  string `json:"message"`
}
