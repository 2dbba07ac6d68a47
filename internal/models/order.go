package models

import "time"

const (
	DeliveryNovaPoshta = "nova_poshta"
	DeliveryUkrposhta  = "ukrposhta"

	OrderStatusNew       = "new"
	PaymentStatusPending = "pending"
)

type UploadedPhoto struct {
	ID            string     `json:"id,omitempty"`
	FileName      string     `json:"file_name"`
	FilePath      string     `json:"file_path"`
	FileSize      int64      `json:"file_size"`
	MimeType      string     `json:"mime_type"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	ThumbnailPath string     `json:"thumbnail_path"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

type Order struct {
	ID              string     `json:"id,omitempty"`
	OrderNumber     string     `json:"order_number"`
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerEmail   string     `json:"customer_email"`
	ProductID       string     `json:"product_id"`
	FormatID        string     `json:"format_id"`
	PhotoID         string     `json:"photo_id"`
	TotalPrice      int        `json:"total_price"`
	DepositAmount   int        `json:"deposit_amount"`
	DeliveryMethod  string     `json:"delivery_method"`
	DeliveryAddress string     `json:"delivery_address"`
	Comment         string     `json:"comment"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}
