package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type CatalogResponse struct {
	Categories []ProductCategory    `json:"categories"`
	Products   []ProductWithFormats `json:"products"`
}

type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

type TranslationsResponse struct {
	Language string            `json:"language"`
	Strings  map[string]string `json:"strings"`
}

type PhotoInfo struct {
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type PriceBreakdown struct {
	TotalPrice    int `json:"total_price"`
	DepositAmount int `json:"deposit_amount"`
	DueOnDelivery int `json:"due_on_delivery"`
}

type PreviewResponse struct {
	Photo   PhotoInfo      `json:"photo"`
	Product Product        `json:"product"`
	Format  ProductFormat  `json:"format"`
	Price   PriceBreakdown `json:"price"`
}

type WizardStateResponse struct {
	SessionID   string          `json:"session_id"`
	Step        string          `json:"step"`
	Photo       *PhotoInfo      `json:"photo,omitempty"`
	Products    []Product       `json:"products,omitempty"`
	Formats     []ProductFormat `json:"formats,omitempty"`
	OrderNumber string          `json:"order_number,omitempty"`
}

type AdminOrdersResponse struct {
	Orders []Order `json:"orders"`
}
