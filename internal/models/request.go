package models

type OpenWizardRequest struct {
	// Optional preselection coming from a direct catalog pick.
	ProductID string `json:"product_id,omitempty"`
	FormatID  string `json:"format_id,omitempty"`
}

type SelectProductRequest struct {
	ProductID string `json:"product_id"`
}

type SelectFormatRequest struct {
	FormatID string `json:"format_id"`
}

type CheckoutRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Delivery string `json:"delivery,omitempty"`
	Address  string `json:"address,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

type SetLanguageRequest struct {
	Language string `json:"language"`
}
