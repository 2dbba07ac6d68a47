package models

// Rows mirror the hosted tables; the store assigns ids and timestamps, so
// insertable fields carry omitempty.

type ProductCategory struct {
	ID            string `json:"id,omitempty"`
	NameUK        string `json:"name_uk"`
	NameRU        string `json:"name_ru"`
	Slug          string `json:"slug"`
	DescriptionUK string `json:"description_uk"`
	DescriptionRU string `json:"description_ru"`
	SortOrder     int    `json:"sort_order"`
}

type Product struct {
	ID            string `json:"id,omitempty"`
	CategoryID    string `json:"category_id"`
	NameUK        string `json:"name_uk"`
	NameRU        string `json:"name_ru"`
	Slug          string `json:"slug"`
	DescriptionUK string `json:"description_uk"`
	DescriptionRU string `json:"description_ru"`
	BasePrice     int    `json:"base_price"`
	ImageURL      string `json:"image_url"`
	IsActive      bool   `json:"is_active"`
	SortOrder     int    `json:"sort_order"`
}

// Name returns the product name for a language tag, defaulting to Ukrainian.
func (p Product) Name(lang string) string {
	if lang == "ru" {
		return p.NameRU
	}
	return p.NameUK
}

func (p Product) Description(lang string) string {
	if lang == "ru" {
		return p.DescriptionRU
	}
	return p.DescriptionUK
}

type ProductFormat struct {
	ID        string `json:"id,omitempty"`
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Price     int    `json:"price"`
	SortOrder int    `json:"sort_order"`
}

// ProductWithFormats is the in-memory join the catalog page renders.
type ProductWithFormats struct {
	Product
	Formats []ProductFormat `json:"formats"`
}
