package models

type Outlet struct {
	ID          uint   `json:"id"`
	OwnerID     uint   `json:"owner_id"`
	OutletName  string `json:"outlet_name"`
	CuisineType string `json:"cuisine_type"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type MenuItem struct {
	ID          uint    `json:"id"`
	OutletID    uint    `json:"outlet_id"`
	ItemName    string  `json:"item_name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsAvailable bool    `json:"is_available"`
}

// Table is a physical food-court table customers can reserve.
type Table struct {
	ID          uint `json:"id"`
	TableNumber int  `json:"table_number"`
	Capacity    int  `json:"capacity"`
	IsAvailable bool `json:"is_available"`
}
