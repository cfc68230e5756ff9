package models

// Product is a stocked item. SKU is not unique at the storage level.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;size:36"`
	Name        string  `json:"name" gorm:"not null"`
	SKU         string  `json:"sku" gorm:"column:sku;size:64;index"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
	Unit        string  `json:"unit" gorm:"size:32"`
	HSN         string  `json:"hsn" gorm:"column:hsn"`
	GSTRate     int     `json:"gstRate" gorm:"column:gst_rate"`
	Supplier    string  `json:"supplier"`
	LastUpdated string  `json:"lastUpdated" gorm:"size:10"`
}

// ProductCreate is the POST /products payload.
type ProductCreate struct {
	Name     string   `json:"name" binding:"required"`
	SKU      *string  `json:"sku"`
	Category string   `json:"category" binding:"required"`
	Price    *float64 `json:"price" binding:"required,min=0"`
	Stock    *int     `json:"stock" binding:"required"`
	MinStock *int     `json:"minStock"`
	Unit     *string  `json:"unit"`
	HSN      string   `json:"hsn"`
	GSTRate  *int     `json:"gstRate" binding:"omitempty,min=0"`
	Supplier string   `json:"supplier"`
}

// ProductUpdate is the PUT /products/:id payload. Nil fields are left alone.
type ProductUpdate struct {
	Name     *string  `json:"name"`
	SKU      *string  `json:"sku"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Stock    *int     `json:"stock"`
	MinStock *int     `json:"minStock"`
	Unit     *string  `json:"unit"`
	HSN      *string  `json:"hsn"`
	GSTRate  *int     `json:"gstRate" binding:"omitempty,min=0"`
	Supplier *string  `json:"supplier"`
}

// Changes returns the columns explicitly set in the update.
func (u ProductUpdate) Changes() map[string]interface{} {
	set := map[string]interface{}{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.SKU != nil {
		set["sku"] = *u.SKU
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Stock != nil {
		set["stock"] = *u.Stock
	}
	if u.MinStock != nil {
		set["min_stock"] = *u.MinStock
	}
	if u.Unit != nil {
		set["unit"] = *u.Unit
	}
	if u.HSN != nil {
		set["hsn"] = *u.HSN
	}
	if u.GSTRate != nil {
		set["gst_rate"] = *u.GSTRate
	}
	if u.Supplier != nil {
		set["supplier"] = *u.Supplier
	}
	return set
}
