package models

type Customer struct {
	ID            string  `json:"id" gorm:"primaryKey;size:36"`
	Name          string  `json:"name" gorm:"not null"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	GSTIN         string  `json:"gstin" gorm:"column:gstin"`
	Outstanding   float64 `json:"outstanding"`
	TotalBusiness float64 `json:"totalBusiness"`
	LastInvoice   *string `json:"lastInvoice" gorm:"size:10"`
	Status        Status  `json:"status" gorm:"size:16"`
}

// CustomerCreate defines the expected JSON structure for creating a customer
type CustomerCreate struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
}

// CustomerUpdate defines the expected JSON structure for updating a customer
type CustomerUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	GSTIN   *string `json:"gstin"`
	Status  *Status `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (u CustomerUpdate) Changes() map[string]interface{} {
	set := map[string]interface{}{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Address != nil {
		set["address"] = *u.Address
	}
	if u.GSTIN != nil {
		set["gstin"] = *u.GSTIN
	}
	if u.Status != nil {
		set["status"] = string(*u.Status)
	}
	return set
}
