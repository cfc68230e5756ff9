package models

import "time"

// Company is the business profile printed on invoices.
type Company struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	GSTIN     string    `json:"gstin" gorm:"column:gstin"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"createdAt"`
}

type CompanyCreate struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
	Logo    string `json:"logo"`
}

type CompanyUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	GSTIN   *string `json:"gstin"`
	Logo    *string `json:"logo"`
}

func (u CompanyUpdate) Changes() map[string]interface{} {
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
	if u.Logo != nil {
		set["logo"] = *u.Logo
	}
	return set
}
