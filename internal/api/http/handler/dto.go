package handler

import (
	"time"

	"github.com/dtroode/storefront-server/internal/model"
)

type signupRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailAddress  string `json:"email_address"`
	ContactNumber string `json:"contact_number"`
	Password      string `json:"password"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type customerResponse struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	EmailAddress  string     `json:"email_address"`
	ContactNumber string     `json:"contact_number"`
	LastLoginTime *time.Time `json:"last_login_time,omitempty"`
}

type loginResponse struct {
	customerResponse
	Message string `json:"message"`
}

type logoutResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func toCustomerResponse(c model.Customer) customerResponse {
	return customerResponse{
		ID:            c.ID.String(),
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		EmailAddress:  c.Email,
		ContactNumber: c.ContactNumber,
		LastLoginTime: c.LastLoginAt,
	}
}

type saveAddressRequest struct {
	FlatBuildingName string `json:"flat_building_name"`
	Locality         string `json:"locality"`
	City             string `json:"city"`
	Pincode          string `json:"pincode"`
	StateUUID        string `json:"state_uuid"`
}

type stateResponse struct {
	ID        string `json:"id"`
	StateName string `json:"state_name"`
}

type addressResponse struct {
	ID               string        `json:"id"`
	FlatBuildingName string        `json:"flat_building_name"`
	Locality         string        `json:"locality"`
	City             string        `json:"city"`
	Pincode          string        `json:"pincode"`
	State            stateResponse `json:"state"`
}

type addressListResponse struct {
	Addresses []addressResponse `json:"addresses"`
}

type statesListResponse struct {
	States []stateResponse `json:"states"`
}

func toStateResponse(s model.State) stateResponse {
	return stateResponse{ID: s.ID.String(), StateName: s.Name}
}

func toAddressResponse(a model.Address) addressResponse {
	return addressResponse{
		ID:               a.ID.String(),
		FlatBuildingName: a.FlatBuildingName,
		Locality:         a.Locality,
		City:             a.City,
		Pincode:          a.Pincode,
		State:            toStateResponse(a.State),
	}
}

type itemResponse struct {
	ID       string `json:"id"`
	ItemName string `json:"item_name"`
	Price    int64  `json:"price"`
	BrandID  string `json:"brand_id"`
}

type categoryResponse struct {
	ID           string         `json:"id"`
	CategoryName string         `json:"category_name"`
	Items        []itemResponse `json:"items,omitempty"`
}

type categoriesListResponse struct {
	Categories []categoryResponse `json:"categories"`
}

type brandResponse struct {
	ID                   string             `json:"id"`
	BrandName            string             `json:"brand_name"`
	Address              addressResponse    `json:"address"`
	CustomerRating       float64            `json:"customer_rating"`
	NumberCustomersRated int                `json:"number_customers_rated"`
	Categories           []categoryResponse `json:"categories"`
}

type brandsListResponse struct {
	Brands []brandResponse `json:"brands"`
}

func toItemResponses(items []model.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, itemResponse{
			ID:       it.ID.String(),
			ItemName: it.Name,
			Price:    it.Price,
			BrandID:  it.BrandID.String(),
		})
	}
	return out
}

func toCategoryResponse(c model.Category) categoryResponse {
	resp := categoryResponse{ID: c.ID.String(), CategoryName: c.Name}
	if c.Items != nil {
		resp.Items = toItemResponses(c.Items)
	}
	return resp
}

func toBrandResponse(b model.Brand) brandResponse {
	categories := make([]categoryResponse, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, toCategoryResponse(c))
	}

	return brandResponse{
		ID:                   b.ID.String(),
		BrandName:            b.Name,
		Address:              toAddressResponse(b.Address),
		CustomerRating:       b.CustomerRating,
		NumberCustomersRated: b.NumberCustomersRated,
		Categories:           categories,
	}
}
