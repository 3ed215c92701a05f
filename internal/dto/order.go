package dto

import "framerly/internal/domain"

// CreateOrderRequest is the public submission payload. A status field sent
// by the client is deliberately absent here: new orders always start pending.
type CreateOrderRequest struct {
	FrameID       int     `json:"frameId"`
	FrameName     string  `json:"frameName"`
	FramePrice    float64 `json:"framePrice"`
	Mode          string  `json:"mode"`
	Quote         string  `json:"quote"`
	Author        string  `json:"author"`
	PhotoOption   string  `json:"photoOption"`
	Size          string  `json:"size"`
	CustomMessage string  `json:"customMessage"`
	PhotoURL      string  `json:"photoUrl"`
	Country       string  `json:"country"`
	State         string  `json:"state"`
	District      string  `json:"district"`
	PinCode       string  `json:"pinCode"`
	Landmark      string  `json:"landmark"`
	VillageOrCity string  `json:"villageOrCity"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
}

// ToOrder maps the request onto a domain order. Status and timestamps are
// assigned by the repository.
func (r CreateOrderRequest) ToOrder() domain.Order {
	return domain.Order{
		FrameID:       r.FrameID,
		FrameName:     r.FrameName,
		FramePrice:    r.FramePrice,
		Mode:          r.Mode,
		Quote:         r.Quote,
		Author:        r.Author,
		PhotoOption:   r.PhotoOption,
		Size:          r.Size,
		CustomMessage: r.CustomMessage,
		PhotoURL:      r.PhotoURL,
		Country:       r.Country,
		State:         r.State,
		District:      r.District,
		PinCode:       r.PinCode,
		Landmark:      r.Landmark,
		VillageOrCity: r.VillageOrCity,
		Phone:         r.Phone,
		Email:         r.Email,
	}
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type ListOrdersResponse struct {
	Orders []domain.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
