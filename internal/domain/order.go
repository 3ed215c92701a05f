package domain

import "time"

// Order is a customer's custom-frame request plus shipping, contact and
// triage state. Frame name and price are a snapshot taken at order time;
// later catalog changes never alter past orders.
type Order struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	FrameID       int       `json:"frameId" bson:"frameId"`
	FrameName     string    `json:"frameName" bson:"frameName"`
	FramePrice    float64   `json:"framePrice" bson:"framePrice"`
	Mode          string    `json:"mode" bson:"mode"`
	Quote         string    `json:"quote,omitempty" bson:"quote,omitempty"`
	Author        string    `json:"author,omitempty" bson:"author,omitempty"`
	PhotoOption   string    `json:"photoOption" bson:"photoOption"`
	Size          string    `json:"size,omitempty" bson:"size,omitempty"`
	CustomMessage string    `json:"customMessage,omitempty" bson:"customMessage,omitempty"`
	PhotoURL      string    `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Country       string    `json:"country" bson:"country"`
	State         string    `json:"state" bson:"state"`
	District      string    `json:"district" bson:"district"`
	PinCode       string    `json:"pinCode" bson:"pinCode"`
	Landmark      string    `json:"landmark,omitempty" bson:"landmark,omitempty"`
	VillageOrCity string    `json:"villageOrCity" bson:"villageOrCity"`
	Phone         string    `json:"phone" bson:"phone"`
	Email         string    `json:"email" bson:"email"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

const (
	OrderStatusPending = "pending"
	OrderStatusSolved  = "solved"
	OrderStatusDenied  = "denied"
)

const (
	ModeQuote = "quote"
	ModePhoto = "photo"
)

const (
	PhotoOptionNone    = "none"
	PhotoOptionUpload  = "upload"
	PhotoOptionSuggest = "suggest"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// IsValidStatus reports whether s is one of the three triage states.
func IsValidStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusSolved || s == OrderStatusDenied
}

// IsValidMode reports whether m is a known customization mode.
func IsValidMode(m string) bool {
	return m == ModeQuote || m == ModePhoto
}

// IsValidPhotoOption reports whether p is a known photo option.
func IsValidPhotoOption(p string) bool {
	return p == PhotoOptionNone || p == PhotoOptionUpload || p == PhotoOptionSuggest
}
