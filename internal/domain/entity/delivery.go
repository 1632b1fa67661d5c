package entity

import (
	"encoding/json"
	"time"
)

// EstimateDateLayout is the backend's format for estimated_date.
const EstimateDateLayout = "2006-01-02"

// ProductID identifies a catalogue product.
type ProductID int64

// DeliveryEstimate is a point-in-time answer for one (pincode, product) pair.
// EstimatedDate and Days are only set when Success is true.
type DeliveryEstimate struct {
	Success       bool
	EstimatedDate *time.Time
	Days          *int
	Error         string
}

type deliveryEstimateJSON struct {
	Success       bool   `json:"success"`
	EstimatedDate string `json:"estimated_date,omitempty"`
	Days          *int   `json:"days,omitempty"`
	Error         string `json:"error,omitempty"`
}

// MarshalJSON writes the estimate in the backend's wire shape.
func (e DeliveryEstimate) MarshalJSON() ([]byte, error) {
	out := deliveryEstimateJSON{
		Success: e.Success,
		Days:    e.Days,
		Error:   e.Error,
	}
	if e.EstimatedDate != nil {
		out.EstimatedDate = e.EstimatedDate.Format(EstimateDateLayout)
	}

	return json.Marshal(out)
}
