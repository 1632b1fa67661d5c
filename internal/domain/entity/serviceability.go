package entity

// ServiceabilityState is the checker's state for the current pincode.
type ServiceabilityState string

const (
	ServiceabilityUnknown       ServiceabilityState = "unknown"
	ServiceabilityChecking      ServiceabilityState = "checking"
	ServiceabilityServiceable   ServiceabilityState = "serviceable"
	ServiceabilityUnserviceable ServiceabilityState = "unserviceable"
	// ServiceabilityFailedOpen means the backend could not be reached and the area is assumed serviceable.
	ServiceabilityFailedOpen ServiceabilityState = "failed_open"
)

// ServiceabilityVerdict tells consumers whether the current area can be served at all.
type ServiceabilityVerdict struct {
	IsServiceable bool                `json:"is_serviceable"`
	Checking      bool                `json:"checking"`
	Message       string              `json:"message"`
	State         ServiceabilityState `json:"state"`
	Pincode       Pincode             `json:"pincode,omitempty"`
}

// DefaultVerdict is the optimistic verdict used when no well-formed pincode is known.
func DefaultVerdict() ServiceabilityVerdict {
	return ServiceabilityVerdict{
		IsServiceable: true,
		State:         ServiceabilityUnknown,
	}
}

// ServiceabilityResult is the backend's answer for one pincode.
type ServiceabilityResult struct {
	Serviceable bool   `json:"serviceable"`
	Message     string `json:"message,omitempty"`
}
