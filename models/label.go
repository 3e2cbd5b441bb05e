package models

// Label is a tracking sticker generated for a courier. The tracking
// code is the public handle clients use on the tracking page.
type Label struct {
	ID           int64  `json:"id"`
	CourierID    int64  `json:"courrierId"`
	TrackingCode string `json:"codeTracking"`
	CreatedAt    string `json:"dateCreation"`
}
