package dto

// ScanStatusRequest is the client's self-service status change.
type ScanStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

// ScanOrderRequest is a client-originated order from the scan page.
type ScanOrderRequest struct {
	Description          string `json:"description" binding:"required"`
	ExpectedDeliveryDate string `json:"expected_delivery_date"`
}

// ScanResponse shows a client their record and orders.
type ScanResponse struct {
	Client ClientResponse  `json:"client"`
	Orders []OrderResponse `json:"orders"`
}
