package model

// AdminSettings is a singleton row pinned at ID 1 holding the payment
// identifiers customers are pointed at.
type AdminSettings struct {
	DTO
	PaymentQrCode *string `json:"paymentQrCode"`
	PaymentUpiId  *string `json:"paymentUpiId"`
	UpdatedBy     *uint   `json:"updatedBy"`
}

// AdminSettingsID is the well-known primary key of the settings row.
const AdminSettingsID uint = 1

type UpdateAdminSettingsInput struct {
	PaymentQrCode *string `json:"paymentQrCode,omitempty"`
	PaymentUpiId  *string `json:"paymentUpiId,omitempty"`
}
