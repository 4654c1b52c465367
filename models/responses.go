// path: models/responses.go
package models

// SubmitReportPayload is the JSON body for POST /api/reports.
type SubmitReportPayload struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	IDNumber    string `json:"idNumber"`
	Reason      string `json:"reason"`
	DateLost    string `json:"dateLost"`
	SelfieImage string `json:"selfieImage"`
}

// SubmitReportResp is the success body for POST /api/reports.
type SubmitReportResp struct {
	OK      bool   `json:"ok"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// CheckIDRequest is the body for POST /api/check-id.
type CheckIDRequest struct {
	IDNumber string `json:"idNumber"`
}

// CheckIDResponse reports whether the identity number is known to the registry.
type CheckIDResponse struct {
	Exists bool `json:"exists"`
}

// NotifyRequest is the body for the mock POST /api/notify endpoint.
type NotifyRequest struct {
	IDNumber string `json:"idNumber"`
	Reason   string `json:"reason"`
}
