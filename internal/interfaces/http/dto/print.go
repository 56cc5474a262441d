// Package dto defines the JSON request and response bodies of the HTTP
// API. The response shapes are part of the public contract and must not
// change between releases.
package dto

import "github.com/spalter/task-printer/internal/domain/task"

// PrintRequest is the body of POST /print. Every field except message
// is optional; omitted fields fall back to the configured defaults.
type PrintRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Encode   bool   `json:"encode"`
	Address  string `json:"address"`
	Port     int    `json:"port" binding:"omitempty,min=0,max=65535"`
	Codepage string `json:"codepage"`
	Device   string `json:"device"`
}

// ToRawRequest maps the DTO onto the domain input type.
func (r PrintRequest) ToRawRequest() task.RawRequest {
	return task.RawRequest{
		Title:    r.Title,
		Message:  r.Message,
		Date:     r.Date,
		Encode:   r.Encode,
		Address:  r.Address,
		Port:     r.Port,
		Codepage: r.Codepage,
		Device:   r.Device,
	}
}

// PrintResponse is the body of POST /print responses
type PrintResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PrintSucceeded is the fixed success body
func PrintSucceeded() PrintResponse {
	return PrintResponse{Success: true, Message: "Print job completed successfully"}
}

// PrintFailed is the fixed failure body. Failure details stay in the
// server log; clients only learn that the job did not print.
func PrintFailed() PrintResponse {
	return PrintResponse{Success: false, Message: "Print job failed"}
}

// HealthResponse is the body of GET / and GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
