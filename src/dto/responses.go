package dto

import "time"

type ApiResponse[T any] struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      T         `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func Success[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func Failure(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Success:   false,
		Message:   message,
		Timestamp: time.Now(),
	}
}

type ClaimSubmissionResponse struct {
	ClaimNumber  string    `json:"claimNumber,omitempty"`
	PolicyNumber string    `json:"policyNumber"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func Accepted(claimNumber, policyNumber string) ClaimSubmissionResponse {
	return ClaimSubmissionResponse{
		ClaimNumber:  claimNumber,
		PolicyNumber: policyNumber,
		Status:       "ACCEPTED",
		SubmittedAt:  time.Now(),
	}
}

func UrgentAccepted(claimNumber, policyNumber string) ClaimSubmissionResponse {
	return ClaimSubmissionResponse{
		ClaimNumber:  claimNumber,
		PolicyNumber: policyNumber,
		Status:       "URGENT_ACCEPTED",
		SubmittedAt:  time.Now(),
	}
}
