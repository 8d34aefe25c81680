package dto

import (
	"time"

	"github.com/google/uuid"
)

type LeadRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	MobileNumber string `json:"mobile_number" validate:"required,max=20"`
	Email        string `json:"email" validate:"omitempty,email"`
	Status       string `json:"status" validate:"omitempty,oneof=NEW CONTACTED INTERESTED FOLLOW_UP BUSY RNR CALLBACK CLOSED NOT_INTERESTED LOST CONVERTED SWITCH_OFF"`
	Notes        string `json:"notes" validate:"max=5000"`
}

type LeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW CONTACTED INTERESTED FOLLOW_UP BUSY RNR CALLBACK CLOSED NOT_INTERESTED LOST CONVERTED SWITCH_OFF"`
	Note   string `json:"note" validate:"max=5000"`
}

type LeadNoteResponse struct {
	Id        uuid.UUID `json:"id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type LeadResponse struct {
	Id           uuid.UUID          `json:"id"`
	UserId       uuid.UUID          `json:"user"`
	Name         string             `json:"name"`
	MobileNumber string             `json:"mobile_number"`
	Email        string             `json:"email"`
	Status       string             `json:"status"`
	StatusLabel  string             `json:"status_label"`
	Notes        string             `json:"notes"`
	History      []LeadNoteResponse `json:"history,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type LeadListQuery struct {
	PageQuery
	Status string `query:"status"`
	Search string `query:"search"`
}
