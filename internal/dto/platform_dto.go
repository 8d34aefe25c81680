package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlatformDemoRequest struct {
	SelectedDate string `json:"selected_date" validate:"required,datetime=2006-01-02"`
	SelectedTime string `json:"selected_time" validate:"required,datetime=15:04"`
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,max=20"`
	BusinessPlan string `json:"business_plan" validate:"required,oneof=agency franchise freelancer"`
}

type PlatformDemoResponse struct {
	Id           uuid.UUID `json:"id"`
	SelectedDate string    `json:"selected_date"`
	SelectedTime string    `json:"selected_time"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BusinessPlan string    `json:"business_plan"`
	CreatedAt    time.Time `json:"created_at"`
}

type PlatformServiceRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,max=20"`
	BusinessPlan string `json:"business_plan" validate:"required,oneof=agency franchise freelancer"`
}

type PlatformServiceResponse struct {
	Id           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BusinessPlan string    `json:"business_plan"`
	CreatedAt    time.Time `json:"created_at"`
}
