package entity

import (
	"time"

	"github.com/google/uuid"
)

type APIKey struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Name       string
	Key        string
	WebsiteURL string
	IsActive   bool
	LastUsed   *time.Time
	CreatedAt  time.Time
}

type ContactUs struct {
	Id                uuid.UUID
	Name              string
	Email             string
	Phone             string
	Subject           string
	Message           string
	ApiKeyId          *uuid.UUID
	SubmittedByUserId *uuid.UUID
	CreatedAt         time.Time
}

type Enquiry struct {
	Id          uuid.UUID
	Name        string
	Email       string
	Phone       string
	Message     string
	Place       string
	AgencyId    *uuid.UUID
	FranchiseId *uuid.UUID
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LeadStatus string

const (
	LeadNew           LeadStatus = "NEW"
	LeadContacted     LeadStatus = "CONTACTED"
	LeadInterested    LeadStatus = "INTERESTED"
	LeadFollowUp      LeadStatus = "FOLLOW_UP"
	LeadBusy          LeadStatus = "BUSY"
	LeadRNR           LeadStatus = "RNR"
	LeadCallback      LeadStatus = "CALLBACK"
	LeadClosed        LeadStatus = "CLOSED"
	LeadNotInterested LeadStatus = "NOT_INTERESTED"
	LeadLost          LeadStatus = "LOST"
	LeadConverted     LeadStatus = "CONVERTED"
	LeadSwitchOff     LeadStatus = "SWITCH_OFF"
)

var LeadStatuses = []LeadStatus{
	LeadNew, LeadContacted, LeadInterested, LeadFollowUp, LeadBusy, LeadRNR,
	LeadCallback, LeadClosed, LeadNotInterested, LeadLost, LeadConverted, LeadSwitchOff,
}

type Lead struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Name         string
	MobileNumber string
	Email        string
	Status       LeadStatus
	Notes        string
	History      []*LeadNote
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LeadNote struct {
	Id        uuid.UUID
	LeadId    uuid.UUID
	Note      string
	CreatedAt time.Time
}
