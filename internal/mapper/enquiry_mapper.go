package mapper

import (
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/model"
)

type EnquiryMapper struct{}

func NewEnquiryMapper() *EnquiryMapper {
	return &EnquiryMapper{}
}

func (m *EnquiryMapper) APIKeyToEntity(k *model.APIKey) *entity.APIKey {
	if k == nil {
		return nil
	}
	return &entity.APIKey{
		Id:         k.Id,
		UserId:     k.UserId,
		Name:       k.Name,
		Key:        k.Key,
		WebsiteURL: k.WebsiteURL,
		IsActive:   k.IsActive,
		LastUsed:   k.LastUsed,
		CreatedAt:  k.CreatedAt,
	}
}

func (m *EnquiryMapper) APIKeyToModel(k *entity.APIKey) *model.APIKey {
	if k == nil {
		return nil
	}
	return &model.APIKey{
		Id:         k.Id,
		UserId:     k.UserId,
		Name:       k.Name,
		Key:        k.Key,
		WebsiteURL: k.WebsiteURL,
		IsActive:   k.IsActive,
		LastUsed:   k.LastUsed,
		CreatedAt:  k.CreatedAt,
	}
}

func (m *EnquiryMapper) ContactToEntity(c *model.ContactUs) *entity.ContactUs {
	if c == nil {
		return nil
	}
	return &entity.ContactUs{
		Id:                c.Id,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		Subject:           c.Subject,
		Message:           c.Message,
		ApiKeyId:          c.ApiKeyId,
		SubmittedByUserId: c.SubmittedByUserId,
		CreatedAt:         c.CreatedAt,
	}
}

func (m *EnquiryMapper) ContactToModel(c *entity.ContactUs) *model.ContactUs {
	if c == nil {
		return nil
	}
	return &model.ContactUs{
		Id:                c.Id,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		Subject:           c.Subject,
		Message:           c.Message,
		ApiKeyId:          c.ApiKeyId,
		SubmittedByUserId: c.SubmittedByUserId,
		CreatedAt:         c.CreatedAt,
	}
}

func (m *EnquiryMapper) EnquiryToEntity(e *model.Enquiry) *entity.Enquiry {
	if e == nil {
		return nil
	}
	return &entity.Enquiry{
		Id:          e.Id,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Message:     e.Message,
		Place:       e.Place,
		AgencyId:    e.AgencyId,
		FranchiseId: e.FranchiseId,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *EnquiryMapper) EnquiryToModel(e *entity.Enquiry) *model.Enquiry {
	if e == nil {
		return nil
	}
	return &model.Enquiry{
		Id:          e.Id,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Message:     e.Message,
		Place:       e.Place,
		AgencyId:    e.AgencyId,
		FranchiseId: e.FranchiseId,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *EnquiryMapper) LeadToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}
	return &entity.Lead{
		Id:           l.Id,
		UserId:       l.UserId,
		Name:         l.Name,
		MobileNumber: l.MobileNumber,
		Email:        l.Email,
		Status:       entity.LeadStatus(l.Status),
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func (m *EnquiryMapper) LeadToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}
	return &model.Lead{
		Id:           l.Id,
		UserId:       l.UserId,
		Name:         l.Name,
		MobileNumber: l.MobileNumber,
		Email:        l.Email,
		Status:       string(l.Status),
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func (m *EnquiryMapper) LeadNoteToEntity(n *model.LeadNote) *entity.LeadNote {
	return &entity.LeadNote{Id: n.Id, LeadId: n.LeadId, Note: n.Note, CreatedAt: n.CreatedAt}
}

func (m *EnquiryMapper) LeadNoteToModel(n *entity.LeadNote) *model.LeadNote {
	return &model.LeadNote{Id: n.Id, LeadId: n.LeadId, Note: n.Note, CreatedAt: n.CreatedAt}
}
