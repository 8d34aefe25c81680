package mapper

import (
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/pkg/lifecycle"
)

type VisaMapper struct{}

func NewVisaMapper() *VisaMapper {
	return &VisaMapper{}
}

func (m *VisaMapper) ToEntity(v *model.VisaApplication) *entity.VisaApplication {
	if v == nil {
		return nil
	}
	return &entity.VisaApplication{
		Id:                 v.Id,
		ApplicationNumber:  v.ApplicationNumber,
		ApplicantName:      v.ApplicantName,
		PassportNumber:     v.PassportNumber,
		Nationality:        v.Nationality,
		DestinationCountry: v.DestinationCountry,
		VisaType:           entity.VisaType(v.VisaType),
		TravelDate:         fromDate(v.TravelDate),
		ReturnDate:         fromDate(v.ReturnDate),
		PurposeOfVisit:     v.PurposeOfVisit,
		Status:             lifecycle.State(v.Status),
		ProcessingFee:      v.ProcessingFee,
		EmbassyFee:         v.EmbassyFee,
		ServiceFee:         v.ServiceFee,
		TotalFee:           v.TotalFee,
		AppliedBy:          v.AppliedBy,
		Remarks:            v.Remarks,
		ProcessedBy:        v.ProcessedBy,
		ProcessedAt:        v.ProcessedAt,
		SubmittedAt:        v.SubmittedAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func (m *VisaMapper) ToModel(v *entity.VisaApplication) *model.VisaApplication {
	if v == nil {
		return nil
	}
	return &model.VisaApplication{
		Id:                 v.Id,
		ApplicationNumber:  v.ApplicationNumber,
		ApplicantName:      v.ApplicantName,
		PassportNumber:     v.PassportNumber,
		Nationality:        v.Nationality,
		DestinationCountry: v.DestinationCountry,
		VisaType:           string(v.VisaType),
		TravelDate:         toDate(v.TravelDate),
		ReturnDate:         toDate(v.ReturnDate),
		PurposeOfVisit:     v.PurposeOfVisit,
		Status:             string(v.Status),
		ProcessingFee:      v.ProcessingFee,
		EmbassyFee:         v.EmbassyFee,
		ServiceFee:         v.ServiceFee,
		TotalFee:           v.TotalFee,
		AppliedBy:          v.AppliedBy,
		Remarks:            v.Remarks,
		ProcessedBy:        v.ProcessedBy,
		ProcessedAt:        v.ProcessedAt,
		SubmittedAt:        v.SubmittedAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func (m *VisaMapper) ToEntities(items []*model.VisaApplication) []*entity.VisaApplication {
	entities := make([]*entity.VisaApplication, len(items))
	for i, v := range items {
		entities[i] = m.ToEntity(v)
	}
	return entities
}

func (m *VisaMapper) DocumentToEntity(d *model.VisaDocument) *entity.VisaDocument {
	if d == nil {
		return nil
	}
	return &entity.VisaDocument{
		Id:                d.Id,
		VisaApplicationId: d.VisaApplicationId,
		DocumentType:      entity.DocumentType(d.DocumentType),
		FileKey:           d.FileKey,
		FileName:          d.FileName,
		ContentType:       d.ContentType,
		SizeBytes:         d.SizeBytes,
		Description:       d.Description,
		IsVerified:        d.IsVerified,
		VerifiedBy:        d.VerifiedBy,
		VerifiedAt:        d.VerifiedAt,
		CreatedAt:         d.CreatedAt,
	}
}

func (m *VisaMapper) DocumentToModel(d *entity.VisaDocument) *model.VisaDocument {
	if d == nil {
		return nil
	}
	return &model.VisaDocument{
		Id:                d.Id,
		VisaApplicationId: d.VisaApplicationId,
		DocumentType:      string(d.DocumentType),
		FileKey:           d.FileKey,
		FileName:          d.FileName,
		ContentType:       d.ContentType,
		SizeBytes:         d.SizeBytes,
		Description:       d.Description,
		IsVerified:        d.IsVerified,
		VerifiedBy:        d.VerifiedBy,
		VerifiedAt:        d.VerifiedAt,
		CreatedAt:         d.CreatedAt,
	}
}

type PaymentMapper struct{}

func NewPaymentMapper() *PaymentMapper {
	return &PaymentMapper{}
}

func (m *PaymentMapper) ToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:              p.Id,
		PaymentAmount:   p.PaymentAmount,
		PaymentMode:     entity.PaymentMode(p.PaymentMode),
		NoOfTravelers:   p.NoOfTravelers,
		ReferenceNumber: p.ReferenceNumber,
		Status:          lifecycle.State(p.Status),
		Notes:           p.Notes,
		PaidBy:          p.PaidBy,
		ProcessedBy:     p.ProcessedBy,
		ProcessedAt:     p.ProcessedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *PaymentMapper) ToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:              p.Id,
		PaymentAmount:   p.PaymentAmount,
		PaymentMode:     string(p.PaymentMode),
		NoOfTravelers:   p.NoOfTravelers,
		ReferenceNumber: p.ReferenceNumber,
		Status:          string(p.Status),
		Notes:           p.Notes,
		PaidBy:          p.PaidBy,
		ProcessedBy:     p.ProcessedBy,
		ProcessedAt:     p.ProcessedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *PaymentMapper) ToEntities(items []*model.Payment) []*entity.Payment {
	entities := make([]*entity.Payment, len(items))
	for i, p := range items {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
