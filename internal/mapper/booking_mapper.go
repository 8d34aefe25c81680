package mapper

import (
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/pkg/lifecycle"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(b *model.Booking) *entity.Booking {
	if b == nil {
		return nil
	}
	return &entity.Booking{
		Id:                 b.Id,
		BookingNumber:      b.BookingNumber,
		FirstName:          b.FirstName,
		LastName:           b.LastName,
		Email:              b.Email,
		MobileNo:           b.MobileNo,
		PassportNo:         b.PassportNo,
		PlaceOfIssue:       b.PlaceOfIssue,
		Address:            b.Address,
		TravelMonth:        b.TravelMonth,
		DepartureCity:      b.DepartureCity,
		PackageName:        b.PackageName,
		PackageDays:        b.PackageDays,
		RoomSharing:        entity.RoomSharing(b.RoomSharing),
		Flight:             b.Flight,
		SpecialRequest:     b.SpecialRequest,
		AdultPrice:         b.AdultPrice,
		ChildPrice:         b.ChildPrice,
		InfantPrice:        b.InfantPrice,
		TotalAdults:        b.TotalAdults,
		TotalChildren:      b.TotalChildren,
		TotalInfants:       b.TotalInfants,
		TotalAdultPrice:    b.TotalAdultPrice,
		TotalChildPrice:    b.TotalChildPrice,
		TotalInfantPrice:   b.TotalInfantPrice,
		DiscountPercentage: b.DiscountPercentage,
		DiscountAmount:     b.DiscountAmount,
		TotalPrice:         b.TotalPrice,
		AdvancePayment:     b.AdvancePayment,
		PayableAmount:      b.PayableAmount,
		Balance:            b.Balance,
		PaymentType:        entity.BookingPaymentType(b.PaymentType),
		Status:             lifecycle.State(b.Status),
		Remarks:            b.Remarks,
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (m *BookingMapper) ToModel(b *entity.Booking) *model.Booking {
	if b == nil {
		return nil
	}
	return &model.Booking{
		Id:                 b.Id,
		BookingNumber:      b.BookingNumber,
		FirstName:          b.FirstName,
		LastName:           b.LastName,
		Email:              b.Email,
		MobileNo:           b.MobileNo,
		PassportNo:         b.PassportNo,
		PlaceOfIssue:       b.PlaceOfIssue,
		Address:            b.Address,
		TravelMonth:        b.TravelMonth,
		DepartureCity:      b.DepartureCity,
		PackageName:        b.PackageName,
		PackageDays:        b.PackageDays,
		RoomSharing:        string(b.RoomSharing),
		Flight:             b.Flight,
		SpecialRequest:     b.SpecialRequest,
		AdultPrice:         b.AdultPrice,
		ChildPrice:         b.ChildPrice,
		InfantPrice:        b.InfantPrice,
		TotalAdults:        b.TotalAdults,
		TotalChildren:      b.TotalChildren,
		TotalInfants:       b.TotalInfants,
		TotalAdultPrice:    b.TotalAdultPrice,
		TotalChildPrice:    b.TotalChildPrice,
		TotalInfantPrice:   b.TotalInfantPrice,
		DiscountPercentage: b.DiscountPercentage,
		DiscountAmount:     b.DiscountAmount,
		TotalPrice:         b.TotalPrice,
		AdvancePayment:     b.AdvancePayment,
		PayableAmount:      b.PayableAmount,
		Balance:            b.Balance,
		PaymentType:        string(b.PaymentType),
		Status:             string(b.Status),
		Remarks:            b.Remarks,
		CreatedBy:          b.CreatedBy,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (m *BookingMapper) ToEntities(bookings []*model.Booking) []*entity.Booking {
	entities := make([]*entity.Booking, len(bookings))
	for i, b := range bookings {
		entities[i] = m.ToEntity(b)
	}
	return entities
}

func (m *BookingMapper) TravelerToEntity(t *model.BookingTraveler) *entity.BookingTraveler {
	return &entity.BookingTraveler{
		Id:             t.Id,
		BookingId:      t.BookingId,
		TravelerType:   entity.TravelerType(t.TravelerType),
		Name:           t.Name,
		Age:            t.Age,
		Gender:         t.Gender,
		PassportNumber: t.PassportNumber,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *BookingMapper) TravelerToModel(t *entity.BookingTraveler) *model.BookingTraveler {
	return &model.BookingTraveler{
		Id:             t.Id,
		BookingId:      t.BookingId,
		TravelerType:   string(t.TravelerType),
		Name:           t.Name,
		Age:            t.Age,
		Gender:         t.Gender,
		PassportNumber: t.PassportNumber,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *BookingMapper) QuickToEntity(q *model.QuickBooking) *entity.QuickBooking {
	if q == nil {
		return nil
	}
	return &entity.QuickBooking{
		Id:                       q.Id,
		QbNumber:                 q.QbNumber,
		FirstName:                q.FirstName,
		LastName:                 q.LastName,
		Email:                    q.Email,
		Mobile:                   q.Mobile,
		TravelMonth:              q.TravelMonth,
		Destination:              q.Destination,
		NumberOfTravelers:        q.NumberOfTravelers,
		Budget:                   fromNullDecimal(q.Budget),
		PreferredPayment:         entity.PreferredPayment(q.PreferredPayment),
		Payment:                  fromNullDecimal(q.Payment),
		Dues:                     q.Dues,
		IsConvertedToFullBooking: q.IsConvertedToFullBooking,
		ConvertedBookingId:       q.ConvertedBookingId,
		CreatedBy:                q.CreatedBy,
		CreatedAt:                q.CreatedAt,
		UpdatedAt:                q.UpdatedAt,
	}
}

func (m *BookingMapper) QuickToModel(q *entity.QuickBooking) *model.QuickBooking {
	if q == nil {
		return nil
	}
	return &model.QuickBooking{
		Id:                       q.Id,
		QbNumber:                 q.QbNumber,
		FirstName:                q.FirstName,
		LastName:                 q.LastName,
		Email:                    q.Email,
		Mobile:                   q.Mobile,
		TravelMonth:              q.TravelMonth,
		Destination:              q.Destination,
		NumberOfTravelers:        q.NumberOfTravelers,
		Budget:                   toNullDecimal(q.Budget),
		PreferredPayment:         string(q.PreferredPayment),
		Payment:                  toNullDecimal(q.Payment),
		Dues:                     q.Dues,
		IsConvertedToFullBooking: q.IsConvertedToFullBooking,
		ConvertedBookingId:       q.ConvertedBookingId,
		CreatedBy:                q.CreatedBy,
		CreatedAt:                q.CreatedAt,
		UpdatedAt:                q.UpdatedAt,
	}
}

func (m *BookingMapper) QuickToEntities(items []*model.QuickBooking) []*entity.QuickBooking {
	entities := make([]*entity.QuickBooking, len(items))
	for i, q := range items {
		entities[i] = m.QuickToEntity(q)
	}
	return entities
}
