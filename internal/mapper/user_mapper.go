package mapper

import (
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/pkg/access"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:            u.Id,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Address:       u.Address,
		ProfileImage:  u.ProfileImage,
		Role:          access.Role(u.Role),
		IsActive:      u.IsActive,
		CreatedBy:     u.CreatedBy,
		Bio:           u.Bio,
		Website:       u.Website,
		CompanyName:   u.CompanyName,
		LicenseNumber: u.LicenseNumber,
		CompanyLogo:   u.CompanyLogo,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:            u.Id,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Address:       u.Address,
		ProfileImage:  u.ProfileImage,
		Role:          string(u.Role),
		IsActive:      u.IsActive,
		CreatedBy:     u.CreatedBy,
		Bio:           u.Bio,
		Website:       u.Website,
		CompanyName:   u.CompanyName,
		LicenseNumber: u.LicenseNumber,
		CompanyLogo:   u.CompanyLogo,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) OTPToEntity(o *model.OTPVerification) *entity.OTPVerification {
	if o == nil {
		return nil
	}
	return &entity.OTPVerification{
		Id:               o.Id,
		UserId:           o.UserId,
		VerificationType: entity.VerificationType(o.VerificationType),
		Otp:              o.Otp,
		NewValue:         o.NewValue,
		ExpiresAt:        o.ExpiresAt,
		IsVerified:       o.IsVerified,
		CreatedAt:        o.CreatedAt,
	}
}

func (m *UserMapper) OTPToModel(o *entity.OTPVerification) *model.OTPVerification {
	if o == nil {
		return nil
	}
	return &model.OTPVerification{
		Id:               o.Id,
		UserId:           o.UserId,
		VerificationType: string(o.VerificationType),
		Otp:              o.Otp,
		NewValue:         o.NewValue,
		ExpiresAt:        o.ExpiresAt,
		IsVerified:       o.IsVerified,
		CreatedAt:        o.CreatedAt,
	}
}

func (m *UserMapper) RefreshTokenToEntity(t *model.UserRefreshToken) *entity.UserRefreshToken {
	if t == nil {
		return nil
	}
	return &entity.UserRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) RefreshTokenToModel(t *entity.UserRefreshToken) *model.UserRefreshToken {
	if t == nil {
		return nil
	}
	return &model.UserRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
		CreatedAt: t.CreatedAt,
	}
}
