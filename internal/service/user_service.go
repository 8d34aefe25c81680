package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/mailer"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/specification"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/printing"
	"travel-backoffice-be/pkg/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const userModule = "UserService"

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
	UploadProfileImage(ctx context.Context, userId uuid.UUID, file *dto.UploadedFile) (*dto.UserResponse, error)
	UploadCompanyLogo(ctx context.Context, userId uuid.UUID, file *dto.UploadedFile) (*dto.UserResponse, error)

	CreateSubUser(ctx context.Context, userId uuid.UUID, req *dto.CreateSubUserRequest) (*dto.UserResponse, error)
	ListSubUsers(ctx context.Context, userId uuid.UUID, q *dto.UserListQuery) (*serverutils.PageData[dto.UserResponse], error)
	ListUsers(ctx context.Context, userId uuid.UUID, q *dto.UserListQuery) (*serverutils.PageData[dto.UserResponse], error)
	GetUser(ctx context.Context, userId, targetId uuid.UUID) (*dto.UserResponse, error)
	SetActive(ctx context.Context, userId, targetId uuid.UUID, active bool) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userId, targetId uuid.UUID) error

	Certificate(ctx context.Context, userId uuid.UUID) (*dto.FileResponse, error)
}

type userService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	documents    IDocumentService
	files        storage.Storage
	log          logger.ILogger
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	documents IDocumentService,
	files storage.Storage,
	log logger.ILogger,
) IUserService {
	return &userService{
		uowFactory:   uowFactory,
		emailService: emailService,
		documents:    documents,
		files:        files,
		log:          log,
	}
}

func toUserResponse(u *entity.User, files storage.Storage) dto.UserResponse {
	return dto.UserResponse{
		Id:            u.Id,
		Username:      u.Username,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		FullName:      u.FullName(),
		Role:          string(u.Role),
		Phone:         u.Phone,
		Address:       u.Address,
		ProfileImage:  fileURL(files, u.ProfileImage),
		IsActive:      u.IsActive,
		CreatedBy:     u.CreatedBy,
		Bio:           u.Bio,
		Website:       u.Website,
		CompanyName:   u.CompanyName,
		LicenseNumber: u.LicenseNumber,
		CompanyLogo:   fileURL(files, u.CompanyLogo),
		CreatedAt:     u.CreatedAt,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	res := toUserResponse(user, s.files)
	return &res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if err := checkUserUniqueness(ctx, uow, user.Id, username, "", ""); err != nil {
			return nil, err
		}
		user.Username = username
	}
	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&user.FirstName, req.FirstName)
	assign(&user.LastName, req.LastName)
	assign(&user.Address, req.Address)
	assign(&user.Bio, req.Bio)
	assign(&user.Website, req.Website)
	assign(&user.CompanyName, req.CompanyName)
	assign(&user.LicenseNumber, req.LicenseNumber)

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	res := toUserResponse(user, s.files)
	return &res, nil
}

func (s *userService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)) != nil {
		return serverutils.NewFieldError("old_password", "Old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uow.UserRepository().UpdatePassword(ctx, user.Id, string(hash)); err != nil {
		return err
	}
	s.log.Info(userModule, "Password changed", map[string]interface{}{"user_id": user.Id.String()})
	return nil
}

func (s *userService) UploadProfileImage(ctx context.Context, userId uuid.UUID, file *dto.UploadedFile) (*dto.UserResponse, error) {
	return s.replaceImage(ctx, userId, file, "profile_images", func(u *entity.User) **string { return &u.ProfileImage })
}

func (s *userService) UploadCompanyLogo(ctx context.Context, userId uuid.UUID, file *dto.UploadedFile) (*dto.UserResponse, error) {
	return s.replaceImage(ctx, userId, file, "company_logos", func(u *entity.User) **string { return &u.CompanyLogo })
}

func (s *userService) replaceImage(ctx context.Context, userId uuid.UUID, file *dto.UploadedFile, folder string, field func(*entity.User) **string) (*dto.UserResponse, error) {
	if file != nil && !strings.HasPrefix(file.ContentType, "image/") {
		return nil, serverutils.NewFieldError("file", "Only image files are allowed.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	key, err := storeUpload(ctx, s.files, folder, file)
	if err != nil {
		return nil, err
	}

	slot := field(user)
	previous := *slot
	*slot = &key
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		discardFile(ctx, s.files, s.log, userModule, &key)
		return nil, err
	}
	discardFile(ctx, s.files, s.log, userModule, previous)

	res := toUserResponse(user, s.files)
	return &res, nil
}

func (s *userService) CreateSubUser(ctx context.Context, userId uuid.UUID, req *dto.CreateSubUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	creator, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	role := access.NormalizeRole(req.Role)
	if !role.Valid() {
		return nil, serverutils.NewFieldError("role", "Invalid role")
	}
	if !creator.Role.CanProvision(role) {
		return nil, serverutils.NewForbiddenError(fmt.Sprintf("You cannot create users with role %s", role))
	}

	email := normalizeEmail(req.Email)
	if err := checkUserUniqueness(ctx, uow, uuid.Nil, req.Username, email, req.Phone); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	createdBy := creator.Id
	user := &entity.User{
		Id:           uuid.New(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
		CreatedBy:    &createdBy,
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info(userModule, "Sub-user created", map[string]interface{}{
		"user_id":    user.Id.String(),
		"created_by": creator.Id.String(),
		"role":       string(role),
	})

	// the account exists even when the welcome mail fails
	invitedBy := creator.CompanyProfile().Name
	if err := s.emailService.SendWelcome(user.Email, user.Username, invitedBy); err != nil {
		s.log.Warn(userModule, "Welcome email not delivered", map[string]interface{}{"user_id": user.Id.String(), "error": err.Error()})
	}

	res := toUserResponse(user, s.files)
	return &res, nil
}

func (s *userService) listUsers(ctx context.Context, uow unitofwork.UnitOfWork, q *dto.UserListQuery, filters ...specification.Specification) (*serverutils.PageData[dto.UserResponse], error) {
	if q.Role != "" {
		filters = append(filters, specification.ByRoles{Roles: []string{string(access.NormalizeRole(q.Role))}})
	}
	if q.Search != "" {
		filters = append(filters, specification.TextSearch{
			Fields: []string{"username", "email", "first_name", "last_name", "company_name"},
			Query:  q.Search,
		})
	}

	total, err := uow.UserRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page, size, paging := pageSpecs(q.PageQuery)
	users, err := uow.UserRepository().FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u, s.files))
	}
	return &serverutils.PageData[dto.UserResponse]{Items: items, TotalCount: total, Page: page, PageSize: size}, nil
}

func (s *userService) ListSubUsers(ctx context.Context, userId uuid.UUID, q *dto.UserListQuery) (*serverutils.PageData[dto.UserResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	return s.listUsers(ctx, uow, q, specification.CreatedByUser{UserID: user.Id})
}

func (s *userService) ListUsers(ctx context.Context, userId uuid.UUID, q *dto.UserListQuery) (*serverutils.PageData[dto.UserResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := requireSuperAdmin(user); err != nil {
		return nil, err
	}
	return s.listUsers(ctx, uow, q)
}

// manageable reports whether actor may view or administer target.
func manageable(actor, target *entity.User) bool {
	if actor.Role.IsSuperAdmin() || actor.Id == target.Id {
		return true
	}
	return target.CreatedBy != nil && *target.CreatedBy == actor.Id
}

func (s *userService) findManaged(ctx context.Context, uow unitofwork.UnitOfWork, actor *entity.User, targetId uuid.UUID) (*entity.User, error) {
	target, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: targetId})
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}
	if !manageable(actor, target) && !access.Resolve(actor.Viewer()).Permits(target.OwnerRef()) {
		return nil, serverutils.NewNotFoundError("User not found")
	}
	return target, nil
}

func (s *userService) GetUser(ctx context.Context, userId, targetId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	actor, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	target, err := s.findManaged(ctx, uow, actor, targetId)
	if err != nil {
		return nil, err
	}
	res := toUserResponse(target, s.files)
	return &res, nil
}

func (s *userService) SetActive(ctx context.Context, userId, targetId uuid.UUID, active bool) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	actor, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if actor.Id == targetId {
		return nil, serverutils.NewValidationError("You cannot change your own account status", nil)
	}
	target, err := s.findManaged(ctx, uow, actor, targetId)
	if err != nil {
		return nil, err
	}
	if !manageable(actor, target) {
		return nil, serverutils.NewForbiddenError("You do not have permission to manage this user")
	}

	target.IsActive = active
	if err := uow.UserRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	s.log.Info(userModule, "User status changed", map[string]interface{}{
		"user_id":   target.Id.String(),
		"is_active": active,
		"by":        actor.Id.String(),
	})
	res := toUserResponse(target, s.files)
	return &res, nil
}

// DeleteUser removes target; users it provisioned are kept with created_by cleared.
func (s *userService) DeleteUser(ctx context.Context, userId, targetId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	actor, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return err
	}
	if actor.Id == targetId {
		return serverutils.NewValidationError("You cannot delete your own account", nil)
	}
	target, err := s.findManaged(ctx, uow, actor, targetId)
	if err != nil {
		return err
	}
	if !manageable(actor, target) {
		return serverutils.NewForbiddenError("You do not have permission to manage this user")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().DetachCreated(ctx, target.Id); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, target.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Info(userModule, "User deleted", map[string]interface{}{"user_id": target.Id.String(), "by": actor.Id.String()})
	return nil
}

// Certificate prints the certificate of association under the letterhead of
// the user's creator, or the user's own company when it has none.
func (s *userService) Certificate(ctx context.Context, userId uuid.UUID) (*dto.FileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := loadViewer(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	issuer := user
	if user.CreatedBy != nil {
		creator, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *user.CreatedBy})
		if err != nil {
			return nil, err
		}
		if creator != nil {
			issuer = creator
		}
	}

	holder := user.FullName()
	if holder == "" {
		holder = user.Username
	}
	data, err := s.documents.PDF(ctx, "certificate", printing.TemplateCertificate, printing.Certificate{
		Company:    companyFor(issuer, s.files),
		Number:     "CERT-" + strings.ToUpper(user.Username),
		HolderName: holder,
		Username:   user.Username,
		Role:       string(user.Role),
		MemberFrom: user.CreatedAt,
		IssuedAt:   time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return pdfFile(fmt.Sprintf("certificate_%s.pdf", user.Username), data), nil
}
