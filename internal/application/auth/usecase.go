package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Herramientas-api/internal/application/dto"
	"github.com/jhoicas/Herramientas-api/internal/application/invite"
	"github.com/jhoicas/Herramientas-api/internal/domain"
	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/permission"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
	"github.com/jhoicas/Herramientas-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Nombres de los recursos creados automáticamente en el registro de empresa.
const (
	BossRoleName         = "Administrador"
	DefaultWarehouseName = "Bodega principal"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y onboarding: registro de
// empresa, registro con invitación y login.
type AuthUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(txRunner TxRunner, userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg}
}

// RegisterCompany registra una empresa con su fundador. En una sola
// transacción se crean: la empresa, el rol boss (todos los permisos,
// inmutable), la bodega por defecto y el usuario fundador con ese rol.
func (uc *AuthUseCase) RegisterCompany(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		NIT:       in.NIT,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	bossRole := &entity.Role{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		Name:        BossRoleName,
		Permissions: permission.All(),
		IsBoss:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Name:      DefaultWarehouseName,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		RoleID:       bossRole.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunOnboarding(ctx, func(
		companyRepo repository.CompanyRepository,
		roleRepo repository.RoleRepository,
		warehouseRepo repository.WarehouseRepository,
		userRepo repository.UserRepository,
		_ repository.InvitationRepository,
	) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		if err := roleRepo.Create(bossRole); err != nil {
			return err
		}
		if err := warehouseRepo.Create(warehouse); err != nil {
			return err
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.generateToken(user, bossRole)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterCompanyResponse{
		Company: dto.CompanyResponse{
			ID: company.ID, Name: company.Name, NIT: company.NIT,
			Email: company.Email, Status: company.Status,
			CreatedAt: company.CreatedAt, UpdatedAt: company.UpdatedAt,
		},
		User:  *toUserResponse(user),
		Token: token,
	}, nil
}

// RegisterWithInvitation registra un usuario consumiendo una invitación.
// Una sola transacción bloquea la fila de la invitación, valida que no esté
// usada ni expirada (errores distintos), crea el usuario con el rol de la
// invitación y la marca como usada. Un crash a medias no deja una invitación
// consumida sin usuario ni un usuario con invitación reutilizable.
func (uc *AuthUseCase) RegisterWithInvitation(ctx context.Context, in dto.RegisterInviteRequest) (*dto.LoginResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	var role *entity.Role
	err = uc.txRunner.RunOnboarding(ctx, func(
		_ repository.CompanyRepository,
		roleRepo repository.RoleRepository,
		_ repository.WarehouseRepository,
		userRepo repository.UserRepository,
		invitationRepo repository.InvitationRepository,
	) error {
		now := time.Now()
		invitation, err := invitationRepo.GetByTokenForUpdate(in.Token)
		if err != nil {
			return err
		}
		if invitation == nil {
			return domain.ErrNotFound
		}
		if invitation.Used() {
			return invite.ErrAlreadyUsed
		}
		if invitation.Expired(now) {
			return domain.ErrExpired
		}
		// El email es único global (login resuelve por email, sin empresa).
		existing, err := userRepo.GetByEmail(invitation.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if invitation.RoleID != "" {
			role, err = roleRepo.GetByID(invitation.RoleID)
			if err != nil {
				return err
			}
		}

		name := in.Name
		if name == "" {
			name = invitation.Email
		}
		user = &entity.User{
			ID:           uuid.New().String(),
			CompanyID:    invitation.CompanyID,
			RoleID:       invitation.RoleID,
			Email:        invitation.Email,
			PasswordHash: string(hash),
			Name:         name,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return invitationRepo.MarkUsed(invitation.ID, now)
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.generateToken(user, role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	var role *entity.Role
	if user.RoleID != "" {
		role, err = uc.roleRepo.GetByID(user.RoleID)
		if err != nil {
			return nil, err
		}
	}
	token, err := uc.generateToken(user, role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func (uc *AuthUseCase) generateToken(user *entity.User, role *entity.Role) (string, error) {
	isBoss := role != nil && role.IsBoss
	return jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.RoleID, isBoss, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		RoleID:    u.RoleID,
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
