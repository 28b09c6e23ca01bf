package service

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/session"
	"loomworks.app/api-server/internal/store"
)

type CreateUserParams struct {
	TenantID *int64
	Email    string
	Name     string
	Password *string
	Role     model.Role
}

type UserService interface {
	Create(ctx context.Context, actor model.Identity, params CreateUserParams) (*model.User, error)
	Get(ctx context.Context, actor model.Identity, id int64) (*model.User, error)
	ListByTenant(ctx context.Context, actor model.Identity, tenantID int64) ([]model.User, error)
	UpdateProfile(ctx context.Context, actor model.Identity, id int64, name, email string) (*model.User, error)
	// ChangeRole updates the user's role and revokes their sessions so
	// no session carries a stale role snapshot.
	ChangeRole(ctx context.Context, actor model.Identity, id int64, role model.Role) (*model.User, error)
	// Deactivate disables the account and revokes every session.
	Deactivate(ctx context.Context, actor model.Identity, id int64) (*model.User, error)
}

type userService struct {
	users   store.UserStore
	tx      TxRunner
	cache   *session.Cache
	auditor *Auditor
}

func NewUserService(users store.UserStore, tx TxRunner, cache *session.Cache, auditor *Auditor) UserService {
	return &userService{users: users, tx: tx, cache: cache, auditor: auditor}
}

func (s *userService) Create(ctx context.Context, actor model.Identity, params CreateUserParams) (*model.User, error) {
	tenantID := params.TenantID
	if actor.PlatformRole == nil {
		// Tenant admins can only create users inside their own tenant.
		tenantID = actor.ActiveTenantID
	}

	var passwordHash *string
	if params.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		hashStr := string(hash)
		passwordHash = &hashStr
	}

	user := &model.User{
		ID:           id.New(),
		TenantID:     tenantID,
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: passwordHash,
		Role:         params.Role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionUserCreated,
		TenantID: tenantID,
		ActorID:  &actor.UserID,
		Entity:   "user",
		EntityID: strconv.FormatInt(user.ID, 10),
	})
	return user, nil
}

func (s *userService) Get(ctx context.Context, actor model.Identity, userID int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListByTenant(ctx context.Context, actor model.Identity, tenantID int64) ([]model.User, error) {
	if actor.PlatformRole == nil {
		if actor.ActiveTenantID == nil || *actor.ActiveTenantID != tenantID {
			return nil, store.ErrNotFound
		}
	}
	return s.users.ListByTenant(ctx, tenantID)
}

func (s *userService) UpdateProfile(ctx context.Context, actor model.Identity, userID int64, name, email string) (*model.User, error) {
	user, err := s.Get(ctx, actor, userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.Email = email
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}

func (s *userService) ChangeRole(ctx context.Context, actor model.Identity, userID int64, role model.Role) (*model.User, error) {
	existing, err := s.Get(ctx, actor, userID)
	if err != nil {
		return nil, err
	}

	// Role change and session revocation commit together so no live
	// session carries the old role snapshot.
	var user *model.User
	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		updated, txErr := stores.Users().UpdateRole(ctx, userID, role)
		if txErr != nil {
			return txErr
		}
		user = updated
		_, txErr = stores.Sessions().DeleteByUser(ctx, userID)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("updating role: %w", err)
	}
	s.cache.InvalidateUser(userID)

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionUserRoleChanged,
		TenantID: existing.TenantID,
		ActorID:  &actor.UserID,
		Entity:   "user",
		EntityID: strconv.FormatInt(userID, 10),
		Detail:   fmt.Sprintf("%s -> %s", existing.Role, role),
	})
	return user, nil
}

func (s *userService) Deactivate(ctx context.Context, actor model.Identity, userID int64) (*model.User, error) {
	existing, err := s.Get(ctx, actor, userID)
	if err != nil {
		return nil, err
	}

	var user *model.User
	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		updated, txErr := stores.Users().SetActive(ctx, userID, false)
		if txErr != nil {
			return txErr
		}
		user = updated
		_, txErr = stores.Sessions().DeleteByUser(ctx, userID)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("deactivating user: %w", err)
	}
	s.cache.InvalidateUser(userID)

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionUserDeactivated,
		TenantID: existing.TenantID,
		ActorID:  &actor.UserID,
		Entity:   "user",
		EntityID: strconv.FormatInt(userID, 10),
	})
	return user, nil
}

// authorize hides users outside the actor's tenant unless the actor
// holds a platform role.
func (s *userService) authorize(actor model.Identity, user *model.User) error {
	if actor.PlatformRole != nil {
		return nil
	}
	if user.TenantID == nil || actor.ActiveTenantID == nil || *user.TenantID != *actor.ActiveTenantID {
		return store.ErrNotFound
	}
	return nil
}
