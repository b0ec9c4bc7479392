package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/admin-console-api/internal/application/dto"
	"github.com/jhoicas/admin-console-api/internal/application/notify"
	"github.com/jhoicas/admin-console-api/internal/application/store"
	"github.com/jhoicas/admin-console-api/internal/domain"
	"github.com/jhoicas/admin-console-api/internal/domain/entity"
)

// UserUseCase casos de uso CRUD para el roster de usuarios.
// Misma mecánica que ProductUseCase instanciada para la otra colección.
type UserUseCase struct {
	store  *store.Store
	notify *notify.Channel
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(st *store.Store, ch *notify.Channel) *UserUseCase {
	return &UserUseCase{store: st, notify: ch}
}

// Create crea un usuario: ID y CreatedAt se generan aquí y el registro se
// inserta al inicio de la colección.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Status:    in.Status,
		Avatar:    in.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.store.PrependUser(user); err != nil {
		return nil, err
	}
	uc.notify.Success("User berhasil ditambahkan")
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, ok := uc.store.FindUser(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update mezcla los campos enviados sobre el registro existente; ID y
// CreatedAt no se tocan. Si el ID no existe devuelve ErrNotFound.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.store.UpdateUser(id, func(u *entity.User) {
		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		if in.Status != nil {
			u.Status = *in.Status
		}
		if in.Avatar != nil {
			u.Avatar = *in.Avatar
		}
	})
	if err != nil {
		return nil, err
	}
	uc.notify.Success("User berhasil diperbarui")
	return toUserResponse(user), nil
}

// Delete elimina un usuario previa confirmación (cancelar = sin cambios).
func (uc *UserUseCase) Delete(id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmRequired
	}
	if err := uc.store.DeleteUser(id); err != nil {
		return err
	}
	uc.notify.Success("User berhasil dihapus")
	return nil
}

// List devuelve el roster filtrado sin mutarlo: substring insensible a
// mayúsculas sobre name/email más filtro exacto de rol.
func (uc *UserUseCase) List(filter dto.UserFilter) *dto.UserListResponse {
	users := uc.store.Users()
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		if !matchesSearch(filter.Search, u.Name, u.Email) {
			continue
		}
		if !matchesExact(filter.Role, u.Role) {
			continue
		}
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}
}

func toUserResponse(u entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
