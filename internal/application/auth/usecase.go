// Package auth implementa el gestor de sesión del panel: un único par de
// credenciales fijas, con proyección durable en los slots de storage para que
// una recarga restaure la sesión.
package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/admin-console-api/internal/application/dto"
	"github.com/jhoicas/admin-console-api/internal/application/notify"
	"github.com/jhoicas/admin-console-api/internal/domain"
	"github.com/jhoicas/admin-console-api/internal/domain/repository"
	"github.com/jhoicas/admin-console-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de sesión: login, logout y restauración.
type UseCase struct {
	kv           repository.KVStore
	notify       *notify.Channel
	adminEmail   string
	passwordHash []byte
	delay        time.Duration
	jwtCfg       JWTConfig
}

// NewUseCase construye el gestor de sesión. La contraseña configurada se
// hashea con bcrypt al arrancar; el valor en claro no se retiene.
func NewUseCase(kv repository.KVStore, ch *notify.Channel, adminEmail, adminPassword string, delay time.Duration, jwtCfg JWTConfig) (*UseCase, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hashear credencial: %w", err)
	}
	return &UseCase{
		kv:           kv,
		notify:       ch,
		adminEmail:   adminEmail,
		passwordHash: hash,
		delay:        delay,
		jwtCfg:       jwtCfg,
	}, nil
}

// Login verifica las credenciales tras el retardo artificial configurado
// (~800ms por defecto, como una llamada de red real). Con credenciales
// correctas persiste el flag y el email en sus slots y emite el JWT; con
// credenciales incorrectas la sesión queda intacta y retorna ErrUnauthorized.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(uc.delay):
	}

	if in.Email != uc.adminEmail {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// El token se emite antes de tocar los slots: si la emisión falla (por
	// ejemplo con un secret vacío) la sesión debe seguir anónima.
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	if err := uc.kv.Set(repository.KeyAuthFlag, "true"); err != nil {
		return nil, err
	}
	if err := uc.kv.Set(repository.KeyAuthUser, in.Email); err != nil {
		return nil, err
	}

	uc.notify.Success(fmt.Sprintf("Selamat datang kembali, %s!", in.Email))
	return &dto.LoginResponse{Token: token, Email: in.Email}, nil
}

// Logout cierra la sesión previa confirmación (cancelar = sin cambios):
// limpia ambos slots y emite la notificación.
func (uc *UseCase) Logout(confirm bool) error {
	if !confirm {
		return domain.ErrConfirmRequired
	}
	if err := uc.kv.Delete(repository.KeyAuthFlag); err != nil {
		return err
	}
	if err := uc.kv.Delete(repository.KeyAuthUser); err != nil {
		return err
	}
	uc.notify.Success("Berhasil logout")
	return nil
}

// Session lee la proyección durable de la sesión. El flag solo cuenta como
// autenticado con el literal exacto "true".
func (uc *UseCase) Session() (*dto.SessionResponse, error) {
	flag, ok, err := uc.kv.Get(repository.KeyAuthFlag)
	if err != nil {
		return nil, err
	}
	if !ok || flag != "true" {
		return &dto.SessionResponse{Authenticated: false}, nil
	}
	email, _, err := uc.kv.Get(repository.KeyAuthUser)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Authenticated: true, Email: email}, nil
}
