package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/admin-console-api/internal/application/dto"
	"github.com/jhoicas/admin-console-api/internal/application/notify"
	"github.com/jhoicas/admin-console-api/internal/domain"
	"github.com/jhoicas/admin-console-api/internal/domain/repository"
	"github.com/jhoicas/admin-console-api/internal/infrastructure/localstore"
	pkgjwt "github.com/jhoicas/admin-console-api/pkg/jwt"
)

const (
	testEmail    = "admin@gmail"
	testPassword = "password"
	testSecret   = "secreto-de-test"
)

func newAuthUC(t *testing.T, kv repository.KVStore) (*UseCase, *notify.Channel) {
	t.Helper()
	ch := notify.NewChannel(time.Minute)
	uc, err := NewUseCase(kv, ch, testEmail, testPassword, time.Millisecond, JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 5,
		Issuer:     "admin-console",
	})
	require.NoError(t, err)
	return uc, ch
}

func TestLogin_CredencialesValidas(t *testing.T) {
	kv := localstore.NewMemory()
	uc, ch := newAuthUC(t, kv)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, testEmail, res.Email)

	// El token emitido es verificable con el mismo secreto
	email, err := pkgjwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)

	// La sesión quedó proyectada en sus dos slots
	flag, ok, _ := kv.Get(repository.KeyAuthFlag)
	require.True(t, ok)
	assert.Equal(t, "true", flag)
	user, ok, _ := kv.Get(repository.KeyAuthUser)
	require.True(t, ok)
	assert.Equal(t, testEmail, user)

	cur := ch.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Selamat datang kembali, admin@gmail!", cur.Message)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	kv := localstore.NewMemory()
	uc, ch := newAuthUC(t, kv)

	cases := []dto.LoginRequest{
		{Email: testEmail, Password: "incorrecta"},
		{Email: "otro@gmail", Password: testPassword},
		{Email: "", Password: ""},
	}
	for _, in := range cases {
		_, err := uc.Login(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	}

	// La sesión sigue anónima: ningún slot fue escrito
	_, ok, _ := kv.Get(repository.KeyAuthFlag)
	assert.False(t, ok)
	_, ok, _ = kv.Get(repository.KeyAuthUser)
	assert.False(t, ok)
	assert.Nil(t, ch.Current())
}

func TestLogin_SecretVacioNoTocaLaSesion(t *testing.T) {
	kv := localstore.NewMemory()
	ch := notify.NewChannel(time.Minute)
	uc, err := NewUseCase(kv, ch, testEmail, testPassword, time.Millisecond, JWTConfig{
		Secret:     "",
		ExpMinutes: 5,
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.Error(t, err)

	// Si la emisión del token falla, la sesión debe seguir anónima: ningún
	// slot escrito y sin toast de bienvenida.
	_, ok, _ := kv.Get(repository.KeyAuthFlag)
	assert.False(t, ok)
	_, ok, _ = kv.Get(repository.KeyAuthUser)
	assert.False(t, ok)
	assert.Nil(t, ch.Current())

	s, err := uc.Session()
	require.NoError(t, err)
	assert.False(t, s.Authenticated)
}

func TestLogin_ContextoCancelado(t *testing.T) {
	kv := localstore.NewMemory()
	ch := notify.NewChannel(time.Minute)
	uc, err := NewUseCase(kv, ch, testEmail, testPassword, time.Second, JWTConfig{Secret: testSecret, ExpMinutes: 5})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = uc.Login(ctx, dto.LoginRequest{Email: testEmail, Password: testPassword})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogin_RespetaElRetardo(t *testing.T) {
	kv := localstore.NewMemory()
	ch := notify.NewChannel(time.Minute)
	delay := 50 * time.Millisecond
	uc, err := NewUseCase(kv, ch, testEmail, testPassword, delay, JWTConfig{Secret: testSecret, ExpMinutes: 5})
	require.NoError(t, err)

	start := time.Now()
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestLogout(t *testing.T) {
	kv := localstore.NewMemory()
	uc, ch := newAuthUC(t, kv)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(true))

	_, ok, _ := kv.Get(repository.KeyAuthFlag)
	assert.False(t, ok)
	_, ok, _ = kv.Get(repository.KeyAuthUser)
	assert.False(t, ok)

	cur := ch.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Berhasil logout", cur.Message)
}

func TestLogout_SinConfirmacionNoTocaLaSesion(t *testing.T) {
	kv := localstore.NewMemory()
	uc, _ := newAuthUC(t, kv)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Logout(false), domain.ErrConfirmRequired)

	flag, ok, _ := kv.Get(repository.KeyAuthFlag)
	require.True(t, ok)
	assert.Equal(t, "true", flag)
}

func TestSession(t *testing.T) {
	kv := localstore.NewMemory()
	uc, _ := newAuthUC(t, kv)

	// Sin slots: anónimo
	s, err := uc.Session()
	require.NoError(t, err)
	assert.False(t, s.Authenticated)
	assert.Empty(t, s.Email)

	// Tras login: autenticado con el email persistido
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	s, err = uc.Session()
	require.NoError(t, err)
	assert.True(t, s.Authenticated)
	assert.Equal(t, testEmail, s.Email)
}

func TestSession_FlagDebeSerElLiteralTrue(t *testing.T) {
	kv := localstore.NewMemoryWith(map[string]string{
		repository.KeyAuthFlag: "TRUE",
		repository.KeyAuthUser: testEmail,
	})
	uc, _ := newAuthUC(t, kv)

	// Cualquier valor distinto del literal "true" cuenta como anónimo
	s, err := uc.Session()
	require.NoError(t, err)
	assert.False(t, s.Authenticated)
}
