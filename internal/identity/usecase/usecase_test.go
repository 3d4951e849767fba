package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/otpgate/otpgate/internal/identity/entity"
	"github.com/otpgate/otpgate/internal/pkg/clock"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
	"github.com/otpgate/otpgate/internal/pkg/hash"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/otpgate/otpgate/internal/pkg/session"
	"github.com/otpgate/otpgate/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

type seqToken struct {
	mu sync.Mutex
	n  int
}

func (g *seqToken) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "token-" + string(rune('a'+g.n))
}

type seqID struct{ n int64 }

func (g *seqID) Generate() int64 {
	g.n++
	return g.n
}

type fakeRepo struct {
	users       map[string]entity.User
	adminExists bool
	createErr   error
	created     []entity.User
}

func (r *fakeRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &u, nil
}

func (r *fakeRepo) AdminExists(context.Context) (bool, error) {
	return r.adminExists, nil
}

func (r *fakeRepo) CreateUser(_ context.Context, user entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, user)
	return nil
}

func newTestUsecase(t *testing.T, repo *fakeRepo) (*Usecase, *session.Registry) {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	reg := session.NewRegistry(30*time.Minute,
		clock.Static{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}, &seqToken{})

	uc := New(Dependency{
		RepoDB:     repo,
		Sessions:   reg,
		Validator:  v,
		Hash:       hash.NewSHA256(),
		UID:        &seqID{},
		Instrument: instrument.NewNoop(),
	})

	return uc, reg
}

func requireErrCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, code, gerr.Code())
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	t.Run("stores a hashed password", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{}
		uc, _ := newTestUsecase(t, repo)

		err := uc.SignUp(context.Background(), SignUpInput{
			Username: "alice", Password: "secret123", Role: "USER",
		})
		require.NoError(t, err)

		require.Len(t, repo.created, 1)
		created := repo.created[0]
		require.Equal(t, "alice", created.Username)
		require.Equal(t, entity.RoleUser, created.Role)
		require.NotEqual(t, "secret123", created.PasswordHash)

		h := hash.NewSHA256()
		require.True(t, h.Verify(created.PasswordHash, "secret123"))
	})

	t.Run("rejects a short password", func(t *testing.T) {
		t.Parallel()

		uc, _ := newTestUsecase(t, &fakeRepo{})

		err := uc.SignUp(context.Background(), SignUpInput{
			Username: "alice", Password: "short", Role: "USER",
		})
		requireErrCode(t, err, goerror.CodeInvalidInput)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		t.Parallel()

		uc, _ := newTestUsecase(t, &fakeRepo{})

		err := uc.SignUp(context.Background(), SignUpInput{
			Username: "alice", Password: "secret123", Role: "ROOT",
		})
		requireErrCode(t, err, goerror.CodeInvalidInput)
	})

	t.Run("rejects a second admin", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{adminExists: true}
		uc, _ := newTestUsecase(t, repo)

		err := uc.SignUp(context.Background(), SignUpInput{
			Username: "root2", Password: "secret123", Role: "ADMIN",
		})
		requireErrCode(t, err, goerror.CodeConflict)
		require.Empty(t, repo.created)
	})

	t.Run("maps a store conflict to duplicate username", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{createErr: goerror.ErrConflict}
		uc, _ := newTestUsecase(t, repo)

		err := uc.SignUp(context.Background(), SignUpInput{
			Username: "alice", Password: "secret123", Role: "USER",
		})
		requireErrCode(t, err, goerror.CodeConflict)
	})
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	h := hash.NewSHA256()
	hashed, err := h.Hash("secret123")
	require.NoError(t, err)

	seed := map[string]entity.User{
		"alice": {ID: 7, Username: "alice", PasswordHash: string(hashed), Role: entity.RoleUser},
	}

	t.Run("issues a resolvable token", func(t *testing.T) {
		t.Parallel()

		uc, reg := newTestUsecase(t, &fakeRepo{users: seed})

		out, err := uc.SignIn(context.Background(), SignInInput{Username: "alice", Password: "secret123"})
		require.NoError(t, err)
		require.NotEmpty(t, out.Token)

		sess, ok := reg.Lookup(out.Token)
		require.True(t, ok)
		require.Equal(t, int64(7), sess.UserID)
		require.Equal(t, "USER", sess.Role)
	})

	t.Run("unknown user and wrong password share one message", func(t *testing.T) {
		t.Parallel()

		uc, _ := newTestUsecase(t, &fakeRepo{users: seed})

		_, errUnknown := uc.SignIn(context.Background(), SignInInput{Username: "bob", Password: "secret123"})
		requireErrCode(t, errUnknown, goerror.CodeUnauthorized)

		_, errWrongPw := uc.SignIn(context.Background(), SignInInput{Username: "alice", Password: "nope"})
		requireErrCode(t, errWrongPw, goerror.CodeUnauthorized)

		var a, b *goerror.Error
		require.ErrorAs(t, errUnknown, &a)
		require.ErrorAs(t, errWrongPw, &b)
		require.Equal(t, a.Msg(), b.Msg())
	})
}
