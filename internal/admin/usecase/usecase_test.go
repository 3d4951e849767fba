package usecase

import (
	"context"
	"testing"

	"github.com/otpgate/otpgate/internal/admin/entity"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/otpgate/otpgate/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	length     int
	ttlSeconds int
	users      []entity.User
	deleteErr  error
	deletedIDs []int64
}

func (r *fakeRepo) UpdateConfig(_ context.Context, length, ttlSeconds int) error {
	r.length = length
	r.ttlSeconds = ttlSeconds
	return nil
}

func (r *fakeRepo) ListUsers(context.Context) ([]entity.User, error) {
	return r.users, nil
}

func (r *fakeRepo) DeleteUser(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedIDs = append(r.deletedIDs, id)
	return nil
}

func newTestUsecase(t *testing.T, repo *fakeRepo) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v,
		Instrument: instrument.NewNoop(),
	})
}

func requireErrCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, code, gerr.Code())
}

func TestUpdateConfig(t *testing.T) {
	t.Parallel()

	t.Run("persists valid bounds", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{}
		uc := newTestUsecase(t, repo)

		err := uc.UpdateConfig(context.Background(), UpdateConfigInput{Length: 4, TTLSeconds: 1})
		require.NoError(t, err)
		require.Equal(t, 4, repo.length)
		require.Equal(t, 1, repo.ttlSeconds)
	})

	t.Run("rejects non-positive values", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{}
		uc := newTestUsecase(t, repo)

		err := uc.UpdateConfig(context.Background(), UpdateConfigInput{Length: 0, TTLSeconds: 300})
		requireErrCode(t, err, goerror.CodeInvalidInput)

		err = uc.UpdateConfig(context.Background(), UpdateConfigInput{Length: 6, TTLSeconds: -1})
		requireErrCode(t, err, goerror.CodeInvalidInput)

		require.Zero(t, repo.length)
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{users: []entity.User{
		{ID: 2, Username: "alice", Role: "USER"},
		{ID: 3, Username: "bob", Role: "USER"},
	}}
	uc := newTestUsecase(t, repo)

	users, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, []UserOutput{
		{ID: 2, Username: "alice", Role: "USER"},
		{ID: 3, Username: "bob", Role: "USER"},
	}, users)
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("deletes by id", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{}
		uc := newTestUsecase(t, repo)

		err := uc.DeleteUser(context.Background(), DeleteUserInput{ID: 9})
		require.NoError(t, err)
		require.Equal(t, []int64{9}, repo.deletedIDs)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{deleteErr: goerror.ErrNotFound}
		uc := newTestUsecase(t, repo)

		err := uc.DeleteUser(context.Background(), DeleteUserInput{ID: 9})
		requireErrCode(t, err, goerror.CodeNotFound)
	})
}
