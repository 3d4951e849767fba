package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/otpgate/otpgate/internal/otp/entity"
	"github.com/otpgate/otpgate/internal/pkg/codegen"
	"github.com/otpgate/otpgate/internal/pkg/goerror"
	"github.com/otpgate/otpgate/internal/pkg/goroutine"
	"github.com/otpgate/otpgate/internal/pkg/instrument"
	"github.com/otpgate/otpgate/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type seqID struct {
	mu sync.Mutex
	n  int64
}

func (g *seqID) Generate() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return g.n
}

type fakeRepo struct {
	mu           sync.Mutex
	cfg          entity.Config
	cfgErr       error
	createErr    error
	usernames    map[int64]string
	otps         []entity.Otp
	markUsedOK   bool
	markUsedIDs  []int64
	expireCalls  int
	expireCutoff time.Time
}

func (r *fakeRepo) GetConfig(context.Context) (*entity.Config, error) {
	if r.cfgErr != nil {
		return nil, r.cfgErr
	}
	cfg := r.cfg
	return &cfg, nil
}

func (r *fakeRepo) GetUsername(_ context.Context, userID int64) (string, error) {
	name, ok := r.usernames[userID]
	if !ok {
		return "", goerror.ErrNotFound
	}
	return name, nil
}

func (r *fakeRepo) CreateOtp(_ context.Context, otp entity.Otp) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.otps = append(r.otps, otp)
	return nil
}

func (r *fakeRepo) GetOtpByCode(_ context.Context, code string) (*entity.Otp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.otps {
		if o.Code == code {
			out := o
			return &out, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (r *fakeRepo) MarkUsed(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markUsedIDs = append(r.markUsedIDs, id)
	return r.markUsedOK, nil
}

func (r *fakeRepo) ExpireStale(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expireCalls++
	r.expireCutoff = cutoff
	return 1, nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	err       error
	channel   entity.Channel
	recipient string
	code      string
	calls     int
}

func (n *fakeNotifier) Send(_ context.Context, channel entity.Channel, recipient, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	n.channel = channel
	n.recipient = recipient
	n.code = code
	return n.err
}

func newTestUsecase(t *testing.T, repo *fakeRepo, notif *fakeNotifier) (*Usecase, *fakeClock, *goroutine.Manager) {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	clk := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	mgr := goroutine.NewManager(4)

	uc := New(Dependency{
		RepoDB:     repo,
		Notifier:   notif,
		Validator:  v,
		CodeGen:    codegen.New(),
		Clock:      clk,
		UID:        &seqID{},
		Goroutine:  mgr,
		Instrument: instrument.NewNoop(),
	})

	return uc, clk, mgr
}

func requireErrCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, code, gerr.Code())
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{cfg: entity.Config{Length: 4, TTLSeconds: 300}}
	uc, clk, _ := newTestUsecase(t, repo, &fakeNotifier{})

	code, err := uc.Generate(context.Background(), GenerateInput{UserID: 7})
	require.NoError(t, err)
	require.Len(t, code, 4)

	require.Len(t, repo.otps, 1)
	stored := repo.otps[0]
	require.Equal(t, code, stored.Code)
	require.Equal(t, int64(7), stored.UserID)
	require.Equal(t, entity.StatusActive, stored.Status)
	require.Equal(t, clk.Now(), stored.CreatedAt)
	require.Nil(t, stored.OperationID)
}

func TestGenerateConfigMissing(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{cfgErr: goerror.ErrNotFound}
	uc, _, _ := newTestUsecase(t, repo, &fakeNotifier{})

	_, err := uc.Generate(context.Background(), GenerateInput{UserID: 7})
	requireErrCode(t, err, goerror.CodeNotFound)
}

func TestSend(t *testing.T) {
	t.Parallel()

	t.Run("delivers the generated code to the username", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{
			cfg:       entity.Config{Length: 6, TTLSeconds: 300},
			usernames: map[int64]string{7: "alice@example.com"},
		}
		notif := &fakeNotifier{}
		uc, _, _ := newTestUsecase(t, repo, notif)

		err := uc.Send(context.Background(), SendInput{UserID: 7, Channel: "EMAIL"})
		require.NoError(t, err)

		require.Equal(t, 1, notif.calls)
		require.Equal(t, entity.ChannelEmail, notif.channel)
		require.Equal(t, "alice@example.com", notif.recipient)
		require.Len(t, repo.otps, 1)
		require.Equal(t, repo.otps[0].Code, notif.code)
	})

	t.Run("rejects an unknown channel before generating", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{cfg: entity.Config{Length: 6, TTLSeconds: 300}}
		notif := &fakeNotifier{}
		uc, _, _ := newTestUsecase(t, repo, notif)

		err := uc.Send(context.Background(), SendInput{UserID: 7, Channel: "PIGEON"})
		requireErrCode(t, err, goerror.CodeInvalidInput)
		require.Zero(t, notif.calls)
		require.Empty(t, repo.otps)
	})

	t.Run("unknown user is rejected before a row is written", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{cfg: entity.Config{Length: 6, TTLSeconds: 300}}
		notif := &fakeNotifier{}
		uc, _, _ := newTestUsecase(t, repo, notif)

		err := uc.Send(context.Background(), SendInput{UserID: 7, Channel: "EMAIL"})
		requireErrCode(t, err, goerror.CodeInvalidInput)
		require.Zero(t, notif.calls)
		require.Empty(t, repo.otps)
	})

	t.Run("unknown user never reaches the insert", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{
			cfg:       entity.Config{Length: 6, TTLSeconds: 300},
			createErr: &pgconn.PgError{Code: "23503"},
		}
		notif := &fakeNotifier{}
		uc, _, _ := newTestUsecase(t, repo, notif)

		err := uc.Send(context.Background(), SendInput{UserID: 7, Channel: "EMAIL"})
		requireErrCode(t, err, goerror.CodeInvalidInput)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		require.Equal(t, http.StatusBadRequest, gerr.StatusCode())
	})

	t.Run("transport failure keeps the row active", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{
			cfg:       entity.Config{Length: 6, TTLSeconds: 300},
			usernames: map[int64]string{7: "alice@example.com"},
		}
		notif := &fakeNotifier{err: errors.New("smtp down")}
		uc, _, _ := newTestUsecase(t, repo, notif)

		err := uc.Send(context.Background(), SendInput{UserID: 7, Channel: "EMAIL"})
		requireErrCode(t, err, goerror.CodeInternal)
		require.Len(t, repo.otps, 1)
		require.Equal(t, entity.StatusActive, repo.otps[0].Status)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("unknown code is invalid without error", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{cfg: entity.Config{Length: 6, TTLSeconds: 300}}
		uc, _, _ := newTestUsecase(t, repo, &fakeNotifier{})

		valid, err := uc.Validate(context.Background(), ValidateInput{Code: "000000"})
		require.NoError(t, err)
		require.False(t, valid)
	})

	t.Run("fresh active code validates once", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{cfg: entity.Config{Length: 6, TTLSeconds: 300}, markUsedOK: true}
		uc, clk, _ := newTestUsecase(t, repo, &fakeNotifier{})

		repo.otps = append(repo.otps, entity.Otp{
			ID: 1, UserID: 7, Code: "123456",
			Status: entity.StatusActive, CreatedAt: clk.Now(),
		})

		clk.Advance(299 * time.Second)

		valid, err := uc.Validate(context.Background(), ValidateInput{Code: "123456"})
		require.NoError(t, err)
		require.True(t, valid)
		require.Equal(t, []int64{1}, repo.markUsedIDs)
	})

	t.Run("non-active row is invalid", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{cfg: entity.Config{Length: 6, TTLSeconds: 300}, markUsedOK: true}
		uc, clk, _ := newTestUsecase(t, repo, &fakeNotifier{})

		repo.otps = append(repo.otps, entity.Otp{
			ID: 1, UserID: 7, Code: "123456",
			Status: entity.StatusUsed, CreatedAt: clk.Now(),
		})

		valid, err := uc.Validate(context.Background(), ValidateInput{Code: "123456"})
		require.NoError(t, err)
		require.False(t, valid)
		require.Empty(t, repo.markUsedIDs)
	})

	t.Run("stale row is invalid and triggers the sweep", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{cfg: entity.Config{Length: 6, TTLSeconds: 300}, markUsedOK: true}
		uc, clk, mgr := newTestUsecase(t, repo, &fakeNotifier{})

		repo.otps = append(repo.otps, entity.Otp{
			ID: 1, UserID: 7, Code: "123456",
			Status: entity.StatusActive, CreatedAt: clk.Now(),
		})

		clk.Advance(301 * time.Second)

		valid, err := uc.Validate(context.Background(), ValidateInput{Code: "123456"})
		require.NoError(t, err)
		require.False(t, valid)
		require.Empty(t, repo.markUsedIDs)

		require.NoError(t, mgr.Wait())
		repo.mu.Lock()
		defer repo.mu.Unlock()
		require.Equal(t, 1, repo.expireCalls)
	})

	t.Run("losing the conditional update race is invalid", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepo{cfg: entity.Config{Length: 6, TTLSeconds: 300}, markUsedOK: false}
		uc, clk, _ := newTestUsecase(t, repo, &fakeNotifier{})

		repo.otps = append(repo.otps, entity.Otp{
			ID: 1, UserID: 7, Code: "123456",
			Status: entity.StatusActive, CreatedAt: clk.Now(),
		})

		valid, err := uc.Validate(context.Background(), ValidateInput{Code: "123456"})
		require.NoError(t, err)
		require.False(t, valid)
		require.Equal(t, []int64{1}, repo.markUsedIDs)
	})
}

func TestMarkExpired(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{cfg: entity.Config{Length: 6, TTLSeconds: 300}}
	uc, clk, _ := newTestUsecase(t, repo, &fakeNotifier{})

	require.NoError(t, uc.MarkExpired(context.Background()))
	require.Equal(t, 1, repo.expireCalls)
	require.Equal(t, clk.Now().Add(-300*time.Second), repo.expireCutoff)
}

func TestSweeperRunsImmediatelyAndStops(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{cfg: entity.Config{Length: 6, TTLSeconds: 300}}
	uc, _, _ := newTestUsecase(t, repo, &fakeNotifier{})

	sw := NewSweeper(uc, time.Hour)
	sw.Start(context.Background())

	require.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return repo.expireCalls == 1
	}, time.Second, 10*time.Millisecond)

	sw.Stop()
}
