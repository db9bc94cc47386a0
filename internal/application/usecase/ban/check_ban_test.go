package ban

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

type stubBanRepo struct {
	bans []*entity.DeviceBan
	err  error

	lastFingerprint string
	lastIP          string
	lastEmail       string
}

func (s *stubBanRepo) Create(ctx context.Context, ban *entity.DeviceBan) error { return nil }
func (s *stubBanRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeviceBan, error) {
	return nil, nil
}
func (s *stubBanRepo) FindAll(ctx context.Context) ([]*entity.DeviceBan, error) { return nil, nil }
func (s *stubBanRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

func (s *stubBanRepo) FindActive(ctx context.Context, fingerprint, ipAddress, email string, now time.Time) ([]*entity.DeviceBan, error) {
	s.lastFingerprint = fingerprint
	s.lastIP = ipAddress
	s.lastEmail = email
	return s.bans, s.err
}

type stubBanCache struct {
	stored map[string]*entity.BanDecision
	getErr error
	setErr error
}

func newStubBanCache() *stubBanCache {
	return &stubBanCache{stored: make(map[string]*entity.BanDecision)}
}

func (s *stubBanCache) Get(ctx context.Context, fingerprint string) (*entity.BanDecision, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stored[fingerprint], nil
}

func (s *stubBanCache) Set(ctx context.Context, fingerprint string, decision *entity.BanDecision) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.stored[fingerprint] = decision
	return nil
}

type stubIPResolver struct {
	ip  string
	err error
}

func (s *stubIPResolver) Resolve(ctx context.Context) (string, error) { return s.ip, s.err }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestCheckBan_NotBanned(t *testing.T) {
	repo := &stubBanRepo{}
	uc := NewCheckBanUseCase(repo, newStubBanCache(), &stubIPResolver{ip: "203.0.113.9"}, fixedClock{time.Now()})

	out, err := uc.Execute(context.Background(), CheckBanInput{
		Signals: map[string]string{"machine_id": "abc"},
		Email:   "user@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Decision.Banned {
		t.Error("expected not banned")
	}
	if repo.lastIP != "203.0.113.9" {
		t.Errorf("expected resolved IP passed to repo, got %q", repo.lastIP)
	}
	if repo.lastEmail != "user@example.com" {
		t.Errorf("expected email passed to repo, got %q", repo.lastEmail)
	}
	if repo.lastFingerprint != Fingerprint(map[string]string{"machine_id": "abc"}) {
		t.Errorf("unexpected fingerprint %q", repo.lastFingerprint)
	}
}

func TestCheckBan_ActivePermanentBan(t *testing.T) {
	now := time.Date(2025, time.March, 18, 12, 0, 0, 0, time.UTC)
	repo := &stubBanRepo{bans: []*entity.DeviceBan{
		{ID: uuid.New(), Reason: "abuse", IsPermanent: true},
	}}
	uc := NewCheckBanUseCase(repo, newStubBanCache(), &stubIPResolver{}, fixedClock{now})

	out, err := uc.Execute(context.Background(), CheckBanInput{Signals: map[string]string{"m": "1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Decision.Banned {
		t.Fatal("expected banned")
	}
	if !out.Decision.IsPermanent {
		t.Error("expected permanent flag")
	}
	if out.Decision.Reason != "abuse" {
		t.Errorf("expected reason %q, got %q", "abuse", out.Decision.Reason)
	}
}

func TestCheckBan_ExpiredTemporaryBanIgnored(t *testing.T) {
	now := time.Date(2025, time.March, 18, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)
	repo := &stubBanRepo{bans: []*entity.DeviceBan{
		{ID: uuid.New(), BannedUntil: &expired},
	}}
	uc := NewCheckBanUseCase(repo, newStubBanCache(), &stubIPResolver{}, fixedClock{now})

	out, err := uc.Execute(context.Background(), CheckBanInput{Signals: map[string]string{"m": "1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Decision.Banned {
		t.Error("expected expired ban to be ignored")
	}
}

func TestCheckBan_TemporaryBanStillActive(t *testing.T) {
	now := time.Date(2025, time.March, 18, 12, 0, 0, 0, time.UTC)
	until := now.Add(48 * time.Hour)
	repo := &stubBanRepo{bans: []*entity.DeviceBan{
		{ID: uuid.New(), Reason: "spam", BannedUntil: &until},
	}}
	uc := NewCheckBanUseCase(repo, newStubBanCache(), &stubIPResolver{}, fixedClock{now})

	out, err := uc.Execute(context.Background(), CheckBanInput{Signals: map[string]string{"m": "1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Decision.Banned {
		t.Fatal("expected banned")
	}
	if out.Decision.BannedUntil == nil || !out.Decision.BannedUntil.Equal(until) {
		t.Errorf("expected banned_until %v, got %v", until, out.Decision.BannedUntil)
	}
}

func TestCheckBan_FailsOpenOnRepositoryError(t *testing.T) {
	repo := &stubBanRepo{err: errors.New("connection refused")}
	uc := NewCheckBanUseCase(repo, newStubBanCache(), &stubIPResolver{}, fixedClock{time.Now()})

	out, err := uc.Execute(context.Background(), CheckBanInput{Signals: map[string]string{"m": "1"}})
	if err != nil {
		t.Fatalf("expected fail-open, got error: %v", err)
	}
	if out.Decision.Banned {
		t.Error("expected not banned on repository error")
	}
}

func TestCheckBan_ToleratesIPResolutionFailure(t *testing.T) {
	repo := &stubBanRepo{}
	uc := NewCheckBanUseCase(repo, newStubBanCache(), &stubIPResolver{err: errors.New("timeout")}, fixedClock{time.Now()})

	out, err := uc.Execute(context.Background(), CheckBanInput{Signals: map[string]string{"m": "1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Decision.Banned {
		t.Error("expected not banned")
	}
	if repo.lastIP != "" {
		t.Errorf("expected empty IP on resolution failure, got %q", repo.lastIP)
	}
}

func TestCheckBan_ToleratesCacheFailure(t *testing.T) {
	cache := newStubBanCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	uc := NewCheckBanUseCase(&stubBanRepo{}, cache, &stubIPResolver{}, fixedClock{time.Now()})

	if _, err := uc.Execute(context.Background(), CheckBanInput{Signals: map[string]string{"m": "1"}}); err != nil {
		t.Fatalf("expected cache errors to be swallowed, got: %v", err)
	}
}

func TestCheckBan_UsesCachedDecision(t *testing.T) {
	signals := map[string]string{"machine_id": "abc"}
	cache := newStubBanCache()
	cache.stored[Fingerprint(signals)] = &entity.BanDecision{Banned: true, Reason: "cached"}

	repo := &stubBanRepo{} // would report not banned
	uc := NewCheckBanUseCase(repo, cache, &stubIPResolver{}, fixedClock{time.Now()})

	out, err := uc.Execute(context.Background(), CheckBanInput{Signals: signals})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Decision.Banned || out.Decision.Reason != "cached" {
		t.Errorf("expected cached decision, got %+v", out.Decision)
	}
	if repo.lastFingerprint != "" {
		t.Error("expected repository to be skipped on cache hit")
	}
}
