package scores

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"olympiades-service/internal/domain"
	"olympiades-service/internal/testutil"
)

type stubStore struct {
	scores    []domain.Score
	listErr   error
	getPoints int
	getFound  bool
	getErr    error
	upsertErr error
	deleteErr error

	upserts []domain.Score
	deletes []string

	// when set, UpsertScore signals entered then blocks until release closes
	entered chan struct{}
	release chan struct{}
}

func (s *stubStore) ListScores(context.Context) ([]domain.Score, error) {
	return s.scores, s.listErr
}

func (s *stubStore) GetScore(context.Context, string, string) (int, bool, error) {
	return s.getPoints, s.getFound, s.getErr
}

func (s *stubStore) UpsertScore(_ context.Context, sc domain.Score) error {
	if s.entered != nil {
		s.entered <- struct{}{}
		<-s.release
	}
	s.upserts = append(s.upserts, sc)
	return s.upsertErr
}

func (s *stubStore) DeleteScore(_ context.Context, gameID, teamID string) error {
	s.deletes = append(s.deletes, gameID+"_"+teamID)
	return s.deleteErr
}

func newTestLogger() *slog.Logger {
	logger, _ := testutil.NewBufferLogger()
	return logger
}

func TestIndexOrderIndependent(t *testing.T) {
	records := []domain.Score{
		{GameID: "g1", TeamID: "t1", Points: 10},
		{GameID: "g1", TeamID: "t2", Points: 5},
		{GameID: "g2", TeamID: "t1", Points: 3},
	}
	reversed := []domain.Score{records[2], records[1], records[0]}

	a := Index(records)
	b := Index(reversed)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("index depends on record order (-fwd +rev):\n%s", diff)
	}

	if got := a["g1"]["t2"]; got != 5 {
		t.Fatalf("index[g1][t2] = %d, want 5", got)
	}
	if _, ok := a["g3"]; ok {
		t.Fatal("unexpected entry for game with no records")
	}
}

func TestTotals(t *testing.T) {
	idx := Index([]domain.Score{
		{GameID: "g1", TeamID: "t1", Points: 10},
		{GameID: "g2", TeamID: "t1", Points: 4},
		{GameID: "g1", TeamID: "t2", Points: 9},
	})

	totals := Totals(idx)

	want := domain.ScoreTotals{
		TotalsByTeam:      map[string]int{"t1": 14, "t2": 9},
		GamesPlayedByTeam: map[string]int{"t1": 2, "t2": 1},
		MaxTotal:          14,
	}
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Fatalf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestTotalsEmpty(t *testing.T) {
	totals := Totals(Index(nil))
	if totals.MaxTotal != 0 || len(totals.TotalsByTeam) != 0 {
		t.Fatalf("empty index produced totals %+v", totals)
	}
}

func TestSetScoreUpserts(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, newTestLogger(), nil)

	got, err := svc.SetScore(context.Background(), "g1", "t1", 7)
	if err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	if got != 7 {
		t.Fatalf("SetScore returned %d, want 7", got)
	}
	if len(store.upserts) != 1 || store.upserts[0].Points != 7 {
		t.Fatalf("upserts = %+v, want one record with 7 points", store.upserts)
	}
	if len(store.deletes) != 0 {
		t.Fatalf("unexpected deletes %v", store.deletes)
	}
}

func TestSetScoreZeroDeletesRecord(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, newTestLogger(), nil)

	got, err := svc.SetScore(context.Background(), "g1", "t1", 0)
	if err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	if got != 0 {
		t.Fatalf("SetScore returned %d, want 0", got)
	}
	if len(store.upserts) != 0 {
		t.Fatalf("zero points must not be stored, got upserts %+v", store.upserts)
	}
	if len(store.deletes) != 1 || store.deletes[0] != "g1_t1" {
		t.Fatalf("deletes = %v, want [g1_t1]", store.deletes)
	}
}

func TestSetScoreClampsNegative(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, newTestLogger(), nil)

	got, err := svc.SetScore(context.Background(), "g1", "t1", -12)
	if err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	if got != 0 {
		t.Fatalf("SetScore returned %d, want 0", got)
	}
	if len(store.deletes) != 1 {
		t.Fatalf("negative points must collapse to a delete, got %v / %v", store.upserts, store.deletes)
	}
}

func TestSetScoreRejectsBlankKey(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store, newTestLogger(), nil)

	if _, err := svc.SetScore(context.Background(), "", "t1", 3); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if len(store.upserts)+len(store.deletes) != 0 {
		t.Fatal("store touched despite invalid key")
	}
}

func TestSetScoreReturnsStoredValueOnFailure(t *testing.T) {
	store := &stubStore{
		upsertErr: domain.ErrRemoteWrite,
		getPoints: 4,
		getFound:  true,
	}
	svc := NewService(store, newTestLogger(), nil)

	got, err := svc.SetScore(context.Background(), "g1", "t1", 9)
	if !errors.Is(err, domain.ErrRemoteWrite) {
		t.Fatalf("err = %v, want ErrRemoteWrite", err)
	}
	if got != 4 {
		t.Fatalf("SetScore returned %d after failed write, want stored 4", got)
	}
}

func TestSetScoreDropsWhileInFlight(t *testing.T) {
	store := &stubStore{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewService(store, newTestLogger(), nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.SetScore(context.Background(), "g1", "t1", 5)
		done <- err
	}()
	<-store.entered

	if _, err := svc.SetScore(context.Background(), "g1", "t2", 5); !errors.Is(err, domain.ErrUpdateInFlight) {
		t.Fatalf("concurrent call err = %v, want ErrUpdateInFlight", err)
	}

	close(store.release)
	if err := <-done; err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("upserts = %+v, want exactly the first update", store.upserts)
	}
}

func TestScoresPropagatesListError(t *testing.T) {
	store := &stubStore{listErr: domain.ErrRemoteRead}
	svc := NewService(store, newTestLogger(), nil)

	if _, err := svc.Scores(context.Background()); !errors.Is(err, domain.ErrRemoteRead) {
		t.Fatalf("err = %v, want ErrRemoteRead", err)
	}
}
