package engine

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"dungeonescape/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func TestRecordRunRoundTrip(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	sess := NewSession("Hero")
	sess.Resolve(ActionFight) // loot Base
	for i := 0; i < 4; i++ {
		sess.Resolve(ActionBypass)
	}
	if sess.Outcome() != OutcomeEscaped {
		t.Fatalf("outcome=%q, want escaped", sess.Outcome())
	}

	id, err := svc.RecordRun(ctx, sess)
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if id <= 0 {
		t.Fatalf("run id=%d", id)
	}

	runs, err := svc.History(ctx, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("history len=%d, want 1", len(runs))
	}
	run := runs[0]
	if run.PlayerName != "Hero" || run.Outcome != string(OutcomeEscaped) {
		t.Fatalf("run=%+v", run)
	}
	if run.Coins != 10 || run.EnemiesDefeated != 1 || run.RoomsCleared != 5 {
		t.Fatalf("run stats=%+v", run)
	}
	if run.MovesLeft != 5 {
		t.Fatalf("moves left=%d, want 5", run.MovesLeft)
	}

	loot, err := svc.Loot(ctx, id)
	if err != nil {
		t.Fatalf("Loot: %v", err)
	}
	if want := []string{"5 Coins", "Armour"}; !reflect.DeepEqual(loot, want) {
		t.Fatalf("loot=%v, want %v", loot, want)
	}
}

func TestRecordRunRejectsUnfinishedSession(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.RecordRun(context.Background(), NewSession("Hero")); err == nil {
		t.Fatalf("expected error recording an in-progress session")
	}
}

func TestTopOrdering(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// quit immediately: no coins, no escape
	quitter := NewSession("Quitter")
	quitter.Resolve(ActionQuit)

	// one victory then quit: 10 coins
	fighter := NewSession("Fighter")
	fighter.Resolve(ActionFight)
	fighter.Resolve(ActionQuit)

	// all-bypass escape: no coins but escaped
	runner := NewSession("Runner")
	for i := 0; i < 5; i++ {
		runner.Resolve(ActionBypass)
	}

	for _, sess := range []*Session{quitter, fighter, runner} {
		if _, err := svc.RecordRun(ctx, sess); err != nil {
			t.Fatalf("RecordRun(%s): %v", sess.Player.Name, err)
		}
	}

	top, err := svc.Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	var names []string
	for _, run := range top {
		names = append(names, run.PlayerName)
	}
	want := []string{"Runner", "Fighter", "Quitter"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("top order=%v, want %v", names, want)
	}
}
