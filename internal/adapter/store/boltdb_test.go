package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"friendlyenum/config"
	"friendlyenum/internal/domain"
)

func openStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestBoltStore_PutGetList(t *testing.T) {
	st := openStore(t)

	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	recs := []domain.GenerationRecord{
		{Implementation: "/src/b/Shape.cpp", Header: "/src/b/Shape.h", EnumName: "Shape", ContentHash: "22", Outcome: domain.OutcomeUnchanged, GeneratedAt: at},
		{Implementation: "/src/a/Color.cpp", Header: "/src/a/Color.h", EnumName: "Color", ContentHash: "11", Outcome: domain.OutcomeWritten, GeneratedAt: at},
	}
	for _, rec := range recs {
		if err := st.PutRecord(rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := st.GetRecord("/src/a/Color.cpp")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(recs[1], got); diff != "" {
		t.Errorf("unexpected record (-want +got):\n%s", diff)
	}

	list, err := st.ListRecords()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	if list[0].Implementation != "/src/a/Color.cpp" {
		t.Errorf("expected records ordered by path, got %s first", list[0].Implementation)
	}

	if _, err := st.GetRecord("/missing.cpp"); err == nil {
		t.Error("expected error for missing record")
	}
}

func TestBoltStore_PutOverwrites(t *testing.T) {
	st := openStore(t)

	rec := domain.GenerationRecord{Implementation: "/x.cpp", Outcome: domain.OutcomeWritten}
	if err := st.PutRecord(rec); err != nil {
		t.Fatal(err)
	}
	rec.Outcome = domain.OutcomeUnchanged
	if err := st.PutRecord(rec); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetRecord("/x.cpp")
	if err != nil {
		t.Fatal(err)
	}
	if got.Outcome != domain.OutcomeUnchanged {
		t.Errorf("expected outcome unchanged, got %s", got.Outcome)
	}
}

func TestBoltStore_Migrate(t *testing.T) {
	st := openStore(t)
	cfg := config.DefaultConfig()

	result, err := st.Migrate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.NeedsReset {
		t.Errorf("expected no reset for a fresh store, got %q", result.Reason)
	}

	if err := st.PutRecord(domain.GenerationRecord{Implementation: "/x.cpp"}); err != nil {
		t.Fatal(err)
	}

	result, err = st.Migrate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.NeedsReset {
		t.Error("expected no reset for unchanged config")
	}
	if list, _ := st.ListRecords(); len(list) != 1 {
		t.Errorf("expected record to survive, got %d records", len(list))
	}

	cfg.Generate.SystemIncludes = []string{"map"}
	result, err = st.Migrate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !result.NeedsReset {
		t.Error("expected reset after generation settings changed")
	}
	if list, _ := st.ListRecords(); len(list) != 0 {
		t.Errorf("expected records to be cleared, got %d", len(list))
	}
}

func TestComputeConfigHash(t *testing.T) {
	a := config.DefaultConfig()
	b := config.DefaultConfig()
	b.Logging.Level = "debug"
	if ComputeConfigHash(a) != ComputeConfigHash(b) {
		t.Error("expected logging level not to affect the config hash")
	}

	b.Header.UnknownSynonyms = []string{"Invalid"}
	if ComputeConfigHash(a) == ComputeConfigHash(b) {
		t.Error("expected unknown synonyms to affect the config hash")
	}
}
