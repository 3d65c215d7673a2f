package memstore

import (
	"testing"

	"friendlyenum/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	for _, impl := range []string{"/b.cpp", "/a.cpp", "/c.cpp"} {
		if err := s.PutRecord(domain.GenerationRecord{Implementation: impl, Outcome: domain.OutcomeWritten}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.PutRecord(domain.GenerationRecord{Implementation: "/a.cpp", Outcome: domain.OutcomeUnchanged}); err != nil {
		t.Fatal(err)
	}

	rec, err := s.GetRecord("/a.cpp")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Outcome != domain.OutcomeUnchanged {
		t.Errorf("expected latest record to win, got %s", rec.Outcome)
	}

	recs, err := s.ListRecords()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for i, want := range []string{"/a.cpp", "/b.cpp", "/c.cpp"} {
		if recs[i].Implementation != want {
			t.Errorf("expected %s at %d, got %s", want, i, recs[i].Implementation)
		}
	}

	if _, err := s.GetRecord("/missing.cpp"); err == nil {
		t.Error("expected error for missing record")
	}
}
