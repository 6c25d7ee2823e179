package subject_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/joeydtaylor/hrvkit/pkg/internal/subject"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

func testMappings() []types.SubjectMapping {
	return []types.SubjectMapping{
		{FolderSubstring: "A04A07", SubjectID: "01"},
		{FolderSubstring: "A042AE", SubjectID: "02"},
		{FolderSubstring: "A03E19", SubjectID: "03"},
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := subject.NewResolver(subject.WithMapping(testMappings()...))

	path := filepath.Join("data", "session-1", "1650000000_A042AE", "BVP_addtime.csv")
	key, err := r.Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if key.Session != "session-1" {
		t.Errorf("expected session %q, got %q", "session-1", key.Session)
	}
	if key.Subject != "02" {
		t.Errorf("expected subject %q, got %q", "02", key.Subject)
	}
	if key.Label() != "session-1_02" {
		t.Errorf("expected label %q, got %q", "session-1_02", key.Label())
	}
}

func TestResolver_FirstMatchWins(t *testing.T) {
	r := subject.NewResolver(subject.WithMapping(
		types.SubjectMapping{FolderSubstring: "A0", SubjectID: "first"},
		types.SubjectMapping{FolderSubstring: "A04A07", SubjectID: "second"},
	))

	path := filepath.Join("data", "s", "A04A07_device", "rec.csv")
	key, err := r.Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if key.Subject != "first" {
		t.Errorf("expected first table entry to win, got subject %q", key.Subject)
	}
}

func TestResolver_NotFound(t *testing.T) {
	r := subject.NewResolver(subject.WithMapping(testMappings()...))

	path := filepath.Join("data", "session-1", "unknown_device", "rec.csv")
	_, err := r.Resolve(path)
	if err == nil {
		t.Fatalf("expected resolution failure for unmatched folder")
	}
	if !errors.Is(err, subject.ErrSubjectNotFound) {
		t.Errorf("expected ErrSubjectNotFound, got %v", err)
	}
}

func TestResolver_EmptyTableRejectsEverything(t *testing.T) {
	r := subject.NewResolver()

	_, err := r.Resolve(filepath.Join("a", "b", "c", "rec.csv"))
	if !errors.Is(err, subject.ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
}
