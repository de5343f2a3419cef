package moderation

import (
	"testing"

	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestSelection(t *testing.T) {
	s := NewSelection()
	if !s.Toggle("b") {
		t.Error("Expected toggle to select")
	}
	s.Select("a", "c")
	if s.Toggle("c") {
		t.Error("Expected toggle to deselect")
	}
	if diff := cmp.Diff([]string{"a", "b"}, s.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}

	kept, dropped := s.Retain([]models.User{{ID: "b"}, {ID: "z"}})
	if diff := cmp.Diff([]string{"b"}, kept); diff != "" {
		t.Errorf("Kept mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a"}, dropped); diff != "" {
		t.Errorf("Dropped mismatch (-want +got):\n%s", diff)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty selection, got %d", s.Len())
	}
}
