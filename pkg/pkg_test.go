package pkg

import (
	"os"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "logtree" {
		t.Errorf("Name = %q, want %q", Name, "logtree")
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("read VERSION: %v", err)
	}

	if want := strings.TrimSpace(string(buf)); Version != want {
		t.Errorf("Version = %q, want %q", Version, want)
	}

	if Version == "" || strings.ContainsAny(Version, " \n") {
		t.Errorf("Version = %q is not trimmed", Version)
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Fatal("Author is empty")
	}

	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}
