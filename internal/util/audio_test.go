package util

import (
	"os"
	"testing"
)

func TestNormalizeOutputPathIsExclusive(t *testing.T) {
	a, err := normalizeOutputPath()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(a)
	b, err := normalizeOutputPath()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(b)

	if a == b {
		t.Fatalf("both transcodes share %s", a)
	}
}
