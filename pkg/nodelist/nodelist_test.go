package nodelist_test

import (
	"strings"
	"testing"

	"github.com/dicklesworthstone/graphrank/pkg/nodelist"
)

func TestLoad(t *testing.T) {
	input := "# pivots\n1\n\n2\n  3  \n"
	ids, err := nodelist.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []int64{1, 2, 3}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := nodelist.Load(strings.NewReader("1\nabc\n"))
	if err == nil {
		t.Fatalf("expected an error for a non-numeric line")
	}
}

func TestLoadEmpty(t *testing.T) {
	ids, err := nodelist.Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("ids = %v, want empty", ids)
	}
}
