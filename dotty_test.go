package tritree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListToDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tritree")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := ListToDot(Of(1, 2, 3, 4, 5), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a DOT graph:\n%s", dot)
	}
	// 8 nodes, one edge per child
	if n := strings.Count(dot, "->"); n != 7 {
		t.Errorf("expected 7 edges, have %d:\n%s", n, dot)
	}
	if !strings.Contains(dot, `[label="3" `) || !strings.Contains(dot, `[label=5 `) {
		t.Errorf("missing labels:\n%s", dot)
	}
	buf.Reset()
	if err := ListToDot(List[int]{}, &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Errorf("empty list has edges")
	}
}

type failingWriter struct{ written int }

var errWriteFailed = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.written += len(p)
	return 0, errWriteFailed
}

func TestListToDotReportsWriteErrors(t *testing.T) {
	for _, n := range []int{5, 2000} {
		w := &failingWriter{}
		if err := ListToDot(FromSlice(seq(n)), w); !errors.Is(err, errWriteFailed) {
			t.Errorf("list of %d items: expected write error, got %v", n, err)
		}
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	if err := Of(1, 2, 3, 4, 5).Dump(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	for _, s := range []string{"Branch3 size=5 depth=2", "Branch2 size=2 depth=1", "3", "5"} {
		if !strings.Contains(out, s) {
			t.Errorf("dump is missing %q", s)
		}
	}
	buf.Reset()
	if err := (List[int]{}).Dump(&buf); err != nil || !strings.Contains(buf.String(), "Empty") {
		t.Errorf("unexpected dump of empty list: %q, %v", buf.String(), err)
	}
}
