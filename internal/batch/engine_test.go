package batch_test

import (
	"context"
	"testing"

	"github.com/nmeillaya/mygrep/internal/batch"
	"github.com/nmeillaya/mygrep/internal/matcher"
)

func TestEngineRunMatchesInOrder(t *testing.T) {
	re := matcher.MustCompile(`\d+`)
	subjects := [][]byte{
		[]byte("order 1"),
		[]byte("no digits"),
		[]byte("order 42 shipped"),
	}

	e := batch.New(re, 4)
	results, err := e.Run(context.Background(), subjects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(subjects) {
		t.Fatalf("expected %d results, got %d", len(subjects), len(results))
	}

	if results[0].Err != nil || results[0].Match == nil {
		t.Fatalf("expected subject 0 to match, got %+v", results[0])
	}
	if results[1].Err == nil {
		t.Fatal("expected subject 1 to fail to match")
	}
	if results[2].Err != nil || results[2].Match == nil {
		t.Fatalf("expected subject 2 to match, got %+v", results[2])
	}

	for i, r := range results {
		if r.Index != i {
			t.Fatalf("result %d out of order: Index=%d", i, r.Index)
		}
	}
}

func TestEngineRunRespectsCancellation(t *testing.T) {
	re := matcher.MustCompile(`a`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := batch.New(re, 1)
	_, err := e.Run(ctx, [][]byte{[]byte("a"), []byte("b")})
	if err == nil {
		t.Fatal("expected an error from a pre-canceled context")
	}
}
