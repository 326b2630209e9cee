package docs

import (
	"strings"
	"testing"

	"github.com/kmazurek/coldfront/internal/models"
	"github.com/kmazurek/coldfront/internal/rng"
)

func TestBatchCountAndFields(t *testing.T) {
	gen := NewProcedural()
	state := models.NewWorldState(rng.New(11))
	r := rng.New(12)

	batch := gen.Batch(state, 5, 8, r)
	if len(batch) != 5 {
		t.Fatalf("got %d documents, want 5", len(batch))
	}
	for _, d := range batch {
		if !strings.HasPrefix(d.ID, "DOC-") && d.ID != "SIGNAL-???" {
			t.Errorf("unexpected id format %q", d.ID)
		}
		if d.Reliability < 0.3 || d.Reliability > 0.95 {
			t.Errorf("reliability %v outside [0.3, 0.95]", d.Reliability)
		}
		if d.Content == "" {
			t.Error("empty content")
		}
		if d.Clearance == "" {
			t.Error("empty clearance")
		}
		if d.Timestamp == "" {
			t.Error("empty timestamp")
		}
	}
}

func TestBatchDeterministicGivenStream(t *testing.T) {
	gen := NewProcedural()
	state := models.NewWorldState(rng.New(21))

	a := gen.Batch(state, 4, 5, rng.New(77))
	b := gen.Batch(state, 4, 5, rng.New(77))

	for i := range a {
		if a[i].ID != b[i].ID || a[i].Content != b[i].Content || a[i].IsEncrypted != b[i].IsEncrypted {
			t.Fatalf("document %d diverged between identical streams", i)
		}
	}
}

func TestTurnOneNeverEncrypted(t *testing.T) {
	gen := NewProcedural()
	state := models.NewWorldState(rng.New(31))
	r := rng.New(32)

	for i := 0; i < 50; i++ {
		for _, d := range gen.Batch(state, 3, 1, r) {
			if d.IsEncrypted {
				t.Fatal("turn 1 produced an encrypted document")
			}
		}
	}
}

func TestTrustedTypesNeverEncrypted(t *testing.T) {
	gen := NewProcedural()
	state := models.NewWorldState(rng.New(41))
	r := rng.New(42)

	for i := 0; i < 200; i++ {
		for _, d := range gen.Batch(state, 5, 15, r) {
			if (d.Type == models.DocAnonymousLeak || d.Type == models.DocAdvisorMessage) && d.IsEncrypted {
				t.Fatalf("trusted document type %d arrived encrypted", d.Type)
			}
		}
	}
}
