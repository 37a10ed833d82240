package metrics

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"pet-hub/internal/store"
)

func TestRegistry_ObserveOperation_CountsByResult(t *testing.T) {
	r := New()

	r.ObserveOperation("pets", "add", 3*time.Millisecond, nil)
	r.ObserveOperation("pets", "add", time.Millisecond, nil)
	r.ObserveOperation("pets", "add", time.Millisecond, errors.New("disk full"))

	if got := testutil.ToFloat64(r.ops.WithLabelValues("pets", "add", "ok")); got != 2 {
		t.Fatalf("expected 2 ok ops, got %v", got)
	}
	if got := testutil.ToFloat64(r.ops.WithLabelValues("pets", "add", "error")); got != 1 {
		t.Fatalf("expected 1 failed op, got %v", got)
	}
}

func TestRegistry_ObserveOperation_LabelsCorruptCollections(t *testing.T) {
	r := New()

	err := fmt.Errorf("%w: reminders: unexpected end of JSON input", store.ErrCorruptCollection)
	r.ObserveOperation("reminders", "list", time.Millisecond, err)

	if got := testutil.ToFloat64(r.ops.WithLabelValues("reminders", "list", "corrupt")); got != 1 {
		t.Fatalf("expected 1 corrupt op, got %v", got)
	}
}

func TestRegistry_Handler_ServesMetrics(t *testing.T) {
	r := New()
	r.ObserveOperation("owners", "delete", time.Millisecond, nil)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `pethub_store_operations_total{collection="owners",op="delete",result="ok"} 1`) {
		t.Fatalf("metrics output missing counter:\n%s", body)
	}
}
