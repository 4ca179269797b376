package arcgis

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func featureJSON(exceeded bool, vertices ...[2]float64) string {
	paths := ""
	for i, v := range vertices {
		if i > 0 {
			paths += ","
		}
		paths += fmt.Sprintf("[%f,%f]", v[0], v[1])
	}
	return fmt.Sprintf(
		`{"features":[{"geometry":{"paths":[[%s]]}}],"exceededTransferLimit":%t}`,
		paths, exceeded,
	)
}

func TestFetchCenterlinePagesUntilTransferLimitClears(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/0/query" {
			t.Errorf("path = %s, want /0/query", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")

		// First page reports exceededTransferLimit, second page closes it.
		switch r.URL.Query().Get("resultOffset") {
		case "0":
			fmt.Fprint(w, featureJSON(true, [2]float64{-84.1939, 34.6268}, [2]float64{-84.0, 35.0}))
		case "1000":
			fmt.Fprint(w, featureJSON(false, [2]float64{-83.5, 35.5}))
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("resultOffset"))
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	samples, err := client.FetchCenterline(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(samples) != 3 {
		t.Fatalf("samples = %d, want 3 across both pages", len(samples))
	}
	if samples[0].DistanceMiles != 0 {
		t.Fatalf("first sample distance = %.4f, want 0", samples[0].DistanceMiles)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].DistanceMiles <= samples[i-1].DistanceMiles {
			t.Fatalf("cumulative distance not increasing at sample %d", i)
		}
	}
	// Distance accumulates across the page boundary, not per page.
	if samples[2].DistanceMiles <= samples[1].DistanceMiles {
		t.Fatal("second page did not continue the cumulative distance")
	}
	if samples[0].LatitudeDeg != 34.6268 {
		t.Fatalf("first latitude = %.4f, want 34.6268", samples[0].LatitudeDeg)
	}
}

func TestFetchCenterlineRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream hiccup", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, featureJSON(false, [2]float64{-84.0, 34.6}, [2]float64{-83.9, 34.7}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	samples, err := client.FetchCenterline(context.Background())
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("requests = %d, want 2 (one failure, one retry)", got)
	}
	if len(samples) != 2 {
		t.Fatalf("samples = %d, want 2", len(samples))
	}
}

func TestFetchCenterlineDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad query", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.FetchCenterline(context.Background()); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("requests = %d, want exactly 1 for a non-retryable status", got)
	}
}

func TestFetchCenterlineRejectsEmptyGeometry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"features":[],"exceededTransferLimit":false}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.FetchCenterline(context.Background()); err == nil {
		t.Fatal("expected error for empty feature set")
	}
}

func TestFetchCenterlineHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(srv.URL)
	start := time.Now()
	_, err := client.FetchCenterline(ctx)
	if err == nil {
		t.Fatal("expected error under a cancelled context")
	}
	// Cancellation must cut the backoff short rather than sleeping it out.
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("fetch took %v after cancellation", elapsed)
	}
}

func TestHaversineMiles(t *testing.T) {
	// Springer Mountain to Mount Katahdin, great-circle.
	d := haversineMiles(34.6268, -84.1939, 45.9044, -68.9213)
	if d < 1100 || d > 1250 {
		t.Fatalf("great-circle distance = %.1f mi, want ~1170", d)
	}

	if got := haversineMiles(40, -75, 40, -75); got != 0 {
		t.Fatalf("zero-length leg = %.6f, want 0", got)
	}

	// One degree of latitude is about 69 miles.
	if got := haversineMiles(40, -75, 41, -75); math.Abs(got-69.1) > 1 {
		t.Fatalf("one degree of latitude = %.2f mi, want ~69", got)
	}
}
