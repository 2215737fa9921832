package parallel

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_EachIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	seen := make([]int32, 37)
	For(len(seen), func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times", i, c)
		}
	}
}

func TestForRange_DisjointChunks(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 2}

	n := 10
	covered := make([]int32, n)
	var chunks int32
	ForRange(n, func(start, end int) {
		atomic.AddInt32(&chunks, 1)
		for i := start; i < end; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	}, cfg)

	for i, c := range covered {
		if c != 1 {
			t.Errorf("index %d covered %d times", i, c)
		}
	}
	if int(chunks) != cfg.Workers(n) {
		t.Errorf("Expected %d chunks, got %d", cfg.Workers(n), chunks)
	}
}

func TestForRange_WaitsForSlowChunks(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	var done int32
	ForRange(8, func(start, _ int) {
		if start%4 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		atomic.AddInt32(&done, 1)
	}, cfg)

	if got := atomic.LoadInt32(&done); got != int32(cfg.Workers(8)) {
		t.Errorf("ForRange returned after %d of %d chunks", got, cfg.Workers(8))
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
	if w := cfg.Workers(n); w != 1 {
		t.Errorf("Expected 1 worker, got %d", w)
	}
}

func TestFor_Empty(t *testing.T) {
	called := false
	ForRange(0, func(_, _ int) { called = true }, DefaultConfig())
	if called {
		t.Error("ForRange(0) must not call f")
	}
	if w := DefaultConfig().Workers(0); w != 0 {
		t.Errorf("Expected 0 workers, got %d", w)
	}
}

func TestWorkers(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		n    int
		want int
	}{
		{"disabled", Config{Enabled: false, NumWorkers: 8, MinChunkSize: 1}, 100, 1},
		{"one worker", Config{Enabled: true, NumWorkers: 1, MinChunkSize: 1}, 100, 1},
		{"even split", Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, 100, 4},
		{"min chunk bound", Config{Enabled: true, NumWorkers: 8, MinChunkSize: 30}, 100, 4},
		{"fewer items than workers", Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Workers(tt.n); got != tt.want {
				t.Errorf("Workers(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
