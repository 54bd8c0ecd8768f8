package engine

import (
	"sync"
	"testing"
	"time"
)

// TestConcurrentReadersNeverBlockTicking exercises the one-writer /
// many-readers contract under the race detector: a running tick loop,
// several polling readers, and a controller issuing play/stop/tempo
// transitions all at once.
func TestConcurrentReadersNeverBlockTicking(t *testing.T) {
	s := newTestScheduler(t)
	if err := s.Play("basic_alternating", []string{"G", "C"}, 120); err != nil {
		t.Fatalf("Play: %v", err)
	}

	s.Start()
	defer s.Shutdown()

	done := make(chan struct{})
	var wg sync.WaitGroup

	// Readers poll snapshots at their own cadence
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				snap := s.State()
				if len(snap.Joints) != 6 {
					t.Errorf("snapshot joints length %d", len(snap.Joints))
					return
				}
				if snap.Phase < 0 || snap.Phase >= 1 {
					t.Errorf("snapshot phase %v outside [0,1)", snap.Phase)
					return
				}
			}
		}()
	}

	// Controller churns through mid-flight transitions
	wg.Add(1)
	go func() {
		defer wg.Done()
		ids := []string{"basic_down", "folk", "rock", "reggae"}
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			switch i % 4 {
			case 0:
				_ = s.Play(ids[(i/4)%len(ids)], nil, 100)
			case 1:
				_ = s.SetTempo(60 + float64(i%140))
			case 2:
				s.Stop()
			case 3:
				_ = s.Play("basic_alternating", []string{"Em"}, 140)
			}
			time.Sleep(time.Millisecond)
		}
	}()

	time.Sleep(150 * time.Millisecond)
	close(done)
	wg.Wait()
}

// TestManualTickConcurrentWithReaders drives Tick from the test while
// readers poll, the harness-driven scheduling mode
func TestManualTickConcurrentWithReaders(t *testing.T) {
	s := newTestScheduler(t)
	if err := s.Play("folk", nil, 100); err != nil {
		t.Fatalf("Play: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					_ = s.State()
				}
			}
		}()
	}

	for i := 0; i < 2000; i++ {
		s.Tick(5 * time.Millisecond)
	}
	close(done)
	wg.Wait()

	if snap := s.State(); snap.State != StateActive {
		t.Errorf("state = %v, want active", snap.State)
	}
}
