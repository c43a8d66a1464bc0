package rate

import (
	"fmt"
	"testing"
	"time"
)

func TestAllowWithinWindow(t *testing.T) {
	now := time.Now()
	m := NewMemory()
	m.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if ok, _ := m.Allow("login:ip:1.2.3.4", 3, time.Minute); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	ok, retry := m.Allow("login:ip:1.2.3.4", 3, time.Minute)
	if ok {
		t.Fatalf("fourth request should be limited")
	}
	if retry != time.Minute {
		t.Fatalf("expected retry of 1m, got %s", retry)
	}

	if ok, _ := m.Allow("login:ip:5.6.7.8", 3, time.Minute); !ok {
		t.Fatalf("other keys should be independent")
	}

	now = now.Add(time.Minute + time.Second)
	if ok, _ := m.Allow("login:ip:1.2.3.4", 3, time.Minute); !ok {
		t.Fatalf("window should have reset")
	}
}

func TestSweepDropsExpiredKeys(t *testing.T) {
	now := time.Now()
	m := NewMemory()
	m.now = func() time.Time { return now }

	for i := 0; i < sweepEvery-1; i++ {
		m.Allow(fmt.Sprintf("k%d", i), 1, time.Second)
	}
	now = now.Add(2 * time.Second)
	m.Allow("fresh", 1, time.Second)

	if got := m.Len(); got != 1 {
		t.Fatalf("expected only the fresh key after sweep, got %d", got)
	}
}
