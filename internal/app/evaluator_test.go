package app

import (
	"testing"
)

func TestEvaluator_Eval(t *testing.T) {
	ev := NewEvaluator(DefaultConfig(), NewNopLogger())
	out, err := ev.Eval("ball", []float64{10, -3})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if len(out) != 2 || out[0] != -3 || out[1] != -9.81 {
		t.Fatalf("Eval(ball) = %v, want [-3 -9.81]", out)
	}
}

func TestEvaluator_UnknownFunction(t *testing.T) {
	ev := NewEvaluator(DefaultConfig(), NewNopLogger())
	if _, err := ev.Eval("nope", nil); err == nil {
		t.Fatalf("Eval(nope) did not fail")
	}
}

func TestEvaluator_Memoizes(t *testing.T) {
	calls := 0
	MustRegister(&Function{
		Name:  "counted",
		In:    []string{"x"},
		Out:   []string{"y"},
		SzArg: 1,
		SzRes: 1,
		kernel: func(arg []*float64, res []*float64, iw []int, w []float64, mem int) int {
			calls++
			if res[0] != nil {
				*res[0] = *arg[0]
			}
			return 0
		},
	})

	ev := NewEvaluator(DefaultConfig(), NewNopLogger())
	for i := 0; i < 3; i++ {
		if _, err := ev.Eval("counted", []float64{1.5}); err != nil {
			t.Fatalf("Eval: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("kernel ran %d times, want 1", calls)
	}

	// TTL 0 disables memoization.
	cfg := DefaultConfig()
	cfg.CacheTTLSeconds = 0
	ev = NewEvaluator(cfg, NewNopLogger())
	calls = 0
	for i := 0; i < 2; i++ {
		if _, err := ev.Eval("counted", []float64{1.5}); err != nil {
			t.Fatalf("Eval: %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("kernel ran %d times with cache disabled, want 2", calls)
	}
}

func TestMemoKey_DistinguishesInputs(t *testing.T) {
	a := memoKey("f", []float64{0.1, 0.2})
	b := memoKey("f", []float64{0.3})
	c := memoKey("f", []float64{0.30000000000000004})
	if a == b || b == c {
		t.Fatalf("memo keys collide: %q %q %q", a, b, c)
	}
}
