package app

import (
	"math"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Evaluator drives generated functions through the checked path and
// memoizes results. Kernels are pure, so identical inputs can be served
// from cache within the configured TTL.
type Evaluator struct {
	cfg    Config
	logger *Logger
	memo   *gocache.Cache
}

func NewEvaluator(cfg Config, logger *Logger) *Evaluator {
	e := &Evaluator{cfg: cfg, logger: logger}
	if cfg.CacheTTLSeconds > 0 {
		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		e.memo = gocache.New(ttl, 2*ttl)
	}
	return e
}

// Eval evaluates the named function at the given inputs.
func (e *Evaluator) Eval(name string, in []float64) ([]float64, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	key := memoKey(name, in)
	if e.memo != nil {
		if v, ok := e.memo.Get(key); ok {
			return v.([]float64), nil
		}
	}

	start := time.Now()
	out, err := f.Eval(in)
	if err != nil {
		e.logger.Error("eval failed", map[string]any{"function": name, "error": err.Error()})
		return nil, err
	}
	e.logger.Info("eval", map[string]any{
		"function":    name,
		"inputs":      in,
		"outputs":     out,
		"duration_us": time.Since(start).Microseconds(),
	})

	if e.memo != nil {
		e.memo.Set(key, out, gocache.DefaultExpiration)
	}
	return out, nil
}

// memoKey keys on the exact float bits so that 0.1+0.2 and 0.3 do not
// collide.
func memoKey(name string, in []float64) string {
	var b strings.Builder
	b.WriteString(name)
	for _, v := range in {
		b.WriteByte('|')
		b.WriteString(strconv.FormatUint(math.Float64bits(v), 16))
	}
	return b.String()
}
