package app

import "math"

// Generated kernels. The bodies keep the shape the code generator emits:
// scalar temps, guarded loads and stores, straight-line arithmetic. Do not
// hand-optimize; regenerate instead.

const gravity = 9.81

// f(x) = sin(x) + x^2
func fKernel(arg []*float64, res []*float64, iw []int, w []float64, mem int) int {
	var a0, a1 float64
	if arg[0] != nil {
		a0 = *arg[0]
	}
	a1 = math.Sin(a0)
	a0 = a0 * a0
	a1 = a1 + a0
	if res[0] != nil {
		*res[0] = a1
	}
	return 0
}

// ball(h, v) -> (der_h, der_v): free-flight derivatives of the bouncing
// ball model, der_h = v and der_v = -g.
func ballKernel(arg []*float64, res []*float64, iw []int, w []float64, mem int) int {
	var a0 float64
	if arg[1] != nil {
		a0 = *arg[1]
	}
	if res[0] != nil {
		*res[0] = a0
	}
	a0 = -gravity
	if res[1] != nil {
		*res[1] = a0
	}
	return 0
}

// rosen(x, y) = (1-x)^2 + 100*(y-x^2)^2, staged through the real work
// vector the way the generator spills intermediates.
func rosenKernel(arg []*float64, res []*float64, iw []int, w []float64, mem int) int {
	var a0, a1 float64
	if arg[0] != nil {
		a0 = *arg[0]
	}
	if arg[1] != nil {
		a1 = *arg[1]
	}
	w[0] = 1 - a0
	w[0] = w[0] * w[0]
	w[1] = a0 * a0
	w[1] = a1 - w[1]
	w[1] = w[1] * w[1]
	w[2] = 100 * w[1]
	w[0] = w[0] + w[2]
	if res[0] != nil {
		*res[0] = w[0]
	}
	return 0
}

func init() {
	MustRegister(&Function{
		Name:   "f",
		In:     []string{"x"},
		Out:    []string{"f"},
		SzArg:  1,
		SzRes:  1,
		kernel: fKernel,
	})
	MustRegister(&Function{
		Name:   "ball",
		In:     []string{"h", "v"},
		Out:    []string{"der_h", "der_v"},
		SzArg:  2,
		SzRes:  2,
		kernel: ballKernel,
	})
	MustRegister(&Function{
		Name:   "rosen",
		In:     []string{"x", "y"},
		Out:    []string{"r"},
		SzArg:  2,
		SzRes:  1,
		SzW:    3,
		kernel: rosenKernel,
	})
}
