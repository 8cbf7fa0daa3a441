package app

import "fmt"

// Kernel is the calling convention of code-generated numerical routines:
// a slice of pointers to input scalars, a slice of pointers to output
// scalars, integer and real scratch space, and a memory id. The return
// value is 0 on success.
//
// The convention is fixed by the code generator, not by this package. A nil
// entry in arg reads as 0.0 and a nil entry in res skips that output.
// Scratch sizing is the caller's problem on this path; nothing is checked.
type Kernel func(arg []*float64, res []*float64, iw []int, w []float64, mem int) int

// Function bundles a generated kernel with the metadata the generator
// reports alongside it: input/output names and the sizes the caller must
// allocate for the four call arrays.
type Function struct {
	Name string
	In   []string
	Out  []string

	// Required sizes for arg, res, iw and w.
	SzArg int
	SzRes int
	SzIW  int
	SzW   int

	kernel Kernel
}

func (f *Function) NIn() int  { return len(f.In) }
func (f *Function) NOut() int { return len(f.Out) }

// Call invokes the kernel with caller-provided arrays, exactly as a C
// driver would. No validation happens here.
func (f *Function) Call(arg []*float64, res []*float64, iw []int, w []float64, mem int) int {
	return f.kernel(arg, res, iw, w, mem)
}

// Eval is the checked path: it validates arity, allocates the call arrays
// from the declared sizes and returns the outputs.
func (f *Function) Eval(in []float64) ([]float64, error) {
	if len(in) != f.NIn() {
		return nil, fmt.Errorf("%s expects %d input(s), got %d", f.Name, f.NIn(), len(in))
	}

	arg := make([]*float64, f.SzArg)
	for i := range in {
		v := in[i]
		arg[i] = &v
	}

	out := make([]float64, f.NOut())
	res := make([]*float64, f.SzRes)
	for i := range out {
		res[i] = &out[i]
	}

	iw := make([]int, f.SzIW)
	w := make([]float64, f.SzW)

	if rc := f.kernel(arg, res, iw, w, 0); rc != 0 {
		return nil, fmt.Errorf("%s returned code %d", f.Name, rc)
	}
	return out, nil
}
