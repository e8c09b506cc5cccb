package eval

import "fmt"

// Frame is a scope with three numeric slots. In the global frame they back
// the variables x, y and z; in the current (innermost) frame they back i, j
// and k. In the global scope the two are the same frame.
type Frame [3]float64

// Locates the slot of a variable: the index of its frame and its index
// within the frame. Names other than the six variables are a programming
// error; the evaluator only resolves names that parse.IsVariable accepts.
func (ev *Evaler) slot(name string) (frame, index int) {
	top := len(ev.frames) - 1
	switch name {
	case "x":
		return 0, 0
	case "y":
		return 0, 1
	case "z":
		return 0, 2
	case "i":
		return top, 0
	case "j":
		return top, 1
	case "k":
		return top, 2
	}
	panic(fmt.Sprintf("eval: %q is not a variable", name))
}

// Var returns the value of a variable. It panics if name is not one of the
// six variables.
func (ev *Evaler) Var(name string) float64 {
	f, i := ev.slot(name)
	return ev.frames[f][i]
}

// SetVar sets the value of a variable. It panics if name is not one of the
// six variables.
func (ev *Evaler) SetVar(name string, v float64) {
	f, i := ev.slot(name)
	ev.frames[f][i] = v
}

// Pushes a frame with its slots filled from args in order, and returns a
// function that pops it. Slots without a corresponding argument are zero.
//
//	defer ev.pushFrame(args)()
func (ev *Evaler) pushFrame(args []float64) func() {
	var f Frame
	copy(f[:], args)
	ev.frames = append(ev.frames, f)
	depth := len(ev.frames)
	return func() {
		if len(ev.frames) != depth {
			panic("eval: unbalanced scope stack")
		}
		ev.frames = ev.frames[:depth-1]
	}
}
