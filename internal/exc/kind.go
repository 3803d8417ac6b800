package exc

import "io"

// Kind is the category and payload of one failure. A Kind knows its name,
// renders its own explanation into a writer, and exposes the arguments it
// captured at construction. Rendering must be pure: repeatable any number
// of times, including after the originating stack has unwound.
//
// New kinds are produced with the Declare generators rather than written by
// hand; Info is the single hook a kind implements.
type Kind interface {
	Name() string
	Info(w io.Writer)
	Args() []any
}

type kind0 struct {
	name string
	text string
}

func (k kind0) Name() string { return k.name }
func (k kind0) Info(w io.Writer) { io.WriteString(w, k.text) }
func (k kind0) Args() []any { return nil }

type kind1[A any] struct {
	name   string
	a1     A
	render func(io.Writer, A)
}

func (k kind1[A]) Name() string { return k.name }
func (k kind1[A]) Info(w io.Writer) { k.render(w, k.a1) }
func (k kind1[A]) Args() []any { return []any{k.a1} }

type kind2[A, B any] struct {
	name   string
	a1     A
	a2     B
	render func(io.Writer, A, B)
}

func (k kind2[A, B]) Name() string { return k.name }
func (k kind2[A, B]) Info(w io.Writer) { k.render(w, k.a1, k.a2) }
func (k kind2[A, B]) Args() []any { return []any{k.a1, k.a2} }

type kind3[A, B, C any] struct {
	name   string
	a1     A
	a2     B
	a3     C
	render func(io.Writer, A, B, C)
}

func (k kind3[A, B, C]) Name() string { return k.name }
func (k kind3[A, B, C]) Info(w io.Writer) { k.render(w, k.a1, k.a2, k.a3) }
func (k kind3[A, B, C]) Args() []any { return []any{k.a1, k.a2, k.a3} }

type kind4[A, B, C, D any] struct {
	name   string
	a1     A
	a2     B
	a3     C
	a4     D
	render func(io.Writer, A, B, C, D)
}

func (k kind4[A, B, C, D]) Name() string { return k.name }
func (k kind4[A, B, C, D]) Info(w io.Writer) { k.render(w, k.a1, k.a2, k.a3, k.a4) }
func (k kind4[A, B, C, D]) Args() []any { return []any{k.a1, k.a2, k.a3, k.a4} }

type kind5[A, B, C, D, E any] struct {
	name   string
	a1     A
	a2     B
	a3     C
	a4     D
	a5     E
	render func(io.Writer, A, B, C, D, E)
}

func (k kind5[A, B, C, D, E]) Name() string { return k.name }
func (k kind5[A, B, C, D, E]) Info(w io.Writer) { k.render(w, k.a1, k.a2, k.a3, k.a4, k.a5) }
func (k kind5[A, B, C, D, E]) Args() []any { return []any{k.a1, k.a2, k.a3, k.a4, k.a5} }

// Declare0 declares a kind with no arguments and a fixed explanation.
// An empty text means the generic fields are the whole story.
func Declare0(name, text string) func() Kind {
	return func() Kind { return kind0{name: name, text: text} }
}

// Declare1 declares a kind with one typed argument captured by value.
func Declare1[A any](name string, render func(io.Writer, A)) func(A) Kind {
	return func(a1 A) Kind { return kind1[A]{name: name, a1: a1, render: render} }
}

// Declare2 declares a kind with two typed arguments captured by value.
func Declare2[A, B any](name string, render func(io.Writer, A, B)) func(A, B) Kind {
	return func(a1 A, a2 B) Kind { return kind2[A, B]{name: name, a1: a1, a2: a2, render: render} }
}

// Declare3 declares a kind with three typed arguments captured by value.
func Declare3[A, B, C any](name string, render func(io.Writer, A, B, C)) func(A, B, C) Kind {
	return func(a1 A, a2 B, a3 C) Kind {
		return kind3[A, B, C]{name: name, a1: a1, a2: a2, a3: a3, render: render}
	}
}

// Declare4 declares a kind with four typed arguments captured by value.
func Declare4[A, B, C, D any](name string, render func(io.Writer, A, B, C, D)) func(A, B, C, D) Kind {
	return func(a1 A, a2 B, a3 C, a4 D) Kind {
		return kind4[A, B, C, D]{name: name, a1: a1, a2: a2, a3: a3, a4: a4, render: render}
	}
}

// Declare5 declares a kind with five typed arguments captured by value.
func Declare5[A, B, C, D, E any](name string, render func(io.Writer, A, B, C, D, E)) func(A, B, C, D, E) Kind {
	return func(a1 A, a2 B, a3 C, a4 D, a5 E) Kind {
		return kind5[A, B, C, D, E]{name: name, a1: a1, a2: a2, a3: a3, a4: a4, a5: a5, render: render}
	}
}
