// Package script runs editor macros: small tengo programs that drive the
// engine's batch operations, so repetitive canvas chores (fill, repair,
// reshuffle) can be automated without touching the engine API.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Ops is the operation surface a macro may call. Nil members are simply
// not exposed to the script.
type Ops struct {
	Flood         func()
	FloodComplete func()
	Reconcile     func()
	Randomize     func()
	Reset         func()
	Undo          func() bool
	Redo          func() bool
	Press         func(cell int)
	SetBrush      func(kind string, index int) error
}

func noArgFunc(name string, fn func()) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 0 {
			return nil, tengo.ErrWrongNumArguments
		}
		fn()
		return tengo.UndefinedValue, nil
	}}
}

func boolFunc(name string, fn func() bool) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 0 {
			return nil, tengo.ErrWrongNumArguments
		}
		if fn() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}
}

// Run compiles and executes one macro against the given operations. Script
// failures come back as errors; the engine is never left mid-operation
// since every exposed call is synchronous.
func Run(src []byte, ops Ops) error {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("math", "rand", "fmt"))

	add := func(name string, obj tengo.Object) error {
		if err := s.Add(name, obj); err != nil {
			return fmt.Errorf("script: register %s: %w", name, err)
		}
		return nil
	}

	if ops.Flood != nil {
		if err := add("flood", noArgFunc("flood", ops.Flood)); err != nil {
			return err
		}
	}
	if ops.FloodComplete != nil {
		if err := add("floodComplete", noArgFunc("floodComplete", ops.FloodComplete)); err != nil {
			return err
		}
	}
	if ops.Reconcile != nil {
		if err := add("reconcile", noArgFunc("reconcile", ops.Reconcile)); err != nil {
			return err
		}
	}
	if ops.Randomize != nil {
		if err := add("randomize", noArgFunc("randomize", ops.Randomize)); err != nil {
			return err
		}
	}
	if ops.Reset != nil {
		if err := add("reset", noArgFunc("reset", ops.Reset)); err != nil {
			return err
		}
	}
	if ops.Undo != nil {
		if err := add("undo", boolFunc("undo", ops.Undo)); err != nil {
			return err
		}
	}
	if ops.Redo != nil {
		if err := add("redo", boolFunc("redo", ops.Redo)); err != nil {
			return err
		}
	}
	if ops.Press != nil {
		press := &tengo.UserFunction{Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			cell, ok := tengo.ToInt(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "cell", Expected: "int", Found: args[0].TypeName()}
			}
			ops.Press(cell)
			return tengo.UndefinedValue, nil
		}}
		if err := add("press", press); err != nil {
			return err
		}
	}
	if ops.SetBrush != nil {
		setBrush := &tengo.UserFunction{Name: "setBrush", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			kind, ok := tengo.ToString(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "kind", Expected: "string", Found: args[0].TypeName()}
			}
			index, ok := tengo.ToInt(args[1])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "index", Expected: "int", Found: args[1].TypeName()}
			}
			if err := ops.SetBrush(kind, index); err != nil {
				return nil, err
			}
			return tengo.UndefinedValue, nil
		}}
		if err := add("setBrush", setBrush); err != nil {
			return err
		}
	}

	if _, err := s.Run(); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}
