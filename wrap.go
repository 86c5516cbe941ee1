package framecheck

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/framecheck/framecheck/pkg/tabular"
)

// In wraps a function taking a table so the guard checks the table before
// every call. The wrapped function's name and the parameter name appear in
// violation messages.
func In[T tabular.Table, R any](g *Guard, paramName string, fn func(T) (R, error)) func(T) (R, error) {
	name := funcName(fn)
	return func(t T) (R, error) {
		if err := g.ValidateIn(t, name, paramName); err != nil {
			var zero R
			return zero, err
		}
		return fn(t)
	}
}

// Out wraps a function returning a table so the guard checks the result of
// every successful call.
func Out[A any, T tabular.Table](g *Guard, fn func(A) (T, error)) func(A) (T, error) {
	name := funcName(fn)
	return func(a A) (T, error) {
		t, err := fn(a)
		if err != nil {
			return t, err
		}
		if verr := g.ValidateOut(t, name); verr != nil {
			var zero T
			return zero, verr
		}
		return t, nil
	}
}

// funcName recovers a short name for a function value: the last path segment
// of its runtime name, without package qualifier or closure suffixes.
func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	return name
}
