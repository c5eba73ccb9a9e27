package transport

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/logtree/log"
)

// Filter returns a transport that forwards to next only the records for which
// the boolean expression holds.
//
// The expression is written in expr-lang and sees the record under the same
// names it has on the wire:
//
//	msg                 string
//	data                []any
//	meta.date           time.Time
//	meta.logLevel       string
//	meta.name           string
//	meta.parentNames    []string
//
// The function atLeast(level, min) reports whether level is at or above min,
// for example atLeast(meta.logLevel, "warn").
//
// Records whose evaluation fails are dropped and the error is passed to the
// [OnError] handler.
func Filter(expression string, next log.Transport, opts ...Option) (log.Transport, error) {
	if next == nil {
		return nil, ErrNilTarget
	}

	program, err := compileFilter(expression)
	if err != nil {
		return nil, err
	}

	cfg := makeConfig(opts...)

	return func(r log.Record) {
		ok, err := match(program, r)
		if err != nil {
			cfg.onError(err)

			return
		}

		if ok {
			next(r)
		}
	}, nil
}

func compileFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(
		expression,
		expr.Env(filterEnv(log.Record{})),
		expr.AsBool(),
		expr.Function("atLeast", atLeast, new(func(string, string) bool)),
	)
	if err != nil {
		return nil, ErrFilter.Wrap(err).With(slog.String("expression", expression))
	}

	return program, nil
}

func match(program *vm.Program, r log.Record) (bool, error) {
	out, err := expr.Run(program, filterEnv(r))
	if err != nil {
		return false, ErrEvaluate.Wrap(err).With(slog.String("msg", r.Msg))
	}

	ok, isBool := out.(bool)
	if !isBool {
		return false, ErrEvaluate.With(slog.String("result", fmt.Sprintf("%T", out)))
	}

	return ok, nil
}

// filterEnv exposes r to the expression environment.
func filterEnv(r log.Record) map[string]any {
	data := r.Data
	if data == nil {
		data = []any{}
	}

	parents := r.Meta.ParentNames
	if parents == nil {
		parents = []string{}
	}

	return map[string]any{
		"msg":  r.Msg,
		"data": data,
		"meta": map[string]any{
			"date":        r.Meta.Date,
			"logLevel":    r.Meta.LogLevel.String(),
			"name":        r.Meta.Name,
			"parentNames": parents,
		},
	}
}

func atLeast(params ...any) (any, error) {
	level, err := parseParam(params[0])
	if err != nil {
		return nil, err
	}

	threshold, err := parseParam(params[1])
	if err != nil {
		return nil, err
	}

	return level.Enabled(threshold), nil
}

func parseParam(v any) (log.Level, error) {
	s, ok := v.(string)
	if !ok {
		return log.DefaultLevel, log.ErrInvalidLevel.With(slog.String("type", fmt.Sprintf("%T", v)))
	}

	return log.ParseLevel(s)
}
