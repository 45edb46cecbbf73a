// Package observability provides the structured logging and tracing
// interfaces the quadtree engine calls into on subdivision, compression and
// analysis runs, adapted from the teacher's own observability package.
package observability

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Logger is the structured logging interface library code is written
// against; callers supply an implementation (or accept the NopLogger
// default).
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field is a single structured logging key/value pair.
type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

// String, Int, Float64 and Error construct structured Fields.
func String(key, value string) Field   { return stringField{key, value} }
func Int(key string, value int) Field  { return intField{key, value} }
func Float64(key string, v float64) Field { return float64Field{key, v} }
func Error(key string, err error) Field   { return errorField{key, err} }

// NopLogger discards everything logged to it.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// Tracer provides distributed tracing hooks for library operations.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a tracing span.
type Span interface {
	SetTag(key string, value interface{})
	SetError(err error)
	Finish()
}

type nopTracer struct{}

func (nopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, nopSpan{}
}

// NopTracer returns a tracer that does nothing.
func NopTracer() Tracer { return nopTracer{} }

type nopSpan struct{}

func (nopSpan) SetTag(string, interface{}) {}
func (nopSpan) SetError(error)             {}
func (nopSpan) Finish()                    {}

// ColorLogger writes leveled, color-coded lines to w — blue for Debug,
// plain for Info, yellow for Warn, red for Error — for interactive CLI use.
// It has no With-accumulated state beyond its own prefix fields.
type ColorLogger struct {
	w      io.Writer
	prefix []Field
}

// NewColorLogger returns a ColorLogger writing to w.
func NewColorLogger(w io.Writer) *ColorLogger {
	return &ColorLogger{w: w}
}

func (l *ColorLogger) line(c *color.Color, level, msg string, fields []Field) {
	all := append(append([]Field{}, l.prefix...), fields...)
	rendered := c.Sprintf("[%s] %s", level, msg)
	for _, f := range all {
		rendered += fmt.Sprintf(" %s=%v", f.Key(), f.Value())
	}
	fmt.Fprintln(l.w, rendered)
}

func (l *ColorLogger) Debug(msg string, fields ...Field) {
	l.line(color.New(color.FgBlue), "debug", msg, fields)
}

func (l *ColorLogger) Info(msg string, fields ...Field) {
	l.line(color.New(color.Reset), "info", msg, fields)
}

func (l *ColorLogger) Warn(msg string, fields ...Field) {
	l.line(color.New(color.FgYellow), "warn", msg, fields)
}

func (l *ColorLogger) Error(msg string, fields ...Field) {
	l.line(color.New(color.FgRed), "error", msg, fields)
}

func (l *ColorLogger) With(fields ...Field) Logger {
	return &ColorLogger{w: l.w, prefix: append(append([]Field{}, l.prefix...), fields...)}
}

// Standard metric names emitted by the quadtree engine.
const (
	MetricSubdivideCount  = "quadtree.subdivide.count"
	MetricCompressCount   = "quadtree.compress.count"
	MetricQueryDuration   = "quadtree.query.duration"
	MetricDBSCANClusters  = "quadtree.dbscan.clusters"
	MetricKNNNodesVisited = "quadtree.knn.nodes_visited"
)
