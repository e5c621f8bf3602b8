// Package effects describes the side effects of a generation run as plain
// values. The core packages return them; internal/app executes them.
package effects

// Effect is one planned side effect.
type Effect interface {
	// EffectType names the effect kind ("log", "file", ...).
	EffectType() string
}

// LogEffect asks the shell to emit a structured log entry.
type LogEffect struct {
	Level   string // debug, info, warn, error
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// FileEffect asks the shell to write a generated file through the sink.
type FileEffect struct {
	Operation string // "write"
	Path      string // slash-separated, relative to the output directory
	Content   []byte
}

func (e FileEffect) EffectType() string { return "file" }

// CompositeEffect groups effects that run in order.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect is the empty plan.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
