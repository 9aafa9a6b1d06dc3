package montage

// Effect is an annotation applied to a clip, stored in attachment order and
// uninterpreted by the engine. Concrete types are *BasicEffect,
// *LinearTimeWarp, and *FreezeFrame.
type Effect interface {
	Name() string
	SetName(name string)
	SetMetadata(key, value string)
	GetMetadata(key string) (string, bool)

	// EffectName identifies what the effect does (e.g. "Blur", a plugin
	// identifier, or a time-warp type).
	EffectName() string

	schemaName() string
}

// BasicEffect is a generic named effect.
type BasicEffect struct {
	item
	effectName string
}

// NewEffect creates a generic effect.
func NewEffect(name, effectName string) *BasicEffect {
	return &BasicEffect{item: item{name: name}, effectName: effectName}
}

// EffectName returns the effect identifier.
func (e *BasicEffect) EffectName() string { return e.effectName }

// SetEffectName replaces the effect identifier.
func (e *BasicEffect) SetEffectName(name string) { e.effectName = name }

func (e *BasicEffect) schemaName() string { return schemaEffect }

// LinearTimeWarp retimes a clip by a constant scalar: 2 doubles the speed,
// 0.5 halves it, negative values play in reverse.
type LinearTimeWarp struct {
	BasicEffect
	timeScalar float64
}

// NewLinearTimeWarp creates a constant-speed retime effect.
func NewLinearTimeWarp(name string, timeScalar float64) *LinearTimeWarp {
	return &LinearTimeWarp{
		BasicEffect: BasicEffect{item: item{name: name}, effectName: "LinearTimeWarp"},
		timeScalar:  timeScalar,
	}
}

// TimeScalar returns the speed multiplier.
func (e *LinearTimeWarp) TimeScalar() float64 { return e.timeScalar }

// SetTimeScalar replaces the speed multiplier.
func (e *LinearTimeWarp) SetTimeScalar(scalar float64) { e.timeScalar = scalar }

func (e *LinearTimeWarp) schemaName() string { return schemaLinearTimeWarp }

// FreezeFrame holds the first frame of the clip for the clip's duration.
// It is a LinearTimeWarp with a scalar of zero.
type FreezeFrame struct {
	LinearTimeWarp
}

// NewFreezeFrame creates a freeze-frame effect.
func NewFreezeFrame(name string) *FreezeFrame {
	f := &FreezeFrame{}
	f.item = item{name: name}
	f.effectName = "FreezeFrame"
	f.timeScalar = 0
	return f
}

func (e *FreezeFrame) schemaName() string { return schemaFreezeFrame }
