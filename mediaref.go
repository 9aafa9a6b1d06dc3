package montage

import "fmt"

// MediaReference describes the media a clip draws from. Reference types are
// interchangeable behind a clip's keyed reference map; the engine consumes
// only the available-range contract.
type MediaReference interface {
	Name() string
	SetName(name string)
	SetMetadata(key, value string)
	GetMetadata(key string) (string, bool)

	// AvailableRange reports the portion of the media that exists, when
	// the reference knows it.
	AvailableRange() (TimeRange, bool)

	// SetAvailableRange configures the available range.
	SetAvailableRange(r TimeRange) error

	// schemaName tags the concrete type for serialization.
	schemaName() string
}

// mediaRef carries the state shared by all reference types.
type mediaRef struct {
	item
	availableRange TimeRange
	hasAvailable   bool
}

func (m *mediaRef) AvailableRange() (TimeRange, bool) {
	return m.availableRange, m.hasAvailable
}

func (m *mediaRef) SetAvailableRange(r TimeRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	m.availableRange = r
	m.hasAvailable = true
	return nil
}

// ExternalReference points at a media file by URL.
type ExternalReference struct {
	mediaRef
	targetURL string
}

// NewExternalReference creates a reference to the given URL.
func NewExternalReference(targetURL string) *ExternalReference {
	return &ExternalReference{targetURL: targetURL}
}

// TargetURL returns the referenced media URL.
func (r *ExternalReference) TargetURL() string { return r.targetURL }

// SetTargetURL replaces the referenced media URL.
func (r *ExternalReference) SetTargetURL(url string) { r.targetURL = url }

func (r *ExternalReference) schemaName() string { return schemaExternalReference }

// Common generator kinds.
const (
	GeneratorKindSolidColor = "SolidColor"
	GeneratorKindSMPTEBars  = "SMPTEBars"
	GeneratorKindBlack      = "Black"
)

// GeneratorReference describes procedurally generated content such as color
// bars, solid colors, or black video.
type GeneratorReference struct {
	mediaRef
	generatorKind string
}

// NewGeneratorReference creates a generator reference of the given kind.
func NewGeneratorReference(name, generatorKind string) *GeneratorReference {
	return &GeneratorReference{
		mediaRef:      mediaRef{item: item{name: name}},
		generatorKind: generatorKind,
	}
}

// NewBlackGenerator creates a black video generator reference.
func NewBlackGenerator(name string) *GeneratorReference {
	return NewGeneratorReference(name, GeneratorKindBlack)
}

// NewSMPTEBarsGenerator creates a SMPTE color bars generator reference.
func NewSMPTEBarsGenerator(name string) *GeneratorReference {
	return NewGeneratorReference(name, GeneratorKindSMPTEBars)
}

// GeneratorKind returns the kind of content this reference generates.
func (r *GeneratorReference) GeneratorKind() string { return r.generatorKind }

// SetGeneratorKind sets the kind of content this reference generates.
func (r *GeneratorReference) SetGeneratorKind(kind string) { r.generatorKind = kind }

func (r *GeneratorReference) schemaName() string { return schemaGeneratorReference }

// MissingFramePolicy selects how playback should treat missing frames of an
// image sequence. Descriptive only; the engine does not interpret it.
type MissingFramePolicy int

const (
	// MissingFrameError treats a missing frame as an error.
	MissingFrameError MissingFramePolicy = iota

	// MissingFrameHold holds the previous frame.
	MissingFrameHold

	// MissingFrameBlack substitutes black.
	MissingFrameBlack
)

// String returns the policy's document spelling.
func (p MissingFramePolicy) String() string {
	switch p {
	case MissingFrameHold:
		return "hold"
	case MissingFrameBlack:
		return "black"
	default:
		return "error"
	}
}

// ImageSequenceReference describes media stored as a numbered frame
// sequence, e.g. "file:///shots/sq01/" + "frame." + "0001" + ".exr".
type ImageSequenceReference struct {
	mediaRef
	targetURLBase      string
	namePrefix         string
	nameSuffix         string
	startFrame         int
	frameStep          int
	rate               float64
	frameZeroPadding   int
	missingFramePolicy MissingFramePolicy
}

// NewImageSequenceReference creates an image sequence reference. rate is the
// playback rate of the sequence in frames per second and must be positive;
// frameStep must be at least 1.
func NewImageSequenceReference(targetURLBase, namePrefix, nameSuffix string, startFrame, frameStep int, rate float64, frameZeroPadding int) (*ImageSequenceReference, error) {
	if !(rate > 0) {
		return nil, ErrInvalidRate
	}
	if frameStep < 1 {
		frameStep = 1
	}
	return &ImageSequenceReference{
		targetURLBase:    targetURLBase,
		namePrefix:       namePrefix,
		nameSuffix:       nameSuffix,
		startFrame:       startFrame,
		frameStep:        frameStep,
		rate:             rate,
		frameZeroPadding: frameZeroPadding,
	}, nil
}

// TargetURLBase returns the base URL the frame file names are appended to.
func (r *ImageSequenceReference) TargetURLBase() string { return r.targetURLBase }

// NamePrefix returns the file name prefix before the frame number.
func (r *ImageSequenceReference) NamePrefix() string { return r.namePrefix }

// NameSuffix returns the file name suffix after the frame number.
func (r *ImageSequenceReference) NameSuffix() string { return r.nameSuffix }

// StartFrame returns the number of the first frame.
func (r *ImageSequenceReference) StartFrame() int { return r.startFrame }

// SetStartFrame sets the number of the first frame.
func (r *ImageSequenceReference) SetStartFrame(frame int) { r.startFrame = frame }

// FrameStep returns the stride between consecutive frame numbers.
func (r *ImageSequenceReference) FrameStep() int { return r.frameStep }

// Rate returns the sequence playback rate in frames per second.
func (r *ImageSequenceReference) Rate() float64 { return r.rate }

// FrameZeroPadding returns the zero padding width of frame numbers.
func (r *ImageSequenceReference) FrameZeroPadding() int { return r.frameZeroPadding }

// MissingFramePolicy returns the configured missing-frame policy.
func (r *ImageSequenceReference) MissingFramePolicy() MissingFramePolicy {
	return r.missingFramePolicy
}

// SetMissingFramePolicy sets the missing-frame policy.
func (r *ImageSequenceReference) SetMissingFramePolicy(p MissingFramePolicy) {
	r.missingFramePolicy = p
}

// EndFrame returns the number of the last frame, derived from the available
// range. Fails when no available range is configured.
func (r *ImageSequenceReference) EndFrame() (int, error) {
	n, err := r.NumberOfImages()
	if err != nil {
		return 0, err
	}
	return r.startFrame + (n-1)*r.frameStep, nil
}

// NumberOfImages returns how many frames the available range covers.
func (r *ImageSequenceReference) NumberOfImages() (int, error) {
	if !r.hasAvailable {
		return 0, ErrNoMediaReference
	}
	frames := r.availableRange.Duration.Rescaled(r.rate).Value
	n := int(frames)/r.frameStep + 1
	if int(frames)%r.frameStep == 0 && int(frames) > 0 {
		n = int(frames+float64(r.frameStep)-1) / r.frameStep
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// FrameForTime returns the frame number sampled at the given time.
func (r *ImageSequenceReference) FrameForTime(t RationalTime) (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	if !r.hasAvailable {
		return 0, ErrNoMediaReference
	}
	if !r.availableRange.Contains(t) {
		return 0, ErrIndexOutOfRange
	}
	offset := t.Sub(r.availableRange.StartTime).Rescaled(r.rate)
	return r.startFrame + int(offset.Value)*r.frameStep, nil
}

// TargetURLForImageNumber builds the URL of the nth image of the sequence.
func (r *ImageSequenceReference) TargetURLForImageNumber(n int) (string, error) {
	if n < 0 {
		return "", ErrIndexOutOfRange
	}
	frame := r.startFrame + n*r.frameStep
	sep := ""
	if len(r.targetURLBase) > 0 && r.targetURLBase[len(r.targetURLBase)-1] != '/' {
		sep = "/"
	}
	return fmt.Sprintf("%s%s%s%0*d%s", r.targetURLBase, sep, r.namePrefix, r.frameZeroPadding, frame, r.nameSuffix), nil
}

func (r *ImageSequenceReference) schemaName() string { return schemaImageSequenceReference }

// MissingReference is a placeholder for media that is known to exist but is
// not currently available (offline media).
type MissingReference struct {
	mediaRef
}

// NewMissingReference creates a missing-media placeholder.
func NewMissingReference(name string) *MissingReference {
	return &MissingReference{mediaRef{item: item{name: name}}}
}

func (r *MissingReference) schemaName() string { return schemaMissingReference }
