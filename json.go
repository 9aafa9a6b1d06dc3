package montage

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Schema tags carried in the "OTIO_SCHEMA" field of serialized documents.
// The version suffix is written on output; input accepts any version of a
// known schema name.
const (
	schemaTimeline               = "Timeline.1"
	schemaStack                  = "Stack.1"
	schemaTrack                  = "Track.1"
	schemaClip                   = "Clip.2"
	schemaGap                    = "Gap.1"
	schemaTransition             = "Transition.1"
	schemaMarker                 = "Marker.2"
	schemaEffect                 = "Effect.1"
	schemaLinearTimeWarp         = "LinearTimeWarp.1"
	schemaFreezeFrame            = "FreezeFrame.1"
	schemaExternalReference      = "ExternalReference.1"
	schemaGeneratorReference     = "GeneratorReference.1"
	schemaImageSequenceReference = "ImageSequenceReference.1"
	schemaMissingReference       = "MissingReference.1"
	schemaRationalTime           = "RationalTime.1"
	schemaTimeRange              = "TimeRange.1"
)

type timeDoc struct {
	Schema string  `json:"OTIO_SCHEMA"`
	Rate   float64 `json:"rate"`
	Value  float64 `json:"value"`
}

type rangeDoc struct {
	Schema    string  `json:"OTIO_SCHEMA"`
	Duration  timeDoc `json:"duration"`
	StartTime timeDoc `json:"start_time"`
}

type markerDoc struct {
	Schema      string            `json:"OTIO_SCHEMA"`
	Name        string            `json:"name"`
	Color       string            `json:"color"`
	MarkedRange rangeDoc          `json:"marked_range"`
	Comment     string            `json:"comment,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type effectDoc struct {
	Schema     string            `json:"OTIO_SCHEMA"`
	Name       string            `json:"name"`
	EffectName string            `json:"effect_name"`
	TimeScalar *float64          `json:"time_scalar,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type mediaRefDoc struct {
	Schema         string            `json:"OTIO_SCHEMA"`
	Name           string            `json:"name"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	AvailableRange *rangeDoc         `json:"available_range,omitempty"`

	TargetURL string `json:"target_url,omitempty"`

	GeneratorKind string `json:"generator_kind,omitempty"`

	TargetURLBase      string  `json:"target_url_base,omitempty"`
	NamePrefix         string  `json:"name_prefix,omitempty"`
	NameSuffix         string  `json:"name_suffix,omitempty"`
	StartFrame         int     `json:"start_frame,omitempty"`
	FrameStep          int     `json:"frame_step,omitempty"`
	Rate               float64 `json:"rate,omitempty"`
	FrameZeroPadding   int     `json:"frame_zero_padding,omitempty"`
	MissingFramePolicy string  `json:"missing_frame_policy,omitempty"`
}

// nodeDoc is the union of every composable's serialized fields; the schema
// tag selects which ones are meaningful.
type nodeDoc struct {
	Schema   string            `json:"OTIO_SCHEMA"`
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata,omitempty"`

	Children []json.RawMessage `json:"children,omitempty"`
	Kind     string            `json:"kind,omitempty"`

	SourceRange     *rangeDoc              `json:"source_range,omitempty"`
	MediaReferences map[string]mediaRefDoc `json:"media_references,omitempty"`
	ActiveMediaKey  string                 `json:"active_media_reference_key,omitempty"`
	Markers         []markerDoc            `json:"markers,omitempty"`
	Effects         []effectDoc            `json:"effects,omitempty"`

	Duration *timeDoc `json:"duration,omitempty"`

	TransitionType string   `json:"transition_type,omitempty"`
	InOffset       *timeDoc `json:"in_offset,omitempty"`
	OutOffset      *timeDoc `json:"out_offset,omitempty"`
}

type timelineDoc struct {
	Schema      string            `json:"OTIO_SCHEMA"`
	Name        string            `json:"name"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	GlobalStart *timeDoc          `json:"global_start_time,omitempty"`
	Tracks      json.RawMessage   `json:"tracks"`
}

func encodeTime(t RationalTime) timeDoc {
	return timeDoc{Schema: schemaRationalTime, Rate: t.Rate, Value: t.Value}
}

func encodeRange(r TimeRange) rangeDoc {
	return rangeDoc{
		Schema:    schemaTimeRange,
		Duration:  encodeTime(r.Duration),
		StartTime: encodeTime(r.StartTime),
	}
}

func decodeTime(d timeDoc) (RationalTime, error) {
	return NewRationalTime(d.Value, d.Rate)
}

func decodeRange(d rangeDoc) (TimeRange, error) {
	start, err := decodeTime(d.StartTime)
	if err != nil {
		return TimeRange{}, err
	}
	dur, err := decodeTime(d.Duration)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{StartTime: start, Duration: dur}, nil
}

func encodeMarkers(markers []*Marker) []markerDoc {
	if len(markers) == 0 {
		return nil
	}
	docs := make([]markerDoc, len(markers))
	for i, m := range markers {
		docs[i] = markerDoc{
			Schema:      schemaMarker,
			Name:        m.name,
			Color:       m.color,
			MarkedRange: encodeRange(m.markedRange),
			Comment:     m.comment,
			Metadata:    m.metadata,
		}
	}
	return docs
}

func decodeMarkers(docs []markerDoc) ([]*Marker, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	markers := make([]*Marker, len(docs))
	for i, d := range docs {
		r, err := decodeRange(d.MarkedRange)
		if err != nil {
			return nil, err
		}
		m, err := NewMarker(d.Name, r, d.Color)
		if err != nil {
			return nil, err
		}
		m.comment = d.Comment
		m.metadata = d.Metadata
		markers[i] = m
	}
	return markers, nil
}

func encodeEffects(effects []Effect) []effectDoc {
	if len(effects) == 0 {
		return nil
	}
	docs := make([]effectDoc, len(effects))
	for i, e := range effects {
		doc := effectDoc{
			Schema:     e.schemaName(),
			Name:       e.Name(),
			EffectName: e.EffectName(),
		}
		switch v := e.(type) {
		case *FreezeFrame:
			scalar := v.timeScalar
			doc.TimeScalar = &scalar
			doc.Metadata = v.metadata
		case *LinearTimeWarp:
			scalar := v.timeScalar
			doc.TimeScalar = &scalar
			doc.Metadata = v.metadata
		case *BasicEffect:
			doc.Metadata = v.metadata
		}
		docs[i] = doc
	}
	return docs
}

func decodeEffects(docs []effectDoc) ([]Effect, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	effects := make([]Effect, len(docs))
	for i, d := range docs {
		switch schemaBase(d.Schema) {
		case "FreezeFrame":
			e := NewFreezeFrame(d.Name)
			e.metadata = d.Metadata
			effects[i] = e
		case "LinearTimeWarp":
			scalar := 1.0
			if d.TimeScalar != nil {
				scalar = *d.TimeScalar
			}
			e := NewLinearTimeWarp(d.Name, scalar)
			e.effectName = d.EffectName
			e.metadata = d.Metadata
			effects[i] = e
		case "Effect":
			e := NewEffect(d.Name, d.EffectName)
			e.metadata = d.Metadata
			effects[i] = e
		default:
			return nil, fmt.Errorf("%w: unknown effect schema %q", ErrInvalidDocument, d.Schema)
		}
	}
	return effects, nil
}

func encodeMediaRef(ref MediaReference) mediaRefDoc {
	doc := mediaRefDoc{Schema: ref.schemaName(), Name: ref.Name()}
	if r, ok := ref.AvailableRange(); ok {
		rd := encodeRange(r)
		doc.AvailableRange = &rd
	}
	switch v := ref.(type) {
	case *ExternalReference:
		doc.Metadata = v.metadata
		doc.TargetURL = v.targetURL
	case *GeneratorReference:
		doc.Metadata = v.metadata
		doc.GeneratorKind = v.generatorKind
	case *ImageSequenceReference:
		doc.Metadata = v.metadata
		doc.TargetURLBase = v.targetURLBase
		doc.NamePrefix = v.namePrefix
		doc.NameSuffix = v.nameSuffix
		doc.StartFrame = v.startFrame
		doc.FrameStep = v.frameStep
		doc.Rate = v.rate
		doc.FrameZeroPadding = v.frameZeroPadding
		doc.MissingFramePolicy = v.missingFramePolicy.String()
	case *MissingReference:
		doc.Metadata = v.metadata
	}
	return doc
}

func decodeMediaRef(doc mediaRefDoc) (MediaReference, error) {
	var ref MediaReference
	switch schemaBase(doc.Schema) {
	case "ExternalReference":
		r := NewExternalReference(doc.TargetURL)
		r.name = doc.Name
		r.metadata = doc.Metadata
		ref = r
	case "GeneratorReference":
		r := NewGeneratorReference(doc.Name, doc.GeneratorKind)
		r.metadata = doc.Metadata
		ref = r
	case "ImageSequenceReference":
		rate := doc.Rate
		if rate == 0 {
			rate = 1
		}
		r, err := NewImageSequenceReference(doc.TargetURLBase, doc.NamePrefix, doc.NameSuffix, doc.StartFrame, doc.FrameStep, rate, doc.FrameZeroPadding)
		if err != nil {
			return nil, err
		}
		r.name = doc.Name
		r.metadata = doc.Metadata
		switch doc.MissingFramePolicy {
		case "hold":
			r.missingFramePolicy = MissingFrameHold
		case "black":
			r.missingFramePolicy = MissingFrameBlack
		}
		ref = r
	case "MissingReference":
		r := NewMissingReference(doc.Name)
		r.metadata = doc.Metadata
		ref = r
	default:
		return nil, fmt.Errorf("%w: unknown media reference schema %q", ErrInvalidDocument, doc.Schema)
	}
	if doc.AvailableRange != nil {
		r, err := decodeRange(*doc.AvailableRange)
		if err != nil {
			return nil, err
		}
		if err := ref.SetAvailableRange(r); err != nil {
			return nil, err
		}
	}
	return ref, nil
}

func encodeComposable(c Composable) (json.RawMessage, error) {
	var doc nodeDoc
	switch v := c.(type) {
	case *Clip:
		doc.Schema = schemaClip
		doc.Name = v.name
		doc.Metadata = v.metadata
		sr := encodeRange(v.sourceRange)
		doc.SourceRange = &sr
		if len(v.references) > 0 {
			doc.MediaReferences = make(map[string]mediaRefDoc, len(v.references))
			for key, ref := range v.references {
				doc.MediaReferences[key] = encodeMediaRef(ref)
			}
			doc.ActiveMediaKey = v.activeKey
		}
		doc.Markers = encodeMarkers(v.markers)
		doc.Effects = encodeEffects(v.effects)
	case *Gap:
		doc.Schema = schemaGap
		doc.Name = v.name
		doc.Metadata = v.metadata
		d := encodeTime(v.duration)
		doc.Duration = &d
	case *Transition:
		doc.Schema = schemaTransition
		doc.Name = v.name
		doc.Metadata = v.metadata
		doc.TransitionType = v.transitionType
		in := encodeTime(v.inOffset)
		out := encodeTime(v.outOffset)
		doc.InOffset = &in
		doc.OutOffset = &out
	case *Track:
		doc.Schema = schemaTrack
		doc.Name = v.name
		doc.Metadata = v.metadata
		doc.Kind = string(v.kind)
		doc.Markers = encodeMarkers(v.markers)
		kids, err := encodeChildren(v.kids)
		if err != nil {
			return nil, err
		}
		doc.Children = kids
	case *Stack:
		doc.Schema = schemaStack
		doc.Name = v.name
		doc.Metadata = v.metadata
		doc.Markers = encodeMarkers(v.markers)
		kids, err := encodeChildren(v.kids)
		if err != nil {
			return nil, err
		}
		doc.Children = kids
	default:
		return nil, fmt.Errorf("%w: unserializable child %T", ErrInvalidDocument, c)
	}
	return json.Marshal(doc)
}

func encodeChildren(kids []Composable) ([]json.RawMessage, error) {
	if len(kids) == 0 {
		return nil, nil
	}
	out := make([]json.RawMessage, len(kids))
	for i, k := range kids {
		raw, err := encodeComposable(k)
		if err != nil {
			return nil, err
		}
		out[i] = raw
	}
	return out, nil
}

// schemaBase strips the version suffix from a schema tag.
func schemaBase(schema string) string {
	base, _, _ := strings.Cut(schema, ".")
	return base
}

func decodeComposable(raw json.RawMessage) (Composable, error) {
	var doc nodeDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	switch schemaBase(doc.Schema) {
	case "Clip":
		if doc.SourceRange == nil {
			return nil, fmt.Errorf("%w: clip %q has no source_range", ErrInvalidDocument, doc.Name)
		}
		sr, err := decodeRange(*doc.SourceRange)
		if err != nil {
			return nil, err
		}
		clip, err := NewClip(doc.Name, sr)
		if err != nil {
			return nil, err
		}
		clip.metadata = doc.Metadata
		for key, refDoc := range doc.MediaReferences {
			ref, err := decodeMediaRef(refDoc)
			if err != nil {
				return nil, err
			}
			clip.AddMediaReference(key, ref)
		}
		if doc.ActiveMediaKey != "" {
			if err := clip.SetActiveMediaKey(doc.ActiveMediaKey); err != nil {
				return nil, err
			}
		}
		if clip.markers, err = decodeMarkers(doc.Markers); err != nil {
			return nil, err
		}
		if clip.effects, err = decodeEffects(doc.Effects); err != nil {
			return nil, err
		}
		return clip, nil
	case "Gap":
		if doc.Duration == nil {
			return nil, fmt.Errorf("%w: gap %q has no duration", ErrInvalidDocument, doc.Name)
		}
		d, err := decodeTime(*doc.Duration)
		if err != nil {
			return nil, err
		}
		gap, err := NewGap(d)
		if err != nil {
			return nil, err
		}
		gap.name = doc.Name
		gap.metadata = doc.Metadata
		return gap, nil
	case "Transition":
		if doc.InOffset == nil || doc.OutOffset == nil {
			return nil, fmt.Errorf("%w: transition %q is missing offsets", ErrInvalidDocument, doc.Name)
		}
		in, err := decodeTime(*doc.InOffset)
		if err != nil {
			return nil, err
		}
		out, err := decodeTime(*doc.OutOffset)
		if err != nil {
			return nil, err
		}
		tr, err := NewTransition(doc.Name, doc.TransitionType, in, out)
		if err != nil {
			return nil, err
		}
		tr.metadata = doc.Metadata
		return tr, nil
	case "Track":
		track := NewTrack(doc.Name, TrackKind(doc.Kind))
		track.metadata = doc.Metadata
		var err error
		if track.markers, err = decodeMarkers(doc.Markers); err != nil {
			return nil, err
		}
		if err := decodeChildrenInto(track, doc.Children); err != nil {
			return nil, err
		}
		return track, nil
	case "Stack":
		stack := NewStack(doc.Name)
		stack.metadata = doc.Metadata
		var err error
		if stack.markers, err = decodeMarkers(doc.Markers); err != nil {
			return nil, err
		}
		if err := decodeChildrenInto(stack, doc.Children); err != nil {
			return nil, err
		}
		return stack, nil
	}
	return nil, fmt.Errorf("%w: unknown schema %q", ErrInvalidDocument, doc.Schema)
}

func decodeChildrenInto(parent Composition, kids []json.RawMessage) error {
	for _, raw := range kids {
		child, err := decodeComposable(raw)
		if err != nil {
			return err
		}
		if err := parent.Append(child); err != nil {
			return err
		}
	}
	return nil
}

// ToJSONString serializes the timeline to an indented structural document.
// Entity types, child order, and all range and offset fields round-trip
// losslessly.
func (tl *Timeline) ToJSONString() (string, error) {
	tracks, err := encodeComposable(tl.tracks)
	if err != nil {
		return "", err
	}
	doc := timelineDoc{
		Schema:   schemaTimeline,
		Name:     tl.name,
		Metadata: tl.metadata,
		Tracks:   tracks,
	}
	if tl.hasGlobalStart {
		gs := encodeTime(tl.globalStart)
		doc.GlobalStart = &gs
	}
	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// FromJSONString reconstructs a timeline from a document produced by
// ToJSONString.
func FromJSONString(data string) (*Timeline, error) {
	var doc timelineDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if schemaBase(doc.Schema) != "Timeline" {
		return nil, fmt.Errorf("%w: root schema %q is not a timeline", ErrInvalidDocument, doc.Schema)
	}
	tl := NewTimeline(doc.Name)
	tl.metadata = doc.Metadata
	if doc.GlobalStart != nil {
		t, err := decodeTime(*doc.GlobalStart)
		if err != nil {
			return nil, err
		}
		tl.globalStart = t
		tl.hasGlobalStart = true
	}
	if len(doc.Tracks) > 0 {
		root, err := decodeComposable(doc.Tracks)
		if err != nil {
			return nil, err
		}
		stack, ok := root.(*Stack)
		if !ok {
			return nil, fmt.Errorf("%w: tracks root is not a stack", ErrInvalidDocument)
		}
		tl.tracks = stack
	}
	return tl, nil
}

// WriteToFile serializes the timeline to a file.
func (tl *Timeline) WriteToFile(path string) error {
	data, err := tl.ToJSONString()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(data), 0o644)
}

// ReadFromFile reconstructs a timeline from a file written by WriteToFile.
func ReadFromFile(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromJSONString(string(data))
}
