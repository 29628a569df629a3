package chromakey

import "fmt"

// Stats counts the expensive work a pipeline has done.
type Stats struct {
	Frames            int // frames processed
	BackgroundLoads   int // background paths handed to the Loader
	BackgroundFits    int // Fit calls on a loaded background
	CubeBuilds        int // colour-cube tables built by the current keyer
	DistanceRefreshes int // target refreshes of the current distance keyer
}

// Pipeline keys live or still frames against a background.
//
// It owns the current parameters, the selected keyer (and with it the
// colour-cube table) and a cache of the background fitted to the last
// frame size. Updates rebuild only the state their changed fields
// invalidate.
//
// A Pipeline is not safe for concurrent use: callers must serialise
// Update, SetBackground and Process on one instance. Per-pixel work
// inside Process runs in parallel.
type Pipeline struct {
	params   Params
	keyer    Keyer
	loader   Loader
	fallback Color
	fitOpts  FitOptions
	enabled  bool

	background *Frame // decoded background, nil when none is available
	fitted     *Frame // background fitted to fittedSize, nil when stale
	fittedSize Size

	frames int
	loads  int
	fits   int
}

// NewPipeline creates a pipeline. It loads the initial background, if
// any, and prepares the keyer so the first frame does not pay for the
// colour-cube build.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	keyer := o.keyer
	if keyer == nil {
		var err error
		if keyer, err = NewKeyer(o.kind); err != nil {
			return nil, fmt.Errorf("chromakey: new pipeline: %w", err)
		}
	}

	p := &Pipeline{
		params:   o.params,
		keyer:    keyer,
		loader:   o.loader,
		fallback: o.fallback,
		fitOpts:  o.fit,
		enabled:  !o.disabled,
	}
	p.loadBackground(p.params.BackgroundPath)
	p.keyer.Prepare(p.params)
	return p, nil
}

// Params returns the current parameters.
func (p *Pipeline) Params() Params {
	return p.params
}

// Keyer returns the active keyer.
func (p *Pipeline) Keyer() Keyer {
	return p.keyer
}

// SetKeyer switches to a fresh keyer of the given kind.
func (p *Pipeline) SetKeyer(kind KeyerKind) error {
	k, err := NewKeyer(kind)
	if err != nil {
		return err
	}
	k.Prepare(p.params)
	p.keyer = k
	return nil
}

// Enable switches keying on.
func (p *Pipeline) Enable() {
	p.enabled = true
}

// Disable switches keying off: Process returns copies of its input.
// Parameters and caches are kept.
func (p *Pipeline) Disable() {
	p.enabled = false
}

// Enabled reports whether keying is on.
func (p *Pipeline) Enabled() bool {
	return p.enabled
}

// Update merges u into the current parameters and rebuilds what the
// changed fields invalidate: a new background path is loaded (and
// re-fitted on the next frame), a new hue range rebuilds the colour cube,
// and a new target colour, threshold or smoothing refreshes the distance
// keyer. Mask bounds are stored only. It returns the merged parameters.
func (p *Pipeline) Update(u Update) Params {
	next := Merge(p.params, u)
	ch := Diff(p.params, next)
	p.params = next

	if ch.Background {
		p.loadBackground(next.BackgroundPath)
	}
	if ch.HueRange || ch.Distance {
		p.keyer.Prepare(next)
	}
	if ch.Mask {
		Logger().Debug("chromakey: mask bounds stored", "bounds", next.MaskBounds)
	}
	return next
}

// UpdateFields parses a configuration record with ParseUpdate and
// applies it with Update.
func (p *Pipeline) UpdateFields(fields map[string]any) Params {
	return p.Update(ParseUpdate(fields))
}

// SetBackground installs an already decoded background, bypassing the
// Loader. A nil frame reverts to the fallback colour.
func (p *Pipeline) SetBackground(bg *Frame) {
	if bg != nil && bg.Size().Empty() {
		bg = nil
	}
	p.background = bg
	p.fitted = nil
}

// Process keys fg and returns the composited frame, the same size as fg.
func (p *Pipeline) Process(fg *Frame) (*Frame, error) {
	if fg.Size().Empty() {
		return nil, fmt.Errorf("%w: cannot process %v frame", ErrEmptyFrame, fg.Size())
	}
	p.frames++
	if !p.enabled {
		return fg.Clone(), nil
	}

	return p.keyer.Apply(fg, p.fittedBackground(fg.Size()), p.params)
}

// Stats returns the work counters.
func (p *Pipeline) Stats() Stats {
	s := Stats{
		Frames:          p.frames,
		BackgroundLoads: p.loads,
		BackgroundFits:  p.fits,
	}
	switch k := p.keyer.(type) {
	case *CubeKeyer:
		s.CubeBuilds = k.Builds()
	case *DistanceKeyer:
		s.DistanceRefreshes = k.Refreshes()
	}
	return s
}

func (p *Pipeline) loadBackground(path string) {
	p.fitted = nil
	p.background = nil
	if path == "" {
		return
	}

	p.loads++
	bg, err := p.loader.Load(path)
	if err == nil && (bg == nil || bg.Size().Empty()) {
		err = ErrEmptyFrame
	}
	if err != nil {
		Logger().Warn("chromakey: background unavailable, using fallback colour",
			"path", path, "err", err)
		return
	}
	p.background = bg
}

// fittedBackground returns the background fitted to size, fitting it at
// most once per background and size.
func (p *Pipeline) fittedBackground(size Size) *Frame {
	if p.fitted != nil && p.fittedSize == size {
		return p.fitted
	}

	var fitted *Frame
	if p.background != nil {
		f, err := FitWith(p.background, size, p.fitOpts)
		if err != nil {
			Logger().Warn("chromakey: background fit failed, using fallback colour", "err", err)
		} else {
			p.fits++
			fitted = f
			Logger().Debug("chromakey: fitted background",
				"from", p.background.Size(), "to", size)
		}
	}
	if fitted == nil {
		fitted = SolidFrame(size, p.fallback.Opaque())
	}

	p.fitted = fitted
	p.fittedSize = size
	return fitted
}
