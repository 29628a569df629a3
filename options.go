package chromakey

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Hue-cube keying over a red stand-in background
//	p, err := chromakey.NewPipeline()
//
//	// Chroma-plane distance keying of a blue screen
//	dk := chromakey.NewDistanceKeyer()
//	dk.Metric = chromakey.MetricChroma
//	params := chromakey.DefaultParams()
//	params.TargetColor = chromakey.Blue
//	p, err := chromakey.NewPipeline(chromakey.WithCustomKeyer(dk), chromakey.WithParams(params))
type Option func(*pipelineOptions)

type pipelineOptions struct {
	kind     KeyerKind
	keyer    Keyer
	params   Params
	loader   Loader
	fallback Color
	fit      FitOptions
	disabled bool
}

func defaultOptions() pipelineOptions {
	return pipelineOptions{
		kind:     KeyerCube,
		params:   DefaultParams(),
		loader:   FileLoader{},
		fallback: Red,
	}
}

// WithKeyer selects the keying algorithm. The default is KeyerCube.
func WithKeyer(kind KeyerKind) Option {
	return func(o *pipelineOptions) {
		o.kind = kind
		o.keyer = nil
	}
}

// WithCustomKeyer installs a preconfigured keyer, for example a
// DistanceKeyer with a non-default Metric. It overrides WithKeyer.
func WithCustomKeyer(k Keyer) Option {
	return func(o *pipelineOptions) {
		o.keyer = k
	}
}

// WithParams sets the initial parameters. The default is DefaultParams.
func WithParams(p Params) Option {
	return func(o *pipelineOptions) {
		o.params = p
	}
}

// WithLoader sets how BackgroundPath is turned into a frame.
// The default is FileLoader.
func WithLoader(l Loader) Option {
	return func(o *pipelineOptions) {
		if l != nil {
			o.loader = l
		}
	}
}

// WithFallbackColor sets the solid background used while no background
// frame is available. The default is Red.
func WithFallbackColor(c Color) Option {
	return func(o *pipelineOptions) {
		o.fallback = c
	}
}

// WithFitOptions sets the background resampling options.
func WithFitOptions(f FitOptions) Option {
	return func(o *pipelineOptions) {
		o.fit = f
	}
}

// WithDisabled creates the pipeline with keying switched off; see
// Pipeline.Disable.
func WithDisabled() Option {
	return func(o *pipelineOptions) {
		o.disabled = true
	}
}
