// Command chromakey keys a still green-screen image over a background.
//
//	chromakey -fg subject.jpg -bg beach.webp -o out.png
//	chromakey -fg subject.png -params studio.yaml -keyer distance -metric chroma
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/chromakey"
)

func main() {
	var (
		fgPath     = flag.String("fg", "", "foreground image (required)")
		bgPath     = flag.String("bg", "", "background image; overrides backgroundPath in -params")
		paramsPath = flag.String("params", "", "YAML or JSON parameter file")
		keyerName  = flag.String("keyer", "cube", "keyer: cube, distance or passthrough")
		metricName = flag.String("metric", "rgb", "distance keyer metric: rgb or chroma")
		smooth     = flag.Bool("smoothstep", false, "distance keyer: use a smoothstep ramp")
		bicubic    = flag.Bool("bicubic", false, "resample the background with bicubic filtering")
		output     = flag.String("o", "keyed.png", "output PNG file")
		verbose    = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *fgPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	chromakey.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	keyer, err := newKeyer(*keyerName, *metricName, *smooth)
	if err != nil {
		log.Fatal(err)
	}

	fit := chromakey.FitOptions{}
	if *bicubic {
		fit.Interpolation = chromakey.InterpBicubic
	}

	p, err := chromakey.NewPipeline(chromakey.WithCustomKeyer(keyer), chromakey.WithFitOptions(fit))
	if err != nil {
		log.Fatal(err)
	}

	if *paramsPath != "" {
		fields, err := loadParams(*paramsPath)
		if err != nil {
			log.Fatalf("Failed to read params: %v", err)
		}
		p.UpdateFields(fields)
	}
	if *bgPath != "" {
		p.Update(chromakey.Update{BackgroundPath: chromakey.Some(*bgPath)})
	}

	fg, err := chromakey.FileLoader{}.Load(*fgPath)
	if err != nil {
		log.Fatalf("Failed to load foreground: %v", err)
	}

	out, err := p.Process(fg)
	if err != nil {
		log.Fatalf("Failed to key: %v", err)
	}

	if err := savePNG(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Keyed %s with %v keyer to %s (%v)\n", *fgPath, keyer.Kind(), *output, out.Size())
}

func newKeyer(name, metric string, smooth bool) (chromakey.Keyer, error) {
	kind, err := chromakey.ParseKeyerKind(name)
	if err != nil {
		return nil, err
	}
	if kind != chromakey.KeyerDistance {
		return chromakey.NewKeyer(kind)
	}

	dk := chromakey.NewDistanceKeyer()
	switch metric {
	case "rgb":
	case "chroma":
		dk.Metric = chromakey.MetricChroma
	default:
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
	if smooth {
		dk.Ramp = chromakey.RampSmoothstep
	}
	return dk, nil
}

func savePNG(path string, f *chromakey.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, f.ToNRGBA()); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
