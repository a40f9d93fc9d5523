package preview

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/animation"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/speed"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/system"
)

// Frame holds the evaluated state of every requested object at one
// display instant.
type Frame struct {
	Time   float64
	Values map[string]map[string]float64 // object -> property -> value
	Speeds map[string]float64            // object -> instantaneous speed
}

// Sampler evaluates both stores over a time range, one frame per 1/FPS,
// the way a preview loop would. Objects are sampled in parallel since
// each one is independent.
type Sampler struct {
	Tracks  *animation.Store
	Speeds  *speed.Store
	FPS     int
	Workers int
}

// NewSampler creates a Sampler with a worker count sized for the machine.
func NewSampler(tracks *animation.Store, speeds *speed.Store, fps int) *Sampler {
	if fps <= 0 {
		fps = 30
	}
	return &Sampler{
		Tracks:  tracks,
		Speeds:  speeds,
		FPS:     fps,
		Workers: system.SampleWorkers(),
	}
}

type objectSeries struct {
	values []map[string]float64
	speeds []float64
}

// Sample evaluates the given objects from t=0 to duration inclusive.
// The stores stay readable by other goroutines while sampling runs.
func (s *Sampler) Sample(ctx context.Context, objects []string, duration float64) ([]Frame, error) {
	if duration <= 0 || len(objects) == 0 {
		return nil, nil
	}

	step := 1.0 / float64(s.FPS)
	frameCount := int(duration*float64(s.FPS)) + 1

	workers := s.Workers
	if workers < 1 {
		workers = 1
	}

	series := make([]objectSeries, len(objects))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, object := range objects {
		i, object := i, object
		g.Go(func() error {
			out := objectSeries{
				values: make([]map[string]float64, frameCount),
				speeds: make([]float64, frameCount),
			}
			for f := 0; f < frameCount; f++ {
				if f%256 == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				t := float64(f) * step
				out.values[f] = s.Tracks.ValuesAt(object, t)
				out.speeds[f] = s.Speeds.SpeedAt(object, t)
			}
			series[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	frames := make([]Frame, frameCount)
	for f := range frames {
		frames[f] = Frame{
			Time:   float64(f) * step,
			Values: make(map[string]map[string]float64, len(objects)),
			Speeds: make(map[string]float64, len(objects)),
		}
		for i, object := range objects {
			if len(series[i].values[f]) > 0 {
				frames[f].Values[object] = series[i].values[f]
			}
			frames[f].Speeds[object] = series[i].speeds[f]
		}
	}

	return frames, nil
}
