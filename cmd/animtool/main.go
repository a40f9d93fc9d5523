package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/animation"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/config"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/preview"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/snapshot"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/speed"
	"github.com/Blackmvmba88/VIdeoEditor-sub001/internal/system"
)

const buildVersion = "1.0"

func main() {
	projectPtr := flag.String("project", "", "Path to a project snapshot YAML")
	objectPtr := flag.String("object", "", "Object identifier to inspect")
	propertyPtr := flag.String("property", "", "Property name (empty: all properties of the object)")
	atPtr := flag.Float64("at", -1, "Evaluate at this time in seconds")
	durationPtr := flag.Float64("duration", 10, "Source duration in seconds for sampling/plots")
	fpsPtr := flag.Int("fps", 30, "Sampling rate in frames per second")
	workersPtr := flag.Int("workers", 0, "Sampling goroutines (0: size for this machine)")
	samplePtr := flag.String("sample", "", "Write a CSV of sampled values to this path (- for stdout)")
	plotPtr := flag.String("plot", "", "Write a PNG curve plot to this path")
	widthPtr := flag.Int("width", 960, "Plot width")
	heightPtr := flag.Int("height", 320, "Plot height")
	statsPtr := flag.Bool("stats", false, "Print a performance report")

	flag.Parse()

	cfg := &config.Config{
		ProjectPath:  *projectPtr,
		Object:       *objectPtr,
		Property:     *propertyPtr,
		At:           *atPtr,
		Duration:     *durationPtr,
		FPS:          *fpsPtr,
		Workers:      *workersPtr,
		SamplePath:   *samplePtr,
		PlotPath:     *plotPtr,
		PlotWidth:    *widthPtr,
		PlotHeight:   *heightPtr,
		ShowStats:    *statsPtr,
		BuildVersion: buildVersion,
	}

	if cfg.ProjectPath == "" {
		log.Fatal("[-] No project given. Use -project <snapshot.yaml>")
	}

	snap, err := snapshot.Read(cfg.ProjectPath)
	if err != nil {
		log.Fatalf("[-] Failed to load project: %v", err)
	}

	tracks := animation.NewStore()
	speeds := speed.NewStore()
	snap.Apply(tracks, speeds)
	fmt.Printf("[*] Project: %s | Tracks: %d | Speed profiles: %d\n",
		cfg.ProjectPath, len(snap.Tracks), len(snap.Profiles))

	startTime := time.Now()

	if cfg.At >= 0 {
		printEvaluation(cfg, tracks, speeds)
	}

	if cfg.SamplePath != "" {
		if err := writeSampleCSV(cfg, tracks, speeds); err != nil {
			log.Fatalf("[-] Sampling failed: %v", err)
		}
	}

	if cfg.PlotPath != "" {
		if err := writePlot(cfg, tracks); err != nil {
			log.Fatalf("[-] Plotting failed: %v", err)
		}
		fmt.Printf("[+++] Plot written: %s\n", cfg.PlotPath)
	}

	if cfg.ShowStats {
		fmt.Printf(
			"--- [PERFORMANCE REPORT] ---\n"+
				"Build: %s\n"+
				"Total Time: %.3fs\n"+
				"Workers: %d\n"+
				"%s\n"+
				"----------------------------\n",
			cfg.BuildVersion, time.Since(startTime).Seconds(), sampleWorkers(cfg), system.MemoryReport())
	}
}

func sampleWorkers(cfg *config.Config) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return system.SampleWorkers()
}

func printEvaluation(cfg *config.Config, tracks *animation.Store, speeds *speed.Store) {
	if cfg.Object == "" {
		log.Fatal("[-] -at requires -object")
	}

	if cfg.Property != "" {
		if v, ok := tracks.ValueAt(cfg.Object, cfg.Property, cfg.At); ok {
			fmt.Printf("[*] %s.%s @ %.3fs = %.6f\n", cfg.Object, cfg.Property, cfg.At, v)
		} else {
			fmt.Printf("[*] %s.%s @ %.3fs = no value\n", cfg.Object, cfg.Property, cfg.At)
		}
	} else {
		values := tracks.ValuesAt(cfg.Object, cfg.At)
		props := make([]string, 0, len(values))
		for p := range values {
			props = append(props, p)
		}
		sort.Strings(props)
		for _, p := range props {
			fmt.Printf("[*] %s.%s @ %.3fs = %.6f\n", cfg.Object, p, cfg.At, values[p])
		}
	}

	fmt.Printf("[*] %s speed @ %.3fs = %.4fx\n", cfg.Object, cfg.At, speeds.SpeedAt(cfg.Object, cfg.At))
	fmt.Printf("[*] %s remapped duration for %.2fs source = %.4fs\n",
		cfg.Object, cfg.Duration, speeds.RemappedDuration(cfg.Object, cfg.Duration))
}

func writeSampleCSV(cfg *config.Config, tracks *animation.Store, speeds *speed.Store) error {
	if cfg.Object == "" {
		return fmt.Errorf("-sample requires -object")
	}

	sampler := preview.NewSampler(tracks, speeds, cfg.FPS)
	if cfg.Workers > 0 {
		sampler.Workers = cfg.Workers
	}

	frames, err := sampler.Sample(context.Background(), []string{cfg.Object}, cfg.Duration)
	if err != nil {
		return err
	}

	props := tracks.Properties(cfg.Object)

	var b strings.Builder
	b.WriteString("time")
	for _, p := range props {
		b.WriteString("," + p)
	}
	b.WriteString(",speed\n")

	for _, f := range frames {
		fmt.Fprintf(&b, "%.4f", f.Time)
		values := f.Values[cfg.Object]
		for _, p := range props {
			if v, ok := values[p]; ok {
				fmt.Fprintf(&b, ",%.6f", v)
			} else {
				b.WriteString(",")
			}
		}
		fmt.Fprintf(&b, ",%.4f\n", f.Speeds[cfg.Object])
	}

	if cfg.SamplePath == "-" {
		fmt.Print(b.String())
		return nil
	}
	if err := os.WriteFile(cfg.SamplePath, []byte(b.String()), 0644); err != nil {
		return err
	}
	fmt.Printf("[+++] Samples written: %s (%d frames)\n", cfg.SamplePath, len(frames))
	return nil
}

func writePlot(cfg *config.Config, tracks *animation.Store) error {
	if cfg.Object == "" {
		return fmt.Errorf("-plot requires -object")
	}

	img, err := plotImage(cfg, tracks)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.PlotPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func plotImage(cfg *config.Config, tracks *animation.Store) (*image.RGBA, error) {
	if cfg.Property != "" {
		return preview.PlotTrack(tracks, cfg.Object, cfg.Property, cfg.Duration, cfg.PlotWidth, cfg.PlotHeight)
	}
	return preview.PlotObject(tracks, cfg.Object, cfg.Duration, cfg.PlotWidth, cfg.PlotHeight)
}
