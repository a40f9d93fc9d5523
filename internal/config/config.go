package config

// Config carries the CLI parameters for one animtool invocation.
type Config struct {
	ProjectPath  string
	Object       string
	Property     string
	At           float64
	Duration     float64
	FPS          int
	Workers      int
	SamplePath   string
	PlotPath     string
	PlotWidth    int
	PlotHeight   int
	ShowStats    bool
	BuildVersion string
}
