package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/dfrene/spectral-tracer/internal/logging"
	"github.com/dfrene/spectral-tracer/pkg/output"
	"github.com/dfrene/spectral-tracer/pkg/render"
	"github.com/dfrene/spectral-tracer/pkg/scene"
)

// Config holds all the configuration for the raytracer.
type Config struct {
	SceneType  string
	Width      int
	Height     int
	Samples    int
	MaxDepth   int
	NumWorkers int
	Format     string
	Help       bool
	CPUProfile string
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Printf("Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	logger, err := logging.NewDevelopment()
	if err != nil {
		fmt.Printf("Could not create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Infof("starting spectral path tracer")
	startTime := time.Now()

	sceneObj, err := createScene(config.SceneType, float64(config.Width)/float64(config.Height))
	if err != nil {
		logger.Warnf("error creating scene: %v", err)
		os.Exit(1)
	}

	renderCfg := render.Config{
		Width:    config.Width,
		Height:   config.Height,
		Samples:  config.Samples,
		MaxDepth: config.MaxDepth,
		Workers:  config.NumWorkers,
		Seed:     startTime.UnixNano(),
	}

	buf := render.Render(render.Scene{
		World:      sceneObj.World,
		Attractors: sceneObj.Attractors,
		Camera:     sceneObj.Camera,
	}, renderCfg, logger)

	outputDir := createOutputDir(config.SceneType)
	filename := outputFilename(outputDir, config.Format)

	if err := writeOutput(buf, filename, config.Format); err != nil {
		logger.Warnf("error writing output: %v", err)
		os.Exit(1)
	}

	logger.Infof("render complete in %s, saved to %s", time.Since(startTime), filename)
}

// parseFlags parses the command-line flags into a Config.
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "seven-sphere", "Scene to render")
	flag.IntVar(&config.Width, "width", 800, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 450, "Image height in pixels")
	flag.IntVar(&config.Samples, "samples", 64, "Samples per pixel")
	flag.IntVar(&config.MaxDepth, "max-depth", 50, "Maximum path depth")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Format, "format", "png", "Output format: 'png' or 'exr'")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.Parse()
	return config
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("Spectral Path Tracer")
	fmt.Println("Usage: spectral-tracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  seven-sphere - Row of spheres covering every material, lit by blackbody spheres")
	fmt.Println("  two-sphere   - Minimal two-sphere direct-lighting scene")
	fmt.Println("  cornell-box  - Classic Cornell box with a rotated glass block and a metal sphere")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  spectral-tracer --scene=two-sphere --samples=256")
	fmt.Println("  spectral-tracer --scene=seven-sphere --width=1280 --height=720 --format=exr")
	fmt.Println()
	fmt.Println("Output is saved to output/<scene>/<NNN>.<format>")
}

// createScene builds the requested built-in scene.
func createScene(sceneType string, aspectRatio float64) (scene.Scene, error) {
	switch sceneType {
	case "seven-sphere":
		return scene.NewSevenSphereScene(aspectRatio), nil
	case "two-sphere":
		return scene.NewTwoSphereScene(aspectRatio), nil
	case "cornell-box":
		return scene.NewCornellBoxScene(aspectRatio), nil
	default:
		return scene.Scene{}, fmt.Errorf("unknown scene %q", sceneType)
	}
}

// createOutputDir creates (if needed) and returns the output directory for
// the given scene.
func createOutputDir(sceneType string) string {
	dir := filepath.Join("output", sceneType)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// outputFilename allocates the next zero-padded output filename in dir, or
// "001" if the directory has no prior renders.
func outputFilename(dir, format string) string {
	name, ok := output.NextName(dir)
	if !ok {
		name = "001"
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", name, format))
}

func writeOutput(buf *render.Buffer, filename, format string) error {
	switch format {
	case "exr":
		return output.WriteEXR(buf, filename)
	default:
		return output.WritePNG(buf, filename)
	}
}
