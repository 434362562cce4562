// Command acsingest converts Microsoft Agent 2.0 binary containers
// into a portable sprite atlas plus JSON manifest, and can play back
// the result from the command line for inspection.
//
// Usage:
//
//	acsingest ingest -in clippy.acs -out build/clippy [-character NAME] [-fallback-duration 0.0833] [-config ingest.yaml]
//	acsingest batch -out build -config ingest.yaml clippy.acs cat.acs rocky.acs
//	acsingest info -in clippy.acs
//	acsingest play -manifest build/clippy/manifest.json -clip Greeting -ticks 300
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/msagent-tools/acsingest"
	"github.com/msagent-tools/acsingest/config"
	"github.com/msagent-tools/acsingest/internal/acscontainer"
	"github.com/msagent-tools/acsingest/internal/acslog"
	"github.com/msagent-tools/acsingest/manifest"
	"github.com/msagent-tools/acsingest/player"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "ingest":
		err = runIngest(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "play":
		err = runPlay(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "acsingest: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "acsingest: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  acsingest ingest -in <file.acs> -out <dir> [-character NAME] [-fallback-duration SECONDS] [-config ingest.yaml]
  acsingest batch -out <dir> [-config ingest.yaml] <file.acs>...
  acsingest info -in <file.acs>
  acsingest play -manifest <manifest.json> -clip NAME [-ticks N]

Run "acsingest <command> -h" for command-specific options.
`)
}

func runIngest(args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	in := fs.String("in", "", "input .acs file (required)")
	out := fs.String("out", "", "output directory (required)")
	character := fs.String("character", "", "override the derived character name")
	fallbackDuration := fs.Float64("fallback-duration", 0, "fallback frame duration in seconds (0=use the 1/12s default)")
	configPath := fs.String("config", "", "optional ingest.yaml overrides file")
	verbose := fs.Bool("v", false, "enable debug-level logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("ingest: -in and -out are required")
	}

	opts := acsingest.Options{
		CharacterName:         *character,
		FallbackFrameDuration: *fallbackDuration,
		OutputDirectory:       *out,
	}
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		if opts.CharacterName == "" {
			opts.CharacterName = cfg.CharacterName
		}
		if opts.FallbackFrameDuration == 0 {
			opts.FallbackFrameDuration = cfg.FallbackFrameDuration
		}
		if cfg.OutputDirectory != "" {
			opts.OutputDirectory = cfg.OutputDirectory
		}
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger, err := acslog.New(level)
	if err != nil {
		return err
	}
	defer logger.Sync()
	opts.Logger = logger

	blob, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("ingest: read %s: %w", *in, err)
	}

	result, err := acsingest.Ingest(blob, *in, opts)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames, %d clips) and %s\n",
		result.ManifestPath, len(result.Manifest.Frames), len(result.Manifest.Animations), result.AtlasPath)
	return nil
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	out := fs.String("out", "", "output root directory (required); each input gets its own subdirectory")
	configPath := fs.String("config", "", "optional ingest.yaml overrides file, applied to every input")
	verbose := fs.Bool("v", false, "enable debug-level logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("batch: -out is required")
	}
	inputs := fs.Args()
	if len(inputs) == 0 {
		return fmt.Errorf("batch: at least one input .acs file is required")
	}

	var opts acsingest.Options
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		opts.CharacterName = cfg.CharacterName
		opts.FallbackFrameDuration = cfg.FallbackFrameDuration
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger, err := acslog.New(level)
	if err != nil {
		return err
	}
	defer logger.Sync()
	opts.Logger = logger

	results := acsingest.BatchIngest(inputs, *out, opts)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "acsingest: %s: %v\n", r.InputPath, r.Err)
			continue
		}
		fmt.Printf("%s -> %s (%d frames)\n", r.InputPath, r.Result.ManifestPath, len(r.Result.Manifest.Frames))
	}
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d inputs failed", failed, len(results))
	}
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	in := fs.String("in", "", "input .acs file (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("info: -in is required")
	}

	blob, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("info: read %s: %w", *in, err)
	}
	parsed, err := acscontainer.Parse(blob)
	if err != nil {
		return err
	}

	fmt.Printf("canvas: %dx%d\n", parsed.CanvasSize.Width, parsed.CanvasSize.Height)
	fmt.Printf("style flags: %#x (tts=%v balloon=%v icon=%v)\n",
		parsed.Info.StyleFlags, parsed.Info.HasTTS, parsed.Info.HasBalloon, parsed.Info.HasIcon)
	fmt.Printf("palette entries: %d\n", parsed.Info.PaletteCount)
	fmt.Printf("images: %d\n", len(parsed.Images))
	fmt.Printf("animations: %d\n", len(parsed.Animations))
	for _, a := range parsed.Animations {
		fmt.Printf("  %-20s %d frame(s)\n", a.Name, len(a.Frames))
	}
	return nil
}

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	manifestPath := fs.String("manifest", "", "path to manifest.json (required)")
	clip := fs.String("clip", "", "clip name to play (default: the manifest's first clip)")
	ticks := fs.Int("ticks", 300, "number of 10ms ticks to simulate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *manifestPath == "" {
		return fmt.Errorf("play: -manifest is required")
	}

	m, err := manifest.Load(*manifestPath)
	if err != nil {
		return err
	}

	p, err := player.New(m, *clip)
	if err != nil {
		return err
	}

	const tick = 10 * time.Millisecond
	for i := 0; i < *ticks; i++ {
		p.Update(tick)
		if i%10 == 0 {
			fmt.Printf("t=%s clip=%s frame=%d\n", time.Duration(i)*tick, p.CurrentAnimationName(), p.CurrentGlobalFrameIndex())
		}
	}
	return nil
}
