// Command wlwsnap renders the demo scene (optionally with a glTF model) headlessly and writes the last frame to a
// WebP or PNG file.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/wlwengine/wlw"
	"github.com/wlwengine/wlw/examples"
	"github.com/wlwengine/wlw/softraster"
)

func main() {

	configPath := flag.String("config", "", "Path to a .toml or .yaml config file")
	width := flag.Int("width", 0, "Snapshot width in pixels (default: config window width)")
	height := flag.Int("height", 0, "Snapshot height in pixels (default: config window height)")
	output := flag.String("output", "", "Output file; .webp or .png (default: snapshot.webp)")
	model := flag.String("model", "", "glTF model to place in the scene")
	cubeTexture := flag.String("cube-texture", "", "Texture for the cube")
	frames := flag.Int("frames", 1, "Number of frames to simulate before capturing")
	supersample := flag.Int("supersample", 2, "Render at this multiple of the output size and downsample")
	flag.Parse()

	out := termenv.NewOutput(os.Stdout)
	fail := func(format string, args ...any) {
		fmt.Fprintln(os.Stderr, out.String("error: ").Foreground(out.Color("1")).Bold().String()+fmt.Sprintf(format, args...))
		os.Exit(1)
	}

	cfg := wlw.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = wlw.LoadConfig(*configPath)
		if err != nil {
			fail("%v", err)
		}
	}

	cfg.Resolve(wlw.ConfigFlags{
		Width:   *width,
		Height:  *height,
		Backend: wlw.BackendSoft,
		Output:  *output,
	})

	factor := max(*supersample, 1)
	outW, outH := cfg.Window.Width, cfg.Window.Height
	cfg.Window.Width *= factor
	cfg.Window.Height *= factor

	device := softraster.NewDevice()
	driver := wlw.NewFrameDriver(device)
	engine := wlw.NewEngine(driver, nil)

	window := cfg.NewWindow(cfg.NewCamera())
	if err := engine.Start(window); err != nil {
		fail("%v", err)
	}

	scene := examples.BuildDemoScene(window, examples.DemoOptions{
		CubeTexture: *cubeTexture,
		ModelPath:   *model,
	})

	start := time.Now()
	dt := float32(1.0 / 60)
	for i := 0; i < max(*frames, 1); i++ {
		scene.Update(dt)
		engine.Iterate()
	}
	elapsed := time.Since(start)

	img := softraster.Downsample(device.Frame(window), factor)

	if err := softraster.Save(cfg.Snapshot.Output, cfg.Snapshot.Format, img); err != nil {
		fail("%v", err)
	}

	stats := driver.Stats
	fmt.Printf("%s %s (%dx%d, %s)\n",
		out.String("wrote").Foreground(out.Color("2")).Bold(),
		cfg.Snapshot.Output, outW, outH, cfg.Snapshot.Format)
	fmt.Printf("  %d frames in %.1fms; last frame: %d nodes, %d draw calls, %d triangles\n",
		max(*frames, 1), float64(elapsed.Microseconds())/1000, stats.NodesVisited, stats.DrawCalls, stats.Triangles)

}
