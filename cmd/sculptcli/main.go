// Command sculptcli is a headless driver for the svo sculpting core: it
// applies a few add/remove brush strokes and prints buffer statistics. It
// has no rendering or windowing dependency; it stands in for the "host
// application" at the one interface the core exposes (voxel and material
// buffers).
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/soypat/svosculpt/brushtips"
	"github.com/soypat/svosculpt/svo"
)

func main() {
	start := time.Now()
	err := run()
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		log.Fatalf("FAIL in %s: %s", elapsed, err.Error())
	}
	log.Println("PASS in", elapsed)
}

func run() error {
	const resolution = 64
	s, err := svo.New(resolution)
	if err != nil {
		return fmt.Errorf("creating sculpt: %w", err)
	}

	clay := svo.Material{Color: [4]float32{0.7, 0.5, 0.3, 1}, Roughness: 0.8, Metallic: 0}
	var sphere brushtips.Sphere
	var cube brushtips.Cube

	sphere.Add(s, clay, 0.5, 0.5, 0.35)
	printStats(s, "after sphere add")

	cube.Remove(s, 0.7, 0.7, 0.2)
	printStats(s, "after cube remove")

	s.PrunePalette()
	printStats(s, "after palette prune")

	return nil
}

func printStats(s *svo.Sculpt, label string) {
	vbuf := s.VoxelBuffer()
	mbuf := s.MaterialBuffer()
	fmt.Printf("%s: resolution=%d root=%s voxel_words=%d materials=%d\n",
		label, s.Resolution(), s.Root().Kind(), len(vbuf), len(mbuf)/6)
}
