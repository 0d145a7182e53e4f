package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/animkit/anim"
)

// syntheticSource fabricates clips in memory so the soak needs no assets.
type syntheticSource struct {
	bones int
	keys  int
}

func (s syntheticSource) LoadClip(path string) (*anim.ClipData, error) {
	length := 1 + rand.Float32()*4
	data := &anim.ClipData{
		Length: length,
		FPS:    30,
	}
	for b := 0; b < s.bones; b++ {
		track := anim.BoneTrack{Bone: fmt.Sprintf("bone_%d", b)}
		for k := 0; k < s.keys; k++ {
			t := length * float32(k) / float32(s.keys-1)
			track.Keys = append(track.Keys, anim.Keyframe{
				Time:        t,
				Translation: [3]float32{rand.Float32(), rand.Float32(), rand.Float32()},
				Rotation:    [4]float32{0, 0, 0, 1},
			})
		}
		data.Tracks = append(data.Tracks, track)
	}
	return data, nil
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	slotCount := flag.Int("slots", 10000, "The number of animation slots to create.")
	clipCount := flag.Int("clips", 64, "The number of distinct clips to cycle through.")
	boneCount := flag.Int("bones", 32, "Bones per skeleton and clip.")
	keyCount := flag.Int("keys", 16, "Keyframes per bone track.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting animation stress test...")

	// 1. Setup universe, render scene, resource manager, animation scene
	universe := anim.NewUniverse()
	renderScene := anim.NewRenderScene(universe)
	system := anim.NewAnimationSystem(anim.NewResourceManager(syntheticSource{bones: *boneCount, keys: *keyCount}))
	scene := system.CreateScene(universe, renderScene)
	defer system.DestroyScene(scene)

	skeleton := &anim.Skeleton{}
	for b := 0; b < *boneCount; b++ {
		skeleton.Bones = append(skeleton.Bones, fmt.Sprintf("bone_%d", b))
		skeleton.Parents = append(skeleton.Parents, int32(b)-1)
	}

	// 2. Populate: entity + renderable + slot + clip assignment per slot
	log.Printf("Populating %d slots across %d clips...\n", *slotCount, *clipCount)
	for i := 0; i < *slotCount; i++ {
		e := universe.CreateEntity()
		renderScene.CreateRenderable(e, skeleton)
		h := scene.CreateAnimable(e)
		scene.Assign(h, fmt.Sprintf("clips/synthetic_%d.anim", i%*clipCount))
	}
	loaded := system.Resources().ProcessQueue()
	log.Printf("Population complete, %d clips loaded.\n", loaded)

	driver := anim.NewDriver()
	driver.Register("AnimationScene", scene)

	// 3. Run the simulation loop; the driver times every update itself
	report := &Report{
		Duration:       *duration,
		Slots:          *slotCount,
		Clips:          *clipCount,
		Bones:          *boneCount,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()
			driver.Once(float32(deltaTime.Seconds()))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Update = driver.GetStats().Updaters[0]
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Serialize round trip as a sanity check and blob size measurement
	var blob bytes.Buffer
	if err := scene.Serialize(&blob); err != nil {
		log.Fatalf("Serialize failed: %v", err)
	}
	report.BlobBytes = blob.Len()
	if err := scene.Deserialize(bytes.NewReader(blob.Bytes())); err != nil {
		log.Fatalf("Deserialize failed: %v", err)
	}

	// 5. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
