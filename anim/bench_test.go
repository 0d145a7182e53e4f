package anim_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/plus3/animkit/anim"
)

func benchRig(b *testing.B, slots int) *rig {
	b.Helper()
	r := newRig()
	for i := 0; i < slots; i++ {
		path := "walk.anim"
		if i%2 == 1 {
			path = "idle.anim"
		}
		e := r.universe.CreateEntity()
		r.render.CreateRenderable(e, testSkeleton())
		h := r.scene.CreateAnimable(e)
		r.scene.Assign(h, path)
	}
	r.system.Resources().ProcessQueue()
	return r
}

func BenchmarkCreateAnimable(b *testing.B) {
	r := newRig()

	entities := make([]anim.Entity, b.N)
	for i := 0; i < b.N; i++ {
		entities[i] = r.universe.CreateEntity()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.scene.CreateAnimable(entities[i])
	}
}

func BenchmarkAnimableLookup(b *testing.B) {
	r := benchRig(b, 1024)
	e := anim.Entity{Index: 512, Universe: r.universe}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.scene.Animable(e)
	}
}

func BenchmarkUpdate(b *testing.B) {
	for _, slots := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("slots-%d", slots), func(b *testing.B) {
			r := benchRig(b, slots)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r.scene.Update(1.0 / 60.0)
			}
		})
	}
}

func BenchmarkSerialize(b *testing.B) {
	r := benchRig(b, 1024)
	var buf bytes.Buffer

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := r.scene.Serialize(&buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeserialize(b *testing.B) {
	r := benchRig(b, 1024)
	var buf bytes.Buffer
	if err := r.scene.Serialize(&buf); err != nil {
		b.Fatal(err)
	}
	blob := buf.Bytes()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.scene.Deserialize(bytes.NewReader(blob)); err != nil {
			b.Fatal(err)
		}
	}
}
