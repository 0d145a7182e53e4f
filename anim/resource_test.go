package anim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/animkit/anim"
)

func TestRequestReturnsPendingClip(t *testing.T) {
	source := newFakeSource()
	source.add("walk.anim", 2.0, 30)
	rm := anim.NewResourceManager(source)

	clip := rm.Request(anim.ResourceAnimation, "walk.anim")
	require.NotNil(t, clip)
	assert.False(t, clip.IsReady())
	assert.Equal(t, anim.ResourcePending, clip.State())
	assert.Equal(t, "walk.anim", clip.Path())
	assert.Zero(t, clip.Length())
}

func TestProcessQueueResolvesClips(t *testing.T) {
	source := newFakeSource()
	source.add("walk.anim", 2.0, 30)
	rm := anim.NewResourceManager(source)

	clip := rm.Request(anim.ResourceAnimation, "walk.anim")
	assert.Equal(t, 1, rm.ProcessQueue())

	assert.True(t, clip.IsReady())
	assert.Equal(t, float32(2.0), clip.Length())
	assert.Equal(t, float32(30), clip.FPS())
	assert.Equal(t, 60, clip.FrameCount())
	require.Len(t, clip.Tracks(), 1)
}

func TestProcessQueueFailsUnknownClips(t *testing.T) {
	rm := anim.NewResourceManager(newFakeSource())

	clip := rm.Request(anim.ResourceAnimation, "missing.anim")
	assert.Equal(t, 0, rm.ProcessQueue())

	assert.False(t, clip.IsReady())
	assert.Equal(t, anim.ResourceFailed, clip.State())
	assert.Error(t, clip.LoadError())
}

func TestRequestDedupes(t *testing.T) {
	source := newFakeSource()
	source.add("walk.anim", 2.0, 30)
	rm := anim.NewResourceManager(source)

	a := rm.Request(anim.ResourceAnimation, "walk.anim")
	b := rm.Request(anim.ResourceAnimation, "walk.anim")

	assert.Same(t, a, b)
	assert.Equal(t, 2, a.Refs())
}

func TestRequestRejectsBadArguments(t *testing.T) {
	rm := anim.NewResourceManager(newFakeSource())

	assert.Nil(t, rm.Request(anim.ResourceAnimation, ""))
	assert.Nil(t, rm.Request(anim.ResourceKind(99), "walk.anim"))
}

func TestReleaseAndPurge(t *testing.T) {
	source := newFakeSource()
	source.add("walk.anim", 2.0, 30)
	rm := anim.NewResourceManager(source)

	clip := rm.Request(anim.ResourceAnimation, "walk.anim")
	rm.ProcessQueue()

	rm.Release(clip)
	assert.Equal(t, 0, clip.Refs())
	assert.NotNil(t, rm.Lookup("walk.anim"), "released clips stay cached")

	assert.Equal(t, 1, rm.Purge())
	assert.Nil(t, rm.Lookup("walk.anim"))
}

func TestPurgeKeepsReferencedAndPendingClips(t *testing.T) {
	source := newFakeSource()
	source.add("held.anim", 1.0, 24)
	source.add("queued.anim", 1.0, 24)
	rm := anim.NewResourceManager(source)

	held := rm.Request(anim.ResourceAnimation, "held.anim")
	rm.ProcessQueue()
	queued := rm.Request(anim.ResourceAnimation, "queued.anim")
	rm.Release(queued)

	assert.Equal(t, 0, rm.Purge())
	assert.Same(t, held, rm.Lookup("held.anim"))
	assert.Same(t, queued, rm.Lookup("queued.anim"))
}

func TestReleaseNilIsNoop(t *testing.T) {
	rm := anim.NewResourceManager(newFakeSource())
	rm.Release(nil)
}
