package anim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/animkit/anim"
)

func TestCreateEntityReusesFreedIndices(t *testing.T) {
	u := anim.NewUniverse()

	a := u.CreateEntity()
	b := u.CreateEntity()
	require.NotEqual(t, a.Index, b.Index)

	u.DestroyEntity(a)
	assert.False(t, u.IsAlive(a))

	c := u.CreateEntity()
	assert.Equal(t, a.Index, c.Index)
	assert.True(t, u.IsAlive(c))
}

func TestRebind(t *testing.T) {
	u := anim.NewUniverse()

	e := u.Rebind(7)
	assert.Equal(t, int32(7), e.Index)
	assert.True(t, u.IsAlive(e))

	// Allocation continues past rebound indices.
	next := u.CreateEntity()
	assert.Equal(t, int32(8), next.Index)
}

func TestRebindWithdrawsFreedIndex(t *testing.T) {
	u := anim.NewUniverse()

	a := u.CreateEntity()
	u.CreateEntity()
	u.DestroyEntity(a)

	// Loading a save resurrects the freed index; a later CreateEntity must
	// not hand it out a second time.
	rebound := u.Rebind(a.Index)
	require.True(t, u.IsAlive(rebound))

	fresh := u.CreateEntity()
	assert.NotEqual(t, rebound.Index, fresh.Index)
	assert.True(t, u.IsAlive(fresh))
}

func TestComponentAssociation(t *testing.T) {
	u := anim.NewUniverse()
	r := anim.NewRenderScene(u)
	e := u.CreateEntity()

	h := u.AddComponent(e, anim.KindRenderable, r, 3, 0)
	assert.Equal(t, h, u.Component(e, anim.KindRenderable))
	assert.False(t, u.Component(e, anim.KindAnimable).IsValid())

	u.DestroyComponent(h)
	assert.False(t, u.Component(e, anim.KindRenderable).IsValid())
}

func TestDestroyEntityDropsAssociations(t *testing.T) {
	u := anim.NewUniverse()
	r := anim.NewRenderScene(u)
	e := u.CreateEntity()
	u.AddComponent(e, anim.KindRenderable, r, 0, 0)

	u.DestroyEntity(e)

	assert.False(t, u.Component(e, anim.KindRenderable).IsValid())
}

type recordingObserver struct {
	created []anim.Handle
}

func (ro *recordingObserver) ComponentCreated(h anim.Handle) {
	ro.created = append(ro.created, h)
}

func TestObserverNotification(t *testing.T) {
	u := anim.NewUniverse()
	r := anim.NewRenderScene(u)
	ro := &recordingObserver{}
	u.AddObserver(ro)

	h := r.CreateRenderable(u.CreateEntity(), testSkeleton())

	require.Len(t, ro.created, 1)
	assert.Equal(t, h, ro.created[0])
}

func TestRemoveObserver(t *testing.T) {
	u := anim.NewUniverse()
	r := anim.NewRenderScene(u)
	ro := &recordingObserver{}
	u.AddObserver(ro)
	u.RemoveObserver(ro)

	r.CreateRenderable(u.CreateEntity(), testSkeleton())

	assert.Empty(t, ro.created)
}

func TestSceneCloseUnsubscribes(t *testing.T) {
	rig := newRig()

	e := rig.universe.CreateEntity()
	h := rig.scene.CreateAnimable(e)
	rig.system.DestroyScene(rig.scene)

	// A renderable created after Close must not resolve the binding.
	rig.render.CreateRenderable(e, testSkeleton())

	assert.False(t, rig.scene.RenderableBinding(h).IsValid())
}

func TestRenderSceneLifecycle(t *testing.T) {
	u := anim.NewUniverse()
	r := anim.NewRenderScene(u)
	e := u.CreateEntity()

	h := r.CreateRenderable(e, testSkeleton())
	require.True(t, h.IsValid())
	assert.Equal(t, h, r.Renderable(e))
	require.NotNil(t, r.Pose(h))
	assert.Equal(t, 3, r.Skeleton(h).BoneCount())

	r.DestroyRenderable(h)
	assert.False(t, r.Renderable(e).IsValid())
	assert.Nil(t, r.Pose(h), "destroyed binding handles go stale")

	// The freed slot is reused; the stale handle stays inert.
	h2 := r.CreateRenderable(u.CreateEntity(), testSkeleton())
	assert.Equal(t, h.Index, h2.Index)
	assert.Nil(t, r.Skeleton(h))
	assert.NotNil(t, r.Skeleton(h2))
}
