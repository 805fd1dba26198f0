package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name     string
	deps     []string
	log      *[]string
	initErr  error
	startErr error
}

func (f *fakeService) Name() string { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Init(args ...any) error {
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}
func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return f.startErr
}
func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestHubRunsRegistrationOrder(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "screen", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "audio", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "hud", deps: []string{"screen"}, log: &log}))

	require.NoError(t, h.InitAll())
	require.NoError(t, h.StartAll())
	h.StopAll()
	h.StopAll()

	assert.Equal(t, []string{
		"init:screen", "init:audio", "init:hud",
		"start:screen", "start:audio", "start:hud",
		"stop:hud", "stop:audio", "stop:screen",
	}, log, "a second StopAll does nothing")
}

func TestHubRejectsDuplicateAndUnorderedDependency(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", log: &log}))
	assert.Error(t, h.Register(&fakeService{name: "a", log: &log}))

	err := h.Register(&fakeService{name: "b", deps: []string{"c"}, log: &log})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered before it")
	require.NoError(t, h.Register(&fakeService{name: "c", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"c"}, log: &log}))
}

func TestHubInitRollback(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", log: &log, initErr: errors.New("bad volume")}))

	err := h.InitAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service b init failed")
	assert.Equal(t, []string{"init:a", "init:b", "stop:a"}, log)
}

func TestHubStartRollback(t *testing.T) {
	var log []string
	h := NewHub()
	require.NoError(t, h.Register(&fakeService{name: "a", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log, startErr: errors.New("no device")}))

	require.NoError(t, h.InitAll())
	err := h.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service b start failed")
	assert.Equal(t, "stop:a", log[len(log)-1])

	// Nothing left to stop
	n := len(log)
	h.StopAll()
	assert.Len(t, log, n)
}

type panicAudio struct{ calls int }

func (p *panicAudio) Play(Cue) {
	p.calls++
	panic("device gone")
}

func TestSafeAudioSwallowsPanic(t *testing.T) {
	inner := &panicAudio{}
	var seen []Cue
	s := NewSafeAudio(inner, func(c Cue, r any) { seen = append(seen, c) })

	assert.NotPanics(t, func() { s.Play(CueHit) })
	assert.True(t, s.IsDisabled())
	assert.NotPanics(t, func() { s.Play(CueGrowl) })

	assert.Equal(t, 1, inner.calls, "disabled backend must not be called again")
	assert.Equal(t, []Cue{CueHit}, seen)
}
