package fx

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arcade/internal/domain/entity"
	"github.com/younwookim/arcade/internal/spatial"
)

func TestParticles_Lifecycle(t *testing.T) {
	p := NewParticles()
	origin := entity.Vec(100, 100)

	p.Spawn(origin, BurstEnemy)
	require.Equal(t, BurstEnemy.Count, p.Len())

	p.Update(BurstEnemy.Lifetime / 2)
	assert.Equal(t, BurstEnemy.Count, p.Len())
	for _, pos := range p.positions() {
		d := spatial.Distance(origin, pos)
		assert.Greater(t, d, 0.0)
		assert.Less(t, d, float64(BurstEnemy.Speed))
	}

	p.Update(BurstEnemy.Lifetime)
	assert.Equal(t, 0, p.Len())
}

func TestParticles_MixedLifetimes(t *testing.T) {
	p := NewParticles()
	p.Spawn(entity.Vector2{}, BurstHurt)
	p.Spawn(entity.Vector2{}, BurstKey)

	p.Update(BurstHurt.Lifetime + 0.01)

	assert.Equal(t, BurstKey.Count, p.Len())

	p.Clear()
	assert.Equal(t, 0, p.Len())
}

func TestSynthesize(t *testing.T) {
	pcm := Synthesize(ToneRupee)

	samples := int(ToneRupee.Duration * SampleRate)
	require.Len(t, pcm, samples*4)

	first := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	right := int16(binary.LittleEndian.Uint16(pcm[2:4]))
	assert.Equal(t, first, right, "both channels carry the same sample")
	assert.Positive(t, first)
	assert.LessOrEqual(t, int(first), int(ToneRupee.Volume*32767)+1)

	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	assert.Less(t, abs(int(last)), 100, "release fades to silence")
}

func TestSounds_NilIsSilent(t *testing.T) {
	var s *Sounds
	assert.NotPanics(t, func() { s.Play(ToneKick) })
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
