package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundMerge   SoundType = iota // Bodies coalesce
	SoundBounce                   // Wall reflection or repel contact
	SoundDespawn                  // Body leaves a soft boundary
	SoundSpawn                    // Body or orbit placed
	SoundWrap                     // Portal crossing
	SoundTypeCount
)

var soundNames = [...]string{"merge", "bounce", "despawn", "spawn", "wrap"}

func (s SoundType) String() string {
	if s >= 0 && s < SoundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}
