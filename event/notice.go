package event

import (
	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/vmath"
)

// NoticeType classifies what happened to a body during a tick
type NoticeType uint8

const (
	NoticeSpawned   NoticeType = iota // Body added
	NoticeMerged                      // Other absorbed into Body
	NoticeRepelled                    // Body and Other pushed apart
	NoticeBounced                     // Body reflected off a HARD wall
	NoticeWrapped                     // Body crossed a PORTAL edge
	NoticeDespawned                   // Body left a SOFT extent
	NoticeRemoved                     // Body removed by command
	NoticeRejected                    // Command failed validation
)

var noticeNames = [...]string{"spawned", "merged", "repelled", "bounced", "wrapped", "despawned", "removed", "rejected"}

func (n NoticeType) String() string {
	if int(n) < len(noticeNames) {
		return noticeNames[n]
	}
	return "unknown"
}

// Notice is an outcome reported by a tick for audio and telemetry consumers
type Notice struct {
	Type  NoticeType
	Body  core.BodyID
	Other core.BodyID
	Pos   vmath.Vec
	Tick  uint64
}
