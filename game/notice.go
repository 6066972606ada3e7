package game

// NoticeKind classifies a session notice.
type NoticeKind uint8

const (
	NoticeSpawn NoticeKind = iota
	NoticeLock
	NoticeClear
	NoticeLevelUp
	NoticeGameOver
	NoticeReset
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSpawn:
		return "spawn"
	case NoticeLock:
		return "lock"
	case NoticeClear:
		return "clear"
	case NoticeLevelUp:
		return "level-up"
	case NoticeGameOver:
		return "game-over"
	case NoticeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Notice tells collaborators that something happened in a session. Notices are
// delivered at the end of the frame that produced them.
type Notice struct {
	Kind  NoticeKind
	Piece Kind
	Lines int
	Score int
	Level int
}

// Listener receives session notices.
type Listener func(Notice)
