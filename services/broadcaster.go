// file: services/broadcaster.go
package services

import (
	"sync"

	"github.com/HelloPy-Korea/hellopy-game/dto"
)

// Subscriber SSE 연결 하나당 구독 채널 하나.
// 채널은 유한 버퍼이며, 소비가 느려 버퍼가 가득 차면 이후 이벤트는
// 해당 구독자에 한해 유실된다.
type Subscriber struct {
	C chan dto.LeaderboardEvent
}

// Broadcaster 점수 제출 이벤트를 접속 중인 모든 리더보드 화면에 중계한다.
// 프로세스 시작 시 한 번 생성해서 핸들러에 주입한다.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[*Subscriber]struct{}
	queueSize   int
}

func NewBroadcaster(queueSize int) *Broadcaster {
	if queueSize <= 0 {
		queueSize = 16
	}
	return &Broadcaster{
		subscribers: make(map[*Subscriber]struct{}),
		queueSize:   queueSize,
	}
}

func (b *Broadcaster) Subscribe() *Subscriber {
	sub := &Subscriber{C: make(chan dto.LeaderboardEvent, b.queueSize)}
	b.mu.Lock()
	b.subscribers[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Unsubscribe 구독 해제. 멱등 — 이미 해제된 구독자를 다시 넘겨도 no-op.
// 채널은 닫지 않는다: Publish 가 제거 직전에 떠 둔 집합 스냅샷으로
// 전송을 시도해도 안전해야 한다.
func (b *Broadcaster) Unsubscribe(sub *Subscriber) {
	b.mu.Lock()
	delete(b.subscribers, sub)
	b.mu.Unlock()
}

// Publish 호출 시점의 구독자 집합 스냅샷을 대상으로 비차단 전송한다.
// 큐가 가득 찬 구독자는 이번 이벤트를 건너뛴다. 발행자는 어떤 경우에도
// 블로킹되지 않고, 한 구독자의 지연이 다른 구독자에 영향을 주지 않는다.
func (b *Broadcaster) Publish(ev dto.LeaderboardEvent) {
	b.mu.RLock()
	subs := make([]*Subscriber, 0, len(b.subscribers))
	for sub := range b.subscribers {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub.C <- ev:
		default:
			// 느린 소비자 드롭 정책: 유실은 의도된 트레이드오프
		}
	}
}

// Count 현재 구독자 수 (헬스 체크 노출용)
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
