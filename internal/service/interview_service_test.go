package service

import (
	"testing"
	"time"

	"sanvii_backend/internal/util"
)

func newDetachedSession(buffer int) *InterviewSession {
	return &InterviewSession{
		ID:      "iv-test",
		queue:   newPlaybackQueue(util.OutputSampleRate),
		events:  make(chan InterviewEvent, buffer),
		done:    make(chan struct{}),
		started: time.Now(),
	}
}

func TestEmitDeliversWhileSessionOpen(t *testing.T) {
	sn := newDetachedSession(1)

	if !sn.emit(InterviewEvent{Type: EventTurnComplete}) {
		t.Fatal("emit refused with free buffer")
	}
	ev := <-sn.events
	if ev.Type != EventTurnComplete {
		t.Fatalf("got %s", ev.Type)
	}
}

// 客户端断开后事件缓冲可能已满且无人消费；emit必须立刻放弃而不是永久阻塞。
func TestEmitUnblocksAfterClose(t *testing.T) {
	sn := newDetachedSession(1)
	sn.emit(InterviewEvent{Type: EventAudio}) // 填满缓冲，无消费者

	sn.Close()
	sn.Close() // 幂等

	result := make(chan bool, 1)
	go func() {
		result <- sn.emit(InterviewEvent{Type: EventTranscript})
	}()

	select {
	case ok := <-result:
		if ok {
			t.Fatal("emit reported delivery into a dead session")
		}
	case <-time.After(time.Second):
		t.Fatal("emit still blocked after Close")
	}
}
