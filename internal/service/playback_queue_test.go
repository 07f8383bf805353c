package service

import (
	"math"
	"testing"

	"sanvii_backend/internal/util"
)

func pcmOfSeconds(rate int, seconds float64) []byte {
	return make([]byte, int(float64(rate)*seconds)*2)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPlaybackQueueScheduling(t *testing.T) {
	q := newPlaybackQueue(util.OutputSampleRate)

	// 空队列：从当前时间起播
	start := q.Schedule(1.0, pcmOfSeconds(util.OutputSampleRate, 0.5))
	if !almostEqual(start, 1.0) {
		t.Fatalf("first chunk start = %v", start)
	}

	// 第二块在第一块结束后首尾相接，不受当前时间影响
	start = q.Schedule(1.1, pcmOfSeconds(util.OutputSampleRate, 0.25))
	if !almostEqual(start, 1.5) {
		t.Fatalf("second chunk start = %v", start)
	}

	// 播放追上游标后，又回到当前时间起播
	start = q.Schedule(5.0, pcmOfSeconds(util.OutputSampleRate, 0.1))
	if !almostEqual(start, 5.0) {
		t.Fatalf("post-gap start = %v", start)
	}
}

func TestPlaybackQueueClearOnInterrupt(t *testing.T) {
	q := newPlaybackQueue(util.OutputSampleRate)

	q.Schedule(0, pcmOfSeconds(util.OutputSampleRate, 2.0))
	q.Clear()

	// 打断后游标归零，新音频立即起播
	start := q.Schedule(0.3, pcmOfSeconds(util.OutputSampleRate, 0.5))
	if !almostEqual(start, 0.3) {
		t.Fatalf("start after clear = %v", start)
	}
}
