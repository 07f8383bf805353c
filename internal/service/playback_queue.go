package service

import "sync"

// playbackQueue 为流式音频分配播放时间。维护一个"下次起播"游标：
// 新块从 max(游标, 当前时间) 开始，块之间首尾相接不重叠。
// 模型被打断时 Clear 重置游标，未播的排队音频全部作废。
type playbackQueue struct {
	mu         sync.Mutex
	sampleRate int
	nextStart  float64 // 秒
}

func newPlaybackQueue(sampleRate int) *playbackQueue {
	return &playbackQueue{sampleRate: sampleRate}
}

// Schedule 返回该PCM块（16-bit单声道）应开始播放的时刻并推进游标
func (q *playbackQueue) Schedule(now float64, pcm []byte) float64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	start := q.nextStart
	if now > start {
		start = now
	}
	duration := float64(len(pcm)/2) / float64(q.sampleRate)
	q.nextStart = start + duration
	return start
}

func (q *playbackQueue) Clear() {
	q.mu.Lock()
	q.nextStart = 0
	q.mu.Unlock()
}
