package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/util"
	"sanvii_backend/pkg/logger"
	"sanvii_backend/pkg/monitoring"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// InterviewEventType 发往客户端的事件类型
type InterviewEventType string

const (
	EventAudio        InterviewEventType = "audio"
	EventTranscript   InterviewEventType = "transcript"
	EventInterrupted  InterviewEventType = "interrupted"
	EventTurnComplete InterviewEventType = "turn_complete"
	EventError        InterviewEventType = "error"
)

// InterviewEvent 模拟面试会话的单条下行事件。
// audio 事件携带 24kHz PCM 与建议起播时刻（相对会话开始的秒数）。
type InterviewEvent struct {
	Type    InterviewEventType `json:"type"`
	Audio   []byte             `json:"audio,omitempty"`
	StartAt float64            `json:"startAt,omitempty"`
	Role    model.MessageRole  `json:"role,omitempty"`
	Text    string             `json:"text,omitempty"`
}

// InterviewSession 一条到Gemini Live的双向音频会话。
// 上行16kHz PCM，下行经播放队列排期后推给客户端。
type InterviewSession struct {
	ID      string
	live    *genai.Session
	queue   *playbackQueue
	events  chan InterviewEvent
	done    chan struct{}
	started time.Time

	closeOnce sync.Once
}

// InterviewService 模拟面试：按用户画像定制面试官人设，
// 每个连接对应一条独立的Live会话。
type InterviewService struct {
	Gemini   *GeminiService
	Profiles *ProfileService
}

func NewInterviewService(gemini *GeminiService, profiles *ProfileService) *InterviewService {
	return &InterviewService{Gemini: gemini, Profiles: profiles}
}

// Start 建立Live连接并启动接收循环
func (s *InterviewService) Start(ctx context.Context, userID string) (*InterviewSession, error) {
	profile := s.Profiles.Get(ctx, userID)

	live, err := s.Gemini.Client().Live.Connect(ctx, s.Gemini.LiveModel(), &genai.LiveConnectConfig{
		ResponseModalities: []genai.Modality{genai.ModalityAudio},
		SystemInstruction:  systemContent(interviewerInstruction(profile)),
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.Gemini.Voice()},
			},
		},
		InputAudioTranscription:  &genai.AudioTranscriptionConfig{},
		OutputAudioTranscription: &genai.AudioTranscriptionConfig{},
	})
	monitoring.ObserveAICall("interview_connect", err == nil)
	if err != nil {
		logger.Log.Error("live connect failed", zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("connect live session: %w", err)
	}

	session := &InterviewSession{
		ID:      model.NewID("iv"),
		live:    live,
		queue:   newPlaybackQueue(util.OutputSampleRate),
		events:  make(chan InterviewEvent, 64),
		done:    make(chan struct{}),
		started: time.Now(),
	}
	go session.receiveLoop()

	logger.Log.Info("interview session started",
		zap.String("userId", userID), zap.String("sessionId", session.ID))
	return session, nil
}

// SendAudio 上行一段16kHz单声道PCM
func (sn *InterviewSession) SendAudio(pcm []byte) error {
	return sn.live.SendRealtimeInput(genai.LiveRealtimeInput{
		Media: &genai.Blob{
			Data:     pcm,
			MIMEType: fmt.Sprintf("audio/pcm;rate=%d", util.InputSampleRate),
		},
	})
}

// Events 下行事件流；会话结束后关闭
func (sn *InterviewSession) Events() <-chan InterviewEvent {
	return sn.events
}

func (sn *InterviewSession) Close() {
	sn.closeOnce.Do(func() {
		close(sn.done)
		if sn.live != nil {
			if err := sn.live.Close(); err != nil {
				logger.Log.Warn("closing live session", zap.String("sessionId", sn.ID), zap.Error(err))
			}
		}
	})
}

// emit 投递一条下行事件。客户端已断开时返回false，
// 接收循环据此退出，避免写满缓冲后永久阻塞。
func (sn *InterviewSession) emit(ev InterviewEvent) bool {
	select {
	case sn.events <- ev:
		return true
	case <-sn.done:
		return false
	}
}

func (sn *InterviewSession) elapsed() float64 {
	return time.Since(sn.started).Seconds()
}

func (sn *InterviewSession) receiveLoop() {
	defer close(sn.events)

	for {
		msg, err := sn.live.Receive()
		if err != nil {
			select {
			case <-sn.done:
				// Close()触发的读错误，正常收尾
			default:
				sn.emit(InterviewEvent{Type: EventError, Text: err.Error()})
				logger.Log.Error("live receive failed", zap.String("sessionId", sn.ID), zap.Error(err))
			}
			return
		}

		sc := msg.ServerContent
		if sc == nil {
			continue
		}

		// 用户插话：作废所有未播音频，游标归零
		if sc.Interrupted {
			sn.queue.Clear()
			if !sn.emit(InterviewEvent{Type: EventInterrupted}) {
				return
			}
		}

		if sc.InputTranscription != nil && sc.InputTranscription.Text != "" {
			if !sn.emit(InterviewEvent{
				Type: EventTranscript,
				Role: model.RoleUser,
				Text: sc.InputTranscription.Text,
			}) {
				return
			}
		}
		if sc.OutputTranscription != nil && sc.OutputTranscription.Text != "" {
			if !sn.emit(InterviewEvent{
				Type: EventTranscript,
				Role: model.RoleAssistant,
				Text: sc.OutputTranscription.Text,
			}) {
				return
			}
		}

		if sc.ModelTurn != nil {
			for _, part := range sc.ModelTurn.Parts {
				if part.InlineData == nil || len(part.InlineData.Data) == 0 {
					continue
				}
				startAt := sn.queue.Schedule(sn.elapsed(), part.InlineData.Data)
				if !sn.emit(InterviewEvent{
					Type:    EventAudio,
					Audio:   part.InlineData.Data,
					StartAt: startAt,
				}) {
					return
				}
			}
		}

		if sc.TurnComplete {
			if !sn.emit(InterviewEvent{Type: EventTurnComplete}) {
				return
			}
		}
	}
}
