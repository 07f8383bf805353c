package controller

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"sanvii_backend/internal/service"
	"sanvii_backend/internal/util"
	"sanvii_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	interviewWriteWait = 10 * time.Second
	interviewPongWait  = 60 * time.Second
	interviewPingEvery = (interviewPongWait * 9) / 10
	// 实时PCM块很小，上限主要给整段录音帧留余量
	maxAudioFrameSize = 4 << 20
)

var interviewUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// clientFrame 客户端上行帧。audio 为base64编码的16kHz PCM；
// recording 为浏览器录制的压缩音频（webm/ogg/mp3），服务端转码后上行
type clientFrame struct {
	Type string `json:"type"` // audio | recording | close
	Data string `json:"data,omitempty"`
}

type InterviewController struct {
	InterviewService *service.InterviewService
}

func NewInterviewController(interviewService *service.InterviewService) *InterviewController {
	return &InterviewController{InterviewService: interviewService}
}

// Connect godoc
// @Summary 模拟面试语音会话
// @Description WebSocket桥接：上行16kHz PCM音频，下行音频块（含起播时刻）、双向转写与打断事件
// @Tags 模拟面试
// @Security BearerAuth
// @Success 101 "协议切换"
// @Router /api/interview/ws [get]
func (c *InterviewController) Connect(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	conn, err := interviewUpgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Log.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	session, err := c.InterviewService.Start(ctx.Request.Context(), claims.UserID)
	if err != nil {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "interview unavailable"),
			time.Now().Add(interviewWriteWait))
		return
	}
	defer session.Close()

	go writePump(conn, session)
	readPump(conn, session, claims.UserID)
}

// normalizeRecordingFrame 整段压缩录音落盘转码为16kHz PCM
func normalizeRecordingFrame(data string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "sanvii-rec-*")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	return util.NormalizeRecording(tmp.Name())
}

// readPump 客户端音频上行，直到连接关闭
func readPump(conn *websocket.Conn, session *service.InterviewSession, userID string) {
	conn.SetReadLimit(maxAudioFrameSize)
	conn.SetReadDeadline(time.Now().Add(interviewPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(interviewPongWait))
		return nil
	})

	// 音频帧限流，防止恶意灌流
	limiter := rate.NewLimiter(rate.Limit(50), 100)

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.Warn("interview socket closed unexpectedly",
					zap.String("userId", userID), zap.Error(err))
			}
			return
		}
		if !limiter.Allow() {
			continue
		}

		var pcm []byte
		switch msgType {
		case websocket.BinaryMessage:
			pcm = payload
		case websocket.TextMessage:
			var frame clientFrame
			if err := json.Unmarshal(payload, &frame); err != nil {
				continue
			}
			switch frame.Type {
			case "close":
				return
			case "audio":
				pcm, err = base64.StdEncoding.DecodeString(frame.Data)
				if err != nil {
					continue
				}
			case "recording":
				pcm, err = normalizeRecordingFrame(frame.Data)
				if err != nil {
					logger.Log.Warn("recording transcode failed",
						zap.String("userId", userID), zap.Error(err))
					continue
				}
			default:
				continue
			}
		default:
			continue
		}

		if len(pcm) == 0 {
			continue
		}
		if err := session.SendAudio(pcm); err != nil {
			logger.Log.Error("sending audio upstream failed",
				zap.String("userId", userID), zap.Error(err))
			return
		}
	}
}

// writePump 把Live事件推回客户端，事件流关闭后结束
func writePump(conn *websocket.Conn, session *service.InterviewSession) {
	ticker := time.NewTicker(interviewPingEvery)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-session.Events():
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(interviewWriteWait))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(interviewWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(interviewWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
