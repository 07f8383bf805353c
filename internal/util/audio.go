package util

import (
	"fmt"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// 实时面试会话的上行采样规格：16kHz 单声道 s16le
const (
	InputSampleRate  = 16000
	OutputSampleRate = 24000
)

// NormalizeRecording 把用户上传的练习录音转成 16kHz 单声道 s16le 原始PCM。
// 浏览器上传的格式不可控（webm/ogg/mp3），统一规格后才能回放进会话。
func NormalizeRecording(inputPath string) ([]byte, error) {
	outPath, err := normalizeOutputPath()
	if err != nil {
		return nil, fmt.Errorf("audio normalize failed: %w", err)
	}
	defer os.Remove(outPath)

	err = ffmpeg.Input(inputPath).
		Output(outPath, ffmpeg.KwArgs{
			"ar":     InputSampleRate,
			"ac":     1,
			"f":      "s16le",
			"acodec": "pcm_s16le",
		}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		return nil, fmt.Errorf("audio normalize failed: %w", err)
	}

	return os.ReadFile(outPath)
}

// normalizeOutputPath 为一次转码分配独占的临时输出文件，
// 并发会话各写各的，互不覆盖。
func normalizeOutputPath() (string, error) {
	out, err := os.CreateTemp("", "sanvii-norm-*.pcm")
	if err != nil {
		return "", err
	}
	out.Close()
	return out.Name(), nil
}
