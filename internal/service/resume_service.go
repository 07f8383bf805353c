package service

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"sanvii_backend/internal/model"
	"sanvii_backend/internal/repository"
	"sanvii_backend/internal/util"
	"sanvii_backend/pkg/logger"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

var docxTagPattern = regexp.MustCompile(`<[^>]+>`)

// ResumeService 简历解析：提取纯文本、AI深度分析、
// 归档原件并持久化最新一次分析结果
type ResumeService struct {
	Repo    *repository.ResumeRepository
	Gateway AIGateway
	Storage *StorageService
}

func NewResumeService(repo *repository.ResumeRepository, gateway AIGateway, storage *StorageService) *ResumeService {
	return &ResumeService{Repo: repo, Gateway: gateway, Storage: storage}
}

func (s *ResumeService) Latest(ctx context.Context, userID string) *model.ResumeAnalysis {
	return s.Repo.Get(ctx, userID)
}

// Analyze 提取文本并走AI分析；成功后覆盖保存为该用户的最新分析。
// 原件归档失败只记日志，不影响分析流程。
func (s *ResumeService) Analyze(ctx context.Context, userID, filename string, data []byte) (*model.ResumeAnalysis, error) {
	text, err := ExtractResumeText(filename, data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, util.ErrEmptyResume
	}

	objectName := fmt.Sprintf("resumes/%s/%s", userID, filepath.Base(filename))
	if _, err := s.Storage.Upload(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentTypeFor(filename)); err != nil {
		logger.Log.Warn("resume archive failed",
			zap.String("userId", userID), zap.String("object", objectName), zap.Error(err))
	}

	analysis, err := s.Gateway.AnalyzeResume(ctx, text)
	if err != nil {
		return nil, err
	}
	analysis.AnalyzedAt = model.NowMillis()
	s.Repo.Save(ctx, userID, analysis)
	return analysis, nil
}

// ExtractResumeText 按扩展名提取纯文本，支持 pdf / docx / txt / md
func ExtractResumeText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt", ".md":
		return string(data), nil
	default:
		return "", util.ErrUnsupportedFile
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	// GetContent 返回文档XML，剥掉标签还原纯文本
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagPattern.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}
