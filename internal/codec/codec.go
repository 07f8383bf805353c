// Package codec 提供带修复能力的JSON编解码。
//
// 本地存储和AI返回的文本都可能因配额或token上限被截断，
// 反序列化失败时先尝试修复，修复失败再退回调用方提供的默认值，
// 绝不向上抛解析错误。
package codec

import (
	"encoding/json"
	"strings"

	"sanvii_backend/pkg/logger"

	"go.uber.org/zap"
)

func Marshal(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Unmarshal 严格解析，失败后尝试修复；全部失败时保持 v 的当前值
// （调用方应预先把 v 置为降级默认值），返回 false 表示走了降级路径。
func Unmarshal(text string, v interface{}) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	if err := json.Unmarshal([]byte(text), v); err == nil {
		return true
	}

	logger.Log.Warn("malformed JSON, attempting recovery", zap.Int("len", len(text)))

	if repaired, ok := Repair(text); ok {
		if err := json.Unmarshal([]byte(repaired), v); err == nil {
			return true
		}
	}

	logger.Log.Error("JSON recovery failed, falling back to default value")
	return false
}

// Repair 对截断文本做尽力修复：
// 引号数为奇数时补一个闭合引号；结尾不是 } 或 ] 时截断到最后一个结构闭合符。
func Repair(text string) (string, bool) {
	fixed := strings.TrimSpace(text)

	if strings.Count(fixed, `"`)%2 != 0 {
		fixed += `"`
	}

	if !strings.HasSuffix(fixed, "}") && !strings.HasSuffix(fixed, "]") {
		cut := strings.LastIndexAny(fixed, "}]")
		if cut == -1 {
			return "", false
		}
		fixed = fixed[:cut+1]
	}

	return fixed, true
}

// StripFences 去掉模型输出外层的Markdown代码栅栏
func StripFences(text string) string {
	clean := strings.TrimSpace(text)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// UnmarshalModelOutput AI结构化输出专用：先剥栅栏再走修复流程
func UnmarshalModelOutput(text string, v interface{}) bool {
	return Unmarshal(StripFences(text), v)
}
