package export

import (
	"fmt"
	"strings"
)

// ActualFormat 当前导出实际产出的格式
// 富格式渲染尚未接入,所有导出先落为纯文本
const ActualFormat = "txt"

var knownFormats = map[string]struct{}{
	"txt":  {},
	"pdf":  {},
	"docx": {},
}

// Export 一次导出的产物与元数据
type Export struct {
	Filename        string `json:"filename"`
	ContentType     string `json:"content_type"`
	RequestedFormat string `json:"requested_format"`
	ActualFormat    string `json:"actual_format"`
	FormatNote      string `json:"format_note,omitempty"`
	Content         string `json:"-"`
}

// Build 构造导出产物
// 请求的格式与实际格式不一致时在 FormatNote 中如实声明
func Build(baseName, requestedFormat, content string) Export {
	requestedFormat = normalizeFormat(requestedFormat)

	exp := Export{
		Filename:        sanitizeName(baseName) + "." + ActualFormat,
		ContentType:     "text/plain; charset=utf-8",
		RequestedFormat: requestedFormat,
		ActualFormat:    ActualFormat,
		Content:         content,
	}
	if requestedFormat != ActualFormat {
		exp.FormatNote = fmt.Sprintf("requested %s export is not yet supported, content delivered as plain text", requestedFormat)
	}
	return exp
}

// Mismatch 请求格式与实际格式是否不一致
func (e Export) Mismatch() bool {
	return e.RequestedFormat != e.ActualFormat
}

func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	if format == "" {
		return ActualFormat
	}
	if _, ok := knownFormats[format]; !ok {
		return ActualFormat
	}
	return format
}

// sanitizeName 把模板标题收敛为安全的文件名
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "export"
	}
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "export"
	}
	return out
}
