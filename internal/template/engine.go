package template

import "strings"

// Field 模板字段定义
type Field struct {
	Label       string `json:"label"`
	Key         string `json:"key"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type,omitempty"` // text, textarea, date
}

// Render 渲染模板正文
// 对 schema 中的每个 key,全局替换 {key} 为对应的值;
// 值缺失或去除空白后为空时,替换为 [key] 作为"尚未填写"的可见提示。
// key 按字面量处理,不解释为正则表达式,相同输入必定产生相同输出。
func Render(body string, fields []Field, values map[string]string) string {
	out := body
	for _, f := range fields {
		token := "{" + f.Key + "}"
		replacement := "[" + f.Key + "]"
		if v, ok := values[f.Key]; ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				replacement = trimmed
			}
		}
		out = strings.ReplaceAll(out, token, replacement)
	}
	return out
}

// MissingKeys 返回尚未提供非空值的字段 key,保持 schema 顺序
func MissingKeys(fields []Field, values map[string]string) []string {
	missing := make([]string, 0)
	for _, f := range fields {
		v, ok := values[f.Key]
		if !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, f.Key)
		}
	}
	return missing
}
