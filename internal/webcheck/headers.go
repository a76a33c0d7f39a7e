package webcheck

import (
	"net/http"
	"strings"
	"time"

	"HunTianLing/internal/model"
	"HunTianLing/internal/utils"
)

// securityHeaders 需要检查的安全响应头及缺失时的建议
var securityHeaders = []struct {
	name           string
	recommendation string
}{
	{"content-security-policy", "建议设置严格的CSP以缓解XSS (如 default-src 'self')"},
	{"strict-transport-security", "建议启用HSTS强制HTTPS (includeSubDomains; preload)"},
	{"x-content-type-options", "建议设置为 nosniff 防止MIME嗅探"},
	{"x-frame-options", "建议设置为 DENY 或 SAMEORIGIN 防止点击劫持"},
	{"referrer-policy", "建议设置为 no-referrer 或 strict-origin-when-cross-origin"},
	{"permissions-policy", "建议限制高权限浏览器特性"},
}

// Analyzer HTTP安全响应头分析器
type Analyzer struct {
	client *http.Client
	logger *utils.Logger
}

// NewAnalyzer 创建分析器
func NewAnalyzer(timeout time.Duration) *Analyzer {
	return &Analyzer{
		client: &http.Client{Timeout: timeout},
		logger: utils.NewLogger("webcheck"),
	}
}

// Analyze 请求目标URL并评估安全响应头
// 网络错误不会让扫描失败，返回 N/A 评级的中性结果
func (an *Analyzer) Analyze(url string) *model.HeadersAssessment {
	resp, err := an.client.Get(url)
	if err != nil {
		an.logger.Debug("请求 %s 失败: %v", url, err)
		return &model.HeadersAssessment{URL: url, Grade: "N/A", Score: 0}
	}
	defer resp.Body.Close()

	findings := EvaluateHeaders(resp.Header)
	grade, score := gradeFindings(findings)

	return &model.HeadersAssessment{
		URL:      url,
		Findings: findings,
		Grade:    grade,
		Score:    score,
	}
}

// EvaluateHeaders 逐项检查安全响应头
func EvaluateHeaders(headers http.Header) []model.HeaderFinding {
	lower := make(map[string]string)
	for key, values := range headers {
		if len(values) > 0 {
			lower[strings.ToLower(key)] = values[0]
		}
	}

	var findings []model.HeaderFinding
	for _, h := range securityHeaders {
		_, present := lower[h.name]
		finding := model.HeaderFinding{Header: h.name, Present: present}
		if !present {
			finding.Recommendation = h.recommendation
		}
		findings = append(findings, finding)
	}

	// 质量检查：存在但配置不佳的头也给出建议
	if csp, ok := lower["content-security-policy"]; ok {
		if strings.Contains(csp, "unsafe-inline") || strings.Contains(csp, "*") {
			findings = append(findings, model.HeaderFinding{
				Header:         "content-security-policy",
				Present:        true,
				Recommendation: "CSP中应避免通配符与 unsafe-inline",
			})
		}
	}

	if hsts, ok := lower["strict-transport-security"]; ok {
		if strings.Contains(hsts, "max-age") && !strings.Contains(strings.ToLower(hsts), "includesubdomains") {
			findings = append(findings, model.HeaderFinding{
				Header:         "strict-transport-security",
				Present:        true,
				Recommendation: "建议为HSTS添加 includeSubDomains 和 preload",
			})
		}
	}

	return findings
}

// gradeFindings 根据检查结论计算评级与分数
func gradeFindings(findings []model.HeaderFinding) (string, int) {
	present := 0
	deductions := 0
	for _, f := range findings {
		if f.Recommendation == "" && f.Present {
			present++
		}
		if f.Recommendation != "" {
			deductions++
		}
	}

	total := len(securityHeaders)
	score := present * 100 / total
	score -= deductions * 5
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	switch {
	case score >= 95:
		return "A+", score
	case score >= 90:
		return "A", score
	case score >= 80:
		return "B", score
	case score >= 70:
		return "C", score
	case score >= 60:
		return "D", score
	default:
		return "F", score
	}
}
