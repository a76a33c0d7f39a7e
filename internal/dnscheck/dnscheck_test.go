package dnscheck

import (
	"testing"

	"HunTianLing/internal/model"
)

func TestEvaluateSPFStrictPolicy(t *testing.T) {
	a := &model.DNSAssessment{
		TXTRecords: []string{"v=spf1 include:_spf.example.com -all"},
	}
	evaluateSPF(a)

	if !a.SPFPresent {
		t.Fatal("应识别出SPF记录")
	}
	if a.SPFPolicy != "-all" {
		t.Errorf("期望策略为 -all, 实际得到 %s", a.SPFPolicy)
	}
	if a.SPFRecommendation != "" {
		t.Errorf("严格策略不应有建议, 实际得到 %s", a.SPFRecommendation)
	}
}

func TestEvaluateSPFLoosePolicy(t *testing.T) {
	a := &model.DNSAssessment{
		TXTRecords: []string{"v=spf1 include:_spf.example.com +all"},
	}
	evaluateSPF(a)

	if a.SPFPolicy != "+all" {
		t.Errorf("期望策略为 +all, 实际得到 %s", a.SPFPolicy)
	}
	if a.SPFRecommendation == "" {
		t.Error("宽松策略应给出收紧建议")
	}
}

func TestEvaluateSPFAbsent(t *testing.T) {
	a := &model.DNSAssessment{
		TXTRecords: []string{"google-site-verification=abc123"},
	}
	evaluateSPF(a)

	if a.SPFPresent {
		t.Error("无SPF记录时不应误判为已配置")
	}
}

func TestEvaluateDMARCRejectPolicy(t *testing.T) {
	a := &model.DNSAssessment{}
	evaluateDMARC(a, []string{"v=DMARC1; p=reject; rua=mailto:dmarc@example.com"})

	if !a.DMARCPresent {
		t.Fatal("应识别出DMARC记录")
	}
	if a.DMARCPolicy != "reject" {
		t.Errorf("期望策略为 reject, 实际得到 %s", a.DMARCPolicy)
	}
	if a.DMARCRecommendation != "" {
		t.Errorf("reject策略不应有建议, 实际得到 %s", a.DMARCRecommendation)
	}
}

func TestEvaluateDMARCNonePolicy(t *testing.T) {
	a := &model.DNSAssessment{}
	evaluateDMARC(a, []string{"v=DMARC1; p=none"})

	if a.DMARCPolicy != "none" {
		t.Errorf("期望策略为 none, 实际得到 %s", a.DMARCPolicy)
	}
	if a.DMARCRecommendation == "" {
		t.Error("none策略应给出收紧建议")
	}
}

func TestEvaluateDMARCAbsent(t *testing.T) {
	a := &model.DNSAssessment{}
	evaluateDMARC(a, []string{"v=spf1 -all"})

	if a.DMARCPresent {
		t.Error("无DMARC记录时不应误判为已配置")
	}
}

func TestNewCheckerHasResolver(t *testing.T) {
	checker := NewChecker()
	if checker.server == "" {
		t.Error("解析服务器地址不应为空")
	}
	if checker.client == nil {
		t.Error("DNS客户端不应为nil")
	}
}
