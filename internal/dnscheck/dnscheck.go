package dnscheck

import (
	"strings"
	"time"

	"HunTianLing/internal/model"
	"HunTianLing/internal/utils"

	"github.com/miekg/dns"
)

const defaultResolver = "8.8.8.8:53"

// Checker DNS记录评估器
type Checker struct {
	client *dns.Client
	server string
	logger *utils.Logger
}

// NewChecker 创建评估器，解析服务器取自系统resolv.conf，失败时回退到公共DNS
func NewChecker() *Checker {
	server := defaultResolver
	if conf, err := dns.ClientConfigFromFile("/etc/resolv.conf"); err == nil && len(conf.Servers) > 0 {
		server = conf.Servers[0] + ":" + conf.Port
	}

	return &Checker{
		client: &dns.Client{Timeout: 3 * time.Second},
		server: server,
		logger: utils.NewLogger("dnscheck"),
	}
}

// Assess 收集域名的A/AAAA/MX/TXT记录并评估SPF与DMARC策略
// 查询失败不视为错误，对应记录为空
func (c *Checker) Assess(domain string) *model.DNSAssessment {
	assessment := &model.DNSAssessment{
		Domain:      domain,
		ARecords:    c.records(domain, dns.TypeA),
		AAAARecords: c.records(domain, dns.TypeAAAA),
		MXRecords:   c.records(domain, dns.TypeMX),
		TXTRecords:  c.txtValues(domain),
	}

	evaluateSPF(assessment)

	// DMARC记录按规范位于 _dmarc 子域，部分域也直接写在主域TXT里
	dmarcTXT := append(c.txtValues("_dmarc."+domain), assessment.TXTRecords...)
	evaluateDMARC(assessment, dmarcTXT)

	return assessment
}

// records 查询指定类型的记录并返回文本表示
func (c *Checker) records(domain string, qtype uint16) []string {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), qtype)

	resp, _, err := c.client.Exchange(msg, c.server)
	if err != nil || resp == nil {
		c.logger.Debug("查询 %s 类型 %d 失败: %v", domain, qtype, err)
		return nil
	}

	var values []string
	for _, rr := range resp.Answer {
		switch record := rr.(type) {
		case *dns.A:
			values = append(values, record.A.String())
		case *dns.AAAA:
			values = append(values, record.AAAA.String())
		case *dns.MX:
			values = append(values, record.Mx)
		}
	}

	return values
}

// txtValues 查询TXT记录，拼接分段字符串
func (c *Checker) txtValues(domain string) []string {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeTXT)

	resp, _, err := c.client.Exchange(msg, c.server)
	if err != nil || resp == nil {
		return nil
	}

	var values []string
	for _, rr := range resp.Answer {
		if txt, ok := rr.(*dns.TXT); ok {
			values = append(values, strings.Join(txt.Txt, ""))
		}
	}

	return values
}

// evaluateSPF 从TXT记录中识别SPF策略
func evaluateSPF(a *model.DNSAssessment) {
	var spf string
	for _, v := range a.TXTRecords {
		if strings.HasPrefix(strings.ToLower(v), "v=spf1") {
			a.SPFPresent = true
			spf = v
			break
		}
	}
	if !a.SPFPresent {
		return
	}

	for _, policy := range []string{"-all", "~all", "?all", "+all"} {
		if strings.Contains(spf, policy) {
			a.SPFPolicy = policy
			break
		}
	}

	if a.SPFPolicy == "" || a.SPFPolicy == "?all" || a.SPFPolicy == "+all" {
		a.SPFRecommendation = "建议将SPF策略收紧为 -all 或 ~all"
	}
}

// evaluateDMARC 从TXT记录中识别DMARC策略
func evaluateDMARC(a *model.DNSAssessment, txtRecords []string) {
	var dmarc string
	for _, v := range txtRecords {
		if strings.HasPrefix(strings.ToLower(v), "v=dmarc1") {
			a.DMARCPresent = true
			dmarc = v
			break
		}
	}
	if !a.DMARCPresent {
		return
	}

	for _, token := range strings.Split(dmarc, ";") {
		token = strings.TrimSpace(strings.ToLower(token))
		if strings.HasPrefix(token, "p=") {
			a.DMARCPolicy = strings.SplitN(token, "=", 2)[1]
		}
	}

	if a.DMARCPolicy == "" || a.DMARCPolicy == "none" {
		a.DMARCRecommendation = "建议将DMARC策略设置为 quarantine 或 reject"
	}
}
