package model

import "time"

// ScanRequest 一次扫描的输入参数
// Ports 允许重复端口，每个出现都会被独立探测
type ScanRequest struct {
	Host        string        `json:"host"`
	Ports       []uint16      `json:"ports"`
	Timeout     time.Duration `json:"timeout"`
	Concurrency int           `json:"concurrency"`
}

// ProbeResult 单个端口的探测结果
// 超时、拒绝、网络错误统一归一化为 Reachable=false
type ProbeResult struct {
	Port      uint16 `json:"port"`
	Reachable bool   `json:"reachable"`
}

// ScanResult 完整扫描结果
type ScanResult struct {
	Target         string             `json:"target"`
	OriginalTarget string             `json:"original_target,omitempty"`
	HostStatus     string             `json:"host_status"`
	ScanTime       string             `json:"scan_time"`
	PortsScanned   int                `json:"ports_scanned"`
	OpenPorts      []uint16           `json:"open_ports"`
	Ports          []ProbeResult      `json:"ports"`
	DNS            *DNSAssessment     `json:"dns,omitempty"`
	Headers        *HeadersAssessment `json:"headers,omitempty"`
}

// DNSAssessment DNS记录与邮件安全策略评估
type DNSAssessment struct {
	Domain              string   `json:"domain"`
	ARecords            []string `json:"a_records"`
	AAAARecords         []string `json:"aaaa_records"`
	MXRecords           []string `json:"mx_records"`
	TXTRecords          []string `json:"txt_records"`
	SPFPresent          bool     `json:"spf_present"`
	SPFPolicy           string   `json:"spf_policy,omitempty"`
	SPFRecommendation   string   `json:"spf_recommendation,omitempty"`
	DMARCPresent        bool     `json:"dmarc_present"`
	DMARCPolicy         string   `json:"dmarc_policy,omitempty"`
	DMARCRecommendation string   `json:"dmarc_recommendation,omitempty"`
}

// HeaderFinding 单个安全响应头的检查结论
type HeaderFinding struct {
	Header         string `json:"header"`
	Present        bool   `json:"present"`
	Recommendation string `json:"recommendation,omitempty"`
}

// HeadersAssessment HTTP安全响应头评估
type HeadersAssessment struct {
	URL      string          `json:"url"`
	Findings []HeaderFinding `json:"findings"`
	Grade    string          `json:"grade"`
	Score    int             `json:"score"`
}

// ScanOptions 命令行扫描选项
type ScanOptions struct {
	Target       string
	PortRange    string
	TimeoutMS    int
	Concurrency  int
	OutputFile   string
	OutputFormat string // text, json, csv
	ConfigFile   string
	CheckDNS     bool
	CheckHeaders bool
	NoHistory    bool
	Recent       int
	Verbose      bool
}
