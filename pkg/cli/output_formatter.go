package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"HunTianLing/internal/model"
)

type OutputFormatter struct {
	format string
}

func NewOutputFormatter(format string) *OutputFormatter {
	return &OutputFormatter{format: format}
}

func (of *OutputFormatter) PrintResult(result model.ScanResult, outputFile string) error {
	var output string

	switch strings.ToLower(of.format) {
	case "json":
		output = of.formatJSON(result)
	case "csv":
		output = of.formatCSV(result)
	default:
		output = of.formatText(result)
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(output), 0644)
	}

	fmt.Print(output)
	return nil
}

// formatText 终端友好的文本输出
func (of *OutputFormatter) formatText(result model.ScanResult) string {
	var builder strings.Builder

	builder.WriteString("\n📡 混天绫端口扫描器 v1.0\n")
	builder.WriteString(strings.Repeat("═", 60) + "\n")

	builder.WriteString(fmt.Sprintf("目标: %s\n", result.Target))
	builder.WriteString(fmt.Sprintf("状态: %s\n", result.HostStatus))
	builder.WriteString(fmt.Sprintf("耗时: %s\n\n", result.ScanTime))

	openCount := len(result.OpenPorts)
	closedCount := result.PortsScanned - openCount
	builder.WriteString(fmt.Sprintf("📊 端口统计: 共探测(%d) | 可达(%d) | 不可达(%d)\n\n",
		result.PortsScanned, openCount, closedCount))

	if openCount == 0 {
		builder.WriteString("❌ 未发现可达端口\n")
	} else {
		builder.WriteString("🔍 可达端口:\n")
		builder.WriteString(strings.Repeat("─", 60) + "\n")

		w := tabwriter.NewWriter(&builder, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "端口\t状态\t服务")

		for _, port := range sortedOpenPorts(result) {
			fmt.Fprintf(w, "%d/tcp\t✅ 可达\t%s\n", port, model.ServiceName(port))
		}
		w.Flush()
	}

	if result.DNS != nil {
		builder.WriteString(of.formatDNSSection(result.DNS))
	}

	if result.Headers != nil {
		builder.WriteString(of.formatHeadersSection(result.Headers))
	}

	builder.WriteString("\n")
	return builder.String()
}

func (of *OutputFormatter) formatDNSSection(dns *model.DNSAssessment) string {
	var builder strings.Builder

	builder.WriteString("\n🌐 DNS评估:\n")
	builder.WriteString(strings.Repeat("─", 60) + "\n")

	if len(dns.ARecords) > 0 {
		builder.WriteString(fmt.Sprintf("A记录:    %s\n", strings.Join(dns.ARecords, ", ")))
	}
	if len(dns.AAAARecords) > 0 {
		builder.WriteString(fmt.Sprintf("AAAA记录: %s\n", strings.Join(dns.AAAARecords, ", ")))
	}
	if len(dns.MXRecords) > 0 {
		builder.WriteString(fmt.Sprintf("MX记录:   %s\n", strings.Join(dns.MXRecords, ", ")))
	}

	if dns.SPFPresent {
		builder.WriteString(fmt.Sprintf("SPF:      已配置 (%s)\n", dns.SPFPolicy))
	} else {
		builder.WriteString("SPF:      ⚠️ 未配置\n")
	}
	if dns.SPFRecommendation != "" {
		builder.WriteString(fmt.Sprintf("          %s\n", dns.SPFRecommendation))
	}

	if dns.DMARCPresent {
		builder.WriteString(fmt.Sprintf("DMARC:    已配置 (p=%s)\n", dns.DMARCPolicy))
	} else {
		builder.WriteString("DMARC:    ⚠️ 未配置\n")
	}
	if dns.DMARCRecommendation != "" {
		builder.WriteString(fmt.Sprintf("          %s\n", dns.DMARCRecommendation))
	}

	return builder.String()
}

func (of *OutputFormatter) formatHeadersSection(headers *model.HeadersAssessment) string {
	var builder strings.Builder

	builder.WriteString("\n🔒 HTTP安全响应头评估:\n")
	builder.WriteString(strings.Repeat("─", 60) + "\n")
	builder.WriteString(fmt.Sprintf("地址: %s\n", headers.URL))
	builder.WriteString(fmt.Sprintf("评级: %s (%d/100)\n", headers.Grade, headers.Score))

	for _, f := range headers.Findings {
		if f.Recommendation == "" {
			builder.WriteString(fmt.Sprintf("  ✅ %s\n", f.Header))
		} else {
			builder.WriteString(fmt.Sprintf("  ⚠️ %s: %s\n", f.Header, f.Recommendation))
		}
	}

	return builder.String()
}

func (of *OutputFormatter) formatJSON(result model.ScanResult) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": "%v"}`, err)
	}
	return string(data) + "\n"
}

func (of *OutputFormatter) formatCSV(result model.ScanResult) string {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	w.Write([]string{"target", "port", "reachable", "service"})
	for _, p := range result.Ports {
		w.Write([]string{
			result.Target,
			strconv.Itoa(int(p.Port)),
			strconv.FormatBool(p.Reachable),
			model.ServiceName(p.Port),
		})
	}

	w.Flush()
	return builder.String()
}

// sortedOpenPorts 返回升序排列的可达端口（去重，仅用于展示）
func sortedOpenPorts(result model.ScanResult) []uint16 {
	seen := make(map[uint16]bool)
	var ports []uint16
	for _, p := range result.OpenPorts {
		if !seen[p] {
			seen[p] = true
			ports = append(ports, p)
		}
	}

	for i := 0; i < len(ports)-1; i++ {
		for j := i + 1; j < len(ports); j++ {
			if ports[i] > ports[j] {
				ports[i], ports[j] = ports[j], ports[i]
			}
		}
	}

	return ports
}
