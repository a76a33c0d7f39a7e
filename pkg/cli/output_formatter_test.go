package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"HunTianLing/internal/model"
)

func sampleResult() model.ScanResult {
	return model.ScanResult{
		Target:       "example.com",
		HostStatus:   "在线 (93.184.216.34)",
		ScanTime:     "1.2s",
		PortsScanned: 3,
		OpenPorts:    []uint16{443, 80},
		Ports: []model.ProbeResult{
			{Port: 443, Reachable: true},
			{Port: 80, Reachable: true},
			{Port: 8080, Reachable: false},
		},
	}
}

func TestFormatJSON(t *testing.T) {
	formatter := NewOutputFormatter("json")
	output := formatter.formatJSON(sampleResult())

	var decoded model.ScanResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("JSON输出无法解析: %v", err)
	}
	if decoded.Target != "example.com" {
		t.Errorf("期望目标为 example.com, 实际得到 %s", decoded.Target)
	}
	if len(decoded.Ports) != 3 {
		t.Errorf("期望3条端口结果, 实际得到 %d", len(decoded.Ports))
	}
	if len(decoded.OpenPorts) != 2 {
		t.Errorf("期望2个可达端口, 实际得到 %d", len(decoded.OpenPorts))
	}
}

func TestFormatCSV(t *testing.T) {
	formatter := NewOutputFormatter("csv")
	output := formatter.formatCSV(sampleResult())

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 4 {
		t.Fatalf("期望表头加3条数据共4行, 实际得到 %d", len(lines))
	}
	if lines[0] != "target,port,reachable,service" {
		t.Errorf("表头不匹配: %s", lines[0])
	}
	if !strings.Contains(lines[1], "443") || !strings.Contains(lines[1], "true") {
		t.Errorf("第一条数据应为端口443可达: %s", lines[1])
	}
}

func TestFormatTextContainsSummary(t *testing.T) {
	formatter := NewOutputFormatter("text")
	output := formatter.formatText(sampleResult())

	for _, fragment := range []string{"example.com", "共探测(3)", "可达(2)", "80/tcp", "443/tcp", "HTTPS"} {
		if !strings.Contains(output, fragment) {
			t.Errorf("文本输出应包含 %q", fragment)
		}
	}

	// 可达端口按升序展示
	if strings.Index(output, "80/tcp") > strings.Index(output, "443/tcp") {
		t.Error("可达端口应升序展示")
	}
}

func TestFormatTextNoOpenPorts(t *testing.T) {
	result := sampleResult()
	result.OpenPorts = nil
	result.Ports = []model.ProbeResult{{Port: 8080, Reachable: false}}
	result.PortsScanned = 1

	output := NewOutputFormatter("text").formatText(result)
	if !strings.Contains(output, "未发现可达端口") {
		t.Error("无可达端口时应有相应提示")
	}
}

func TestPrintResultWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")

	formatter := NewOutputFormatter("json")
	if err := formatter.PrintResult(sampleResult(), path); err != nil {
		t.Fatalf("写入输出文件失败: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取输出文件失败: %v", err)
	}

	var decoded model.ScanResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("输出文件不是合法JSON: %v", err)
	}
}

func TestSortedOpenPortsDedupes(t *testing.T) {
	result := model.ScanResult{OpenPorts: []uint16{443, 80, 443, 22}}

	ports := sortedOpenPorts(result)
	expected := []uint16{22, 80, 443}
	if len(ports) != len(expected) {
		t.Fatalf("期望 %d 个端口, 实际得到 %d", len(expected), len(ports))
	}
	for i, p := range expected {
		if ports[i] != p {
			t.Errorf("位置 %d 期望 %d, 实际得到 %d", i, p, ports[i])
		}
	}
}
