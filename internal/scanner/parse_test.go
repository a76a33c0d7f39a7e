package scanner

import (
	"testing"

	"HunTianLing/internal/model"
)

func TestParsePortRangeDefault(t *testing.T) {
	ports, err := ParsePortRange("")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(ports) != len(model.Top30Ports) {
		t.Errorf("未指定端口时应返回top30, 期望 %d 个, 实际得到 %d", len(model.Top30Ports), len(ports))
	}
}

func TestParsePortRangeProfiles(t *testing.T) {
	for _, keyword := range []string{"top30", "common", "default", "TOP30"} {
		ports, err := ParsePortRange(keyword)
		if err != nil {
			t.Fatalf("解析档位 %s 失败: %v", keyword, err)
		}
		if len(ports) != len(model.Top30Ports) {
			t.Errorf("档位 %s 应返回 %d 个端口, 实际得到 %d", keyword, len(model.Top30Ports), len(ports))
		}
	}

	top100, err := ParsePortRange("top100")
	if err != nil {
		t.Fatalf("解析top100失败: %v", err)
	}
	if len(top100) <= len(model.Top30Ports) {
		t.Errorf("top100应包含多于top30的端口, 实际得到 %d", len(top100))
	}

	all, err := ParsePortRange("all")
	if err != nil {
		t.Fatalf("解析all失败: %v", err)
	}
	if len(all) != 65535 {
		t.Errorf("all档位应返回65535个端口, 实际得到 %d", len(all))
	}
}

func TestParsePortRangeList(t *testing.T) {
	ports, err := ParsePortRange("80,443,8000-8002")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	expected := []uint16{80, 443, 8000, 8001, 8002}
	if len(ports) != len(expected) {
		t.Fatalf("期望 %d 个端口, 实际得到 %d", len(expected), len(ports))
	}
	for i, p := range expected {
		if ports[i] != p {
			t.Errorf("位置 %d 期望端口 %d, 实际得到 %d", i, p, ports[i])
		}
	}
}

func TestParsePortRangePreservesDuplicates(t *testing.T) {
	ports, err := ParsePortRange("80,80,443")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(ports) != 3 {
		t.Errorf("重复端口应按出现次数保留, 期望3个, 实际得到 %d", len(ports))
	}
}

func TestParsePortRangeInvalid(t *testing.T) {
	invalid := []string{"0", "65536", "abc", "10-5", "1-2-3", "-100", ","}
	for _, expr := range invalid {
		if _, err := ParsePortRange(expr); err == nil {
			t.Errorf("表达式 %q 应解析失败", expr)
		}
	}
}
