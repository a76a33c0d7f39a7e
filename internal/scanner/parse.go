package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"HunTianLing/internal/model"
)

// ParsePortRange 解析端口范围表达式
// 支持档位关键字 (top30/top100/common/all) 与逗号分隔的端口及区间，
// 如 "80,443,8000-8010"。重复端口按出现次数保留，不去重
func ParsePortRange(portRange string) ([]uint16, error) {
	if portRange == "" {
		return model.Top30Ports, nil
	}

	switch strings.ToLower(portRange) {
	case "top30", "common", "default":
		return model.Top30Ports, nil
	case "top100":
		return model.Top100Ports(), nil
	case "all":
		allPorts := make([]uint16, 0, 65535)
		for port := 1; port <= 65535; port++ {
			allPorts = append(allPorts, uint16(port))
		}
		return allPorts, nil
	}

	var ports []uint16

	parts := strings.Split(portRange, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			rangeParts := strings.Split(part, "-")
			if len(rangeParts) != 2 {
				return nil, fmt.Errorf("无效的端口范围: %s", part)
			}

			start, err := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			if err != nil {
				return nil, fmt.Errorf("无效的起始端口: %s", rangeParts[0])
			}

			end, err := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err != nil {
				return nil, fmt.Errorf("无效的结束端口: %s", rangeParts[1])
			}

			if start > end {
				return nil, fmt.Errorf("起始端口不能大于结束端口: %s", part)
			}

			if start < 1 || end > 65535 {
				return nil, fmt.Errorf("端口范围必须在 1-65535 之间: %s", part)
			}

			for port := start; port <= end; port++ {
				ports = append(ports, uint16(port))
			}
		} else {
			port, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("无效的端口号: %s", part)
			}

			if port < 1 || port > 65535 {
				return nil, fmt.Errorf("端口号必须在 1-65535 之间: %d", port)
			}

			ports = append(ports, uint16(port))
		}
	}

	if len(ports) == 0 {
		return nil, fmt.Errorf("端口表达式为空: %s", portRange)
	}

	return ports, nil
}
