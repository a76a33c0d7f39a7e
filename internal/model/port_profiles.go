package model

// Top30Ports 最常见的30个端口（默认扫描集）
var Top30Ports = []uint16{
	21, 22, 23, 25, 53, 80, 110, 111, 135, 139,
	143, 443, 445, 993, 995, 1723, 3306, 3389, 5900, 8080,
	8443, 8000, 6379, 27017, 5432, 1521, 5000, 11211, 9200, 25565,
}

// top100Extra 扩展端口集合，与Top30合并后构成top100档位
var top100Extra = []uint16{
	19, 37, 49, 88, 161, 162, 389, 636, 873, 1025,
	1433, 2049, 2082, 2083, 2086, 2087, 2483, 2484, 3268, 3269,
	4444, 5001, 5060, 5222, 5985, 5986, 6380, 8081, 9000, 9090,
	9300, 27018, 27019,
}

// Top100Ports 返回top100档位端口（升序去重）
func Top100Ports() []uint16 {
	seen := make(map[uint16]bool)
	var ports []uint16
	for _, p := range Top30Ports {
		if !seen[p] {
			seen[p] = true
			ports = append(ports, p)
		}
	}
	for _, p := range top100Extra {
		if !seen[p] {
			seen[p] = true
			ports = append(ports, p)
		}
	}

	// 升序排序
	for i := 0; i < len(ports)-1; i++ {
		for j := i + 1; j < len(ports); j++ {
			if ports[i] > ports[j] {
				ports[i], ports[j] = ports[j], ports[i]
			}
		}
	}

	return ports
}

// WellKnownServices 常见端口到服务名的映射（仅用于结果展示，不做协议探测）
var WellKnownServices = map[uint16]string{
	21:    "FTP",
	22:    "SSH",
	23:    "Telnet",
	25:    "SMTP",
	53:    "DNS",
	80:    "HTTP",
	110:   "POP3",
	111:   "RPC",
	135:   "MSRPC",
	139:   "NetBIOS-SSN",
	143:   "IMAP",
	161:   "SNMP",
	389:   "LDAP",
	443:   "HTTPS",
	445:   "SMB",
	993:   "IMAPS",
	995:   "POP3S",
	1433:  "MSSQL",
	1521:  "Oracle",
	1723:  "PPTP",
	3306:  "MySQL",
	3389:  "RDP",
	5000:  "UPnP",
	5432:  "PostgreSQL",
	5900:  "VNC",
	6379:  "Redis",
	8000:  "HTTP-Alt",
	8080:  "HTTP-Proxy",
	8443:  "HTTPS-Alt",
	9200:  "Elasticsearch",
	11211: "Memcached",
	25565: "Minecraft",
	27017: "MongoDB",
}

// ServiceName 返回端口对应的服务名，未知端口返回 unknown
func ServiceName(port uint16) string {
	if name, ok := WellKnownServices[port]; ok {
		return name
	}
	return "unknown"
}
