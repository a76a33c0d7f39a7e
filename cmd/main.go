package main

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"HunTianLing/internal/config"
	"HunTianLing/internal/dnscheck"
	"HunTianLing/internal/history"
	"HunTianLing/internal/model"
	"HunTianLing/internal/scanner"
	"HunTianLing/internal/utils"
	"HunTianLing/internal/webcheck"
	"HunTianLing/pkg/cli"
)

func main() {
	// 解析命令行参数
	parser := cli.NewParser()
	if err := parser.Parse(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n\n", err)
		fmt.Fprintf(os.Stderr, "使用方法: %s -target <目标地址> [选项]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "使用 -help 查看完整帮助信息\n")
		os.Exit(1)
	}

	options := parser.Options
	logger := utils.NewLogger("main")

	// 加载配置，命令行参数优先于配置文件
	cfg := config.DefaultConfig()
	if options.ConfigFile != "" {
		loaded, err := config.LoadConfig(options.ConfigFile)
		if err != nil {
			logger.Error("加载配置失败: %v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	utils.SetLevel(cfg.Log.Level)
	if options.Verbose {
		utils.SetLevel("debug")
	}

	if options.TimeoutMS > 0 {
		cfg.Scan.TimeoutMS = options.TimeoutMS
	}
	if options.Concurrency > 0 {
		cfg.Scan.Concurrency = options.Concurrency
	}
	if options.PortRange != "" {
		cfg.Scan.Ports = options.PortRange
	}
	if options.CheckDNS {
		cfg.Checks.DNS = true
	}
	if options.CheckHeaders {
		cfg.Checks.Headers = true
	}
	if options.NoHistory {
		cfg.History.Enabled = false
	}

	// 历史查询模式
	if options.Recent > 0 {
		if err := printRecentScans(cfg.History.Path, options.Recent); err != nil {
			logger.Error("查询扫描历史失败: %v", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("启动混天绫扫描器 v1.0")

	// 处理目标地址
	target := extractHostname(options.Target)

	// 解析主机名获取IP
	var ips []string
	addrs, err := net.LookupHost(target)
	if err == nil && len(addrs) > 0 {
		ips = addrs
	}

	logger.Debug("扫描目标: %s", target)
	if len(ips) > 0 {
		logger.Debug("解析IP: %s", strings.Join(ips, ", "))
	}

	// 解析端口范围
	ports, err := scanner.ParsePortRange(cfg.Scan.Ports)
	if err != nil {
		logger.Error("解析端口范围失败: %v", err)
		os.Exit(1)
	}

	logger.Debug("超时时间: %dms, 并发数: %d, 端口数: %d",
		cfg.Scan.TimeoutMS, cfg.Scan.Concurrency, len(ports))

	// 执行扫描
	startTime := time.Now()
	engine := scanner.NewEngine()
	results, err := engine.Scan(context.Background(), model.ScanRequest{
		Host:        target,
		Ports:       ports,
		Timeout:     cfg.Scan.Timeout(),
		Concurrency: cfg.Scan.Concurrency,
	})
	if err != nil {
		logger.Error("扫描失败: %v", err)
		os.Exit(1)
	}
	duration := time.Since(startTime)

	var openPorts []uint16
	for _, r := range results {
		if r.Reachable {
			openPorts = append(openPorts, r.Port)
			logger.Debug("✅ 发现可达端口: %d (%s)", r.Port, model.ServiceName(r.Port))
		}
	}

	logger.Info("扫描完成，共探测 %d 个端口，%d 个可达，耗时 %v",
		len(results), len(openPorts), duration.Round(time.Millisecond))

	// 准备最终结果
	hostStatus := "在线"
	if len(ips) > 0 {
		hostStatus = "在线 (" + ips[0] + ")"
	}

	finalResult := model.ScanResult{
		Target:         target,
		OriginalTarget: options.Target,
		HostStatus:     hostStatus,
		ScanTime:       duration.Round(time.Millisecond).String(),
		PortsScanned:   len(results),
		OpenPorts:      openPorts,
		Ports:          results,
	}

	// 附加检查
	if cfg.Checks.DNS {
		logger.Info("执行DNS评估...")
		finalResult.DNS = dnscheck.NewChecker().Assess(target)
	}

	if cfg.Checks.Headers {
		logger.Info("执行HTTP安全响应头评估...")
		analyzer := webcheck.NewAnalyzer(cfg.Scan.Timeout() * 5)
		finalResult.Headers = analyzer.Analyze("https://" + target)
	}

	// 输出结果
	formatter := cli.NewOutputFormatter(options.OutputFormat)
	if err := formatter.PrintResult(finalResult, options.OutputFile); err != nil {
		logger.Error("输出结果失败: %v", err)
		os.Exit(1)
	}

	// 记录扫描历史
	if cfg.History.Enabled {
		if err := saveHistory(cfg.History.Path, target, startTime, duration, results); err != nil {
			logger.Warn("保存扫描历史失败: %v", err)
		}
	}
}

// extractHostname 从目标字符串中提取主机名，支持URL形式输入
func extractHostname(target string) string {
	if strings.Contains(target, "://") {
		parsedURL, err := url.Parse(target)
		if err == nil && parsedURL.Host != "" {
			hostname := parsedURL.Hostname()
			if hostname != "" {
				return hostname
			}
		}
	}

	// 移除可能的路径部分
	if idx := strings.Index(target, "/"); idx != -1 {
		return target[:idx]
	}

	return target
}

func saveHistory(path, target string, startedAt time.Time, duration time.Duration, results []model.ProbeResult) error {
	store, err := history.NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveScan(target, startedAt, duration, results)
	return err
}

func printRecentScans(path string, limit int) error {
	store, err := history.NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.RecentScans(limit)
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Println("暂无扫描历史")
		return nil
	}

	fmt.Printf("📜 最近 %d 条扫描记录:\n", len(summaries))
	for _, s := range summaries {
		fmt.Printf("  #%d  %s  %s  探测%d个端口, %d个可达, 耗时%dms\n",
			s.ID, s.StartedAt.Format("2006-01-02 15:04:05"), s.Target,
			s.PortsTotal, s.PortsOpen, s.DurationMS)
	}

	return nil
}
