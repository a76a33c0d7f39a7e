package cli

import (
	"flag"
	"fmt"
	"os"

	"HunTianLing/internal/model"
)

type Parser struct {
	Options model.ScanOptions
}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse() error {
	var help bool

	flag.StringVar(&p.Options.Target, "target", "", "目标IP地址或域名")
	flag.StringVar(&p.Options.PortRange, "ports", "", "端口档位或范围 (top30, top100, all, 或 80,443,1-1000)")
	flag.IntVar(&p.Options.TimeoutMS, "timeout", 0, "单个探测超时时间(毫秒)")
	flag.IntVar(&p.Options.Concurrency, "concurrency", 0, "并发连接上限")
	flag.StringVar(&p.Options.OutputFile, "output", "", "输出文件")
	flag.StringVar(&p.Options.OutputFormat, "format", "text", "输出格式 (text, json, csv)")
	flag.StringVar(&p.Options.ConfigFile, "config", "", "YAML配置文件路径")
	flag.BoolVar(&p.Options.CheckDNS, "dns", false, "附加DNS记录与SPF/DMARC评估")
	flag.BoolVar(&p.Options.CheckHeaders, "headers", false, "附加HTTP安全响应头评估")
	flag.BoolVar(&p.Options.NoHistory, "no-history", false, "不记录扫描历史")
	flag.IntVar(&p.Options.Recent, "recent", 0, "显示最近N条扫描历史后退出")
	flag.BoolVar(&p.Options.Verbose, "verbose", false, "显示详细信息")
	flag.BoolVar(&help, "help", false, "显示帮助")

	flag.Parse()

	if help {
		p.printHelp()
		os.Exit(0)
	}

	if p.Options.Target == "" && p.Options.Recent == 0 {
		return fmt.Errorf("必须指定目标地址")
	}

	return nil
}

func (p *Parser) printHelp() {
	fmt.Println("混天绫 - Go语言端口可达性扫描工具")
	fmt.Println("")
	fmt.Println("使用方法: HunTianLing [选项]")
	fmt.Println("")
	fmt.Println("选项:")
	fmt.Println("  -target string       目标IP地址或域名")
	fmt.Println("  -ports string        端口档位或范围 (默认: top30)")
	fmt.Println("  -timeout int         单个探测超时时间(毫秒) (默认: 1000)")
	fmt.Println("  -concurrency int     并发连接上限 (默认: 200)")
	fmt.Println("  -output string       输出文件")
	fmt.Println("  -format string       输出格式 (text, json, csv) (默认: text)")
	fmt.Println("  -config string       YAML配置文件路径")
	fmt.Println("  -dns                 附加DNS记录与SPF/DMARC评估")
	fmt.Println("  -headers             附加HTTP安全响应头评估")
	fmt.Println("  -no-history          不记录扫描历史")
	fmt.Println("  -recent int          显示最近N条扫描历史后退出")
	fmt.Println("  -verbose             显示详细信息")
	fmt.Println("  -help                显示帮助")
	fmt.Println("")
	fmt.Println("示例:")
	fmt.Println("  HunTianLing -target 192.168.1.1 -ports 1-1000")
	fmt.Println("  HunTianLing -target example.com -ports top100 -dns -headers")
	fmt.Println("  HunTianLing -target example.com -output result.json -format json")
	fmt.Println("  HunTianLing -recent 10")
}
