package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/betbot/periodcount/pkg/config"
	"github.com/betbot/periodcount/pkg/logger"
	"github.com/betbot/periodcount/pkg/periods"
	"github.com/betbot/periodcount/pkg/report"
	"github.com/betbot/periodcount/pkg/scenario"
)

// builtinCases 内置示例（含两个非法输入，用于展示错误信息）
var builtinCases = []scenario.Case{
	{Name: "Example 1", Deltas: []int32{3, -1, -4, 6, 2}, Low: 2, High: 5},
	{Name: "Example 2", Deltas: []int32{-2, 3, 1, -5, 4}, Low: -1, High: 2},
	{Name: "Empty array test", Deltas: []int32{}, Low: 1, High: 5},
	{Name: "Single element test", Deltas: []int32{3}, Low: 2, High: 5},
	{Name: "Nil sequence test", Deltas: nil, Low: 1, High: 5},
	{Name: "Inverted range test", Deltas: []int32{1, 2, 3}, Low: 5, High: 2},
}

func main() {
	// Load .env (best-effort). If missing, fall back to real env vars.
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("periodcount", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath   = fs.String("config", "", "config file (.yaml/.yml/.json)")
		scenarioPath = fs.String("scenarios", "", "scenario file (.yaml/.yml), overrides config")
		algorithm    = fs.String("algorithm", "", "counting algorithm: scan | mergesort, overrides config")
		logLevel     = fs.String("log-level", "", "log level, overrides config")
		noColor      = fs.Bool("no-color", false, "disable styled output")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "加载配置失败: %v\n", err)
		return 1
	}
	if *scenarioPath != "" {
		cfg.ScenarioFile = *scenarioPath
	}
	if *algorithm != "" {
		alg, err := periods.ParseAlgorithm(*algorithm)
		if err != nil {
			fmt.Fprintf(stderr, "参数错误: %v\n", err)
			return 2
		}
		cfg.Algorithm = alg
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *noColor {
		cfg.Color = false
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
		MaxSize:    100, // 100MB
		MaxBackups: 3,
		MaxAge:     7, // 7天
		Compress:   true,
		Console:    stderr,
		NoColor:    !cfg.Color,
	}); err != nil {
		fmt.Fprintf(stderr, "初始化日志失败: %v\n", err)
		return 1
	}

	log := logger.WithFields(logrus.Fields{
		"run_id":    uuid.NewString(),
		"algorithm": cfg.Algorithm,
	})

	cases := append([]scenario.Case(nil), builtinCases...)
	if cfg.ScenarioFile != "" {
		f, err := scenario.Load(cfg.ScenarioFile)
		if err != nil {
			log.Errorf("加载场景文件失败: %v", err)
			return 1
		}
		extra, err := f.Cases()
		if err != nil {
			log.Errorf("场景换算失败: %v", err)
			return 1
		}
		log.Infof("已加载 %d 个场景: %s", len(extra), cfg.ScenarioFile)
		cases = append(cases, extra...)
	}

	results := evaluate(cfg.Algorithm, cases, log)
	fmt.Fprint(stdout, report.Render(results, cfg.Color))
	return 0
}

// evaluate 逐个计数；参数错误记录到结果里，不中断后续用例
func evaluate(alg periods.Algorithm, cases []scenario.Case, log *logrus.Entry) []report.Result {
	results := make([]report.Result, 0, len(cases))
	for _, c := range cases {
		count, err := periods.Count(alg, c.Deltas, c.Low, c.High)
		entry := log.WithFields(logrus.Fields{"case": c.Name, "n": len(c.Deltas), "low": c.Low, "high": c.High})
		if err != nil {
			entry.Warnf("参数非法: %v", err)
		} else {
			entry.Debugf("count=%d", count)
		}
		results = append(results, report.Result{
			Name:   c.Name,
			Deltas: c.Deltas,
			Low:    c.Low,
			High:   c.High,
			Count:  count,
			Err:    err,
		})
	}
	return results
}
