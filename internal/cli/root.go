// Package cli 命令行入口（cobra）
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chanedit/internal/app"
	"chanedit/internal/config"
	"chanedit/internal/registry"
	"chanedit/internal/storage"
	"chanedit/internal/util"
	"chanedit/internal/version"
)

var (
	flagRegistry string
	flagToken    string
	flagNoBanner bool
	flagOutput   string

	cfg *config.EnvConfig
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:           "chanedit",
	Short:         "渠道注册中心编辑工具",
	Long:          `定义和维护网关渠道注册中心中的渠道记录：单条创建/编辑，以及按代理列表批量创建。`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadFromEnv()
		if err != nil {
			return err
		}
		if flagRegistry != "" {
			loaded.RegistryURL = flagRegistry
		}
		if flagToken != "" {
			loaded.AccessToken = flagToken
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		if !flagNoBanner && !cfg.NoBanner && cmd.Name() != "types" {
			version.PrintBannerWithRegistry(cfg.RegistryURL)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagRegistry, "registry", "", "注册中心地址（覆盖 CHANEDIT_REGISTRY_URL）")
	pf.StringVar(&flagToken, "token", "", "访问令牌（覆盖 CHANEDIT_ACCESS_TOKEN）")
	pf.BoolVar(&flagNoBanner, "no-banner", false, "不打印启动 Banner")
	pf.StringVarP(&flagOutput, "output", "o", "table", "输出格式: table|json")
}

// Execute 执行根命令
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// environment 一次命令执行所需的协作方
type environment struct {
	registry registry.Registry
	journal  storage.Journal // 可为nil
	reporter app.Reporter
	out      io.Writer
}

// newEnvironment 按配置构建协作方；journal 打开失败只告警
func newEnvironment(out io.Writer) (*environment, func()) {
	env := &environment{
		registry: registry.NewClientFromConfig(cfg),
		reporter: newReporter(out),
		out:      out,
	}

	j, err := storage.NewJournal(cfg)
	if err != nil {
		util.SafePrintf("[WARN] 提交日志不可用: %v", err)
	}
	if j != nil {
		env.journal = j
	}
	return env, func() {
		if env.journal != nil {
			_ = env.journal.Close()
		}
	}
}

// recorder journal 为nil时返回 nil 接口（避免 typed-nil）
func (e *environment) recorder() app.Recorder {
	if e.journal == nil {
		return nil
	}
	return e.journal
}

// newReporter 终端输出彩色消息，非终端走日志
func newReporter(out io.Writer) app.Reporter {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &consoleReporter{w: out, color: true}
	}
	if out == os.Stdout {
		return app.LogReporter{}
	}
	return &consoleReporter{w: out}
}

func writeJSON(w io.Writer, v any) error {
	s, err := util.MarshalJSON(v)
	if err != nil {
		return err
	}
	indented, err := util.IndentJSON(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, indented)
	return err
}
