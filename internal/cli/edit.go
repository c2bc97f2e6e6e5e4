package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chanedit/internal/app"
	apperrors "chanedit/internal/errors"
	"chanedit/internal/model"
	"chanedit/internal/util"
)

// draftFlags create / edit / batch-proxy 共用的草稿参数
type draftFlags struct {
	file      string   // 线上格式JSON文件
	sets      []string // field=value
	fill      string   // none|basic|all
	addModels []string
	noPrompt  bool
}

func (f *draftFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "从JSON文件读取草稿（线上格式）")
	fl.StringArrayVar(&f.sets, "set", nil, "设置字段，格式 field=value，可重复；可用字段: "+fieldNames())
	fl.StringVar(&f.fill, "fill", "", "按注册中心模型目录填充模型: none|basic|all")
	fl.StringArrayVar(&f.addModels, "add-model", nil, "追加自定义模型，可重复")
	fl.BoolVar(&f.noPrompt, "no-prompt", false, "密钥为空时不在终端提示输入")
}

var (
	createFlags draftFlags
	editFlags   draftFlags
)

// createCmd 创建渠道
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "创建渠道",
	Long: `创建单个渠道。草稿可来自 -f 文件，再由 --set 覆盖，例如:

  chanedit create --set name=azure-east --set type=3 --set base_url=https://east.openai.azure.com/ --fill basic`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, cleanup := newEnvironment(cmd.OutOrStdout())
		defer cleanup()
		return runEditor(cmd.Context(), env, nil, &createFlags, "")
	},
}

// editCmd 编辑渠道
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "编辑渠道",
	Long:  `读取已有渠道，应用 -f / --set 修改后提交更新。`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		env, cleanup := newEnvironment(cmd.OutOrStdout())
		defer cleanup()
		return runEditor(cmd.Context(), env, &id, &editFlags, "")
	},
}

func init() {
	createFlags.register(createCmd)
	editFlags.register(editCmd)
	rootCmd.AddCommand(createCmd, editCmd)
}

// runEditor 打开会话 → 应用参数 → 提交
// proxyText 非空时进入批量代理模式
func runEditor(ctx context.Context, env *environment, id *int64, flags *draftFlags, proxyText string) error {
	session, err := app.OpenSession(ctx, env.registry, id, env.reporter)
	if err != nil {
		return err
	}
	if err := applyDraftFlags(session, flags); err != nil {
		return err
	}
	if proxyText != "" {
		if err := session.SetBatchProxy(proxyText); err != nil {
			return err
		}
	}
	if !session.IsEdit() && session.Draft().Key == "" && !flags.noPrompt {
		if key, ok := promptKey(session.KeyPrompt()); ok {
			_ = session.Update(model.FieldKey, key)
		}
	}

	closed := false
	host := app.HostFuncs{
		RefreshFn: func() { util.SafePrintf("[INFO] 注册中心渠道列表已变更") },
		CloseFn:   func() { closed = true },
	}
	coordinator := app.NewCoordinator(env.registry, env.reporter, host, env.recorder())

	report, err := session.Submit(ctx, coordinator)
	if err != nil {
		return err
	}
	if session.BatchProxy() || len(report.Items) > 1 {
		renderReport(env.out, report)
	}
	if !closed || report.Failed() > 0 {
		return fmt.Errorf("%d of %d submissions failed", report.Failed(), len(report.Items))
	}
	return nil
}

// applyDraftFlags 顺序: 文件 → --set → --fill → --add-model
func applyDraftFlags(s *app.Session, flags *draftFlags) error {
	if flags.file != "" {
		data, err := readInput(flags.file)
		if err != nil {
			return err
		}
		if err := s.ApplyJSON(data); err != nil {
			return err
		}
	}
	for _, raw := range flags.sets {
		field, value, ok := util.ParseAssignment(raw)
		if !ok {
			return apperrors.InvalidFieldError(raw, "expected field=value")
		}
		if err := s.UpdateNamed(field, value); err != nil {
			return err
		}
	}
	fill := strings.ToLower(flags.fill)
	if (fill == "basic" || fill == "all") && len(s.ModelCatalog()) == 0 {
		util.SafePrintf("[WARN] 注册中心模型目录为空，--fill %s 不会选中任何模型", flags.fill)
	}
	switch fill {
	case "":
	case "none":
		s.ClearModels()
	case "basic":
		s.FillBasicModels()
	case "all":
		s.FillAllModels()
	default:
		return apperrors.InvalidFieldError("fill", fmt.Sprintf("unknown fill mode %q (none|basic|all)", flags.fill))
	}
	for _, m := range flags.addModels {
		s.AddCustomModel(m)
	}
	if d := s.Draft(); d.Other != "" && s.VisibleCapabilities()&util.CapOther == 0 {
		util.SafePrintf("[WARN] 渠道类型 %d 不使用 other 字段，该值仍会原样提交", int(d.Type))
	}
	return nil
}

func fieldNames() string {
	names := make([]string, 0, 17)
	for _, f := range model.AllFields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// readInput 读取文件，"-" 表示标准输入
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path) //nolint:gosec // G304: 路径由操作员在命令行指定
}

// promptKey 终端上以不回显方式读取密钥
func promptKey(prompt string) (string, bool) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", false
	}
	fmt.Fprintf(os.Stderr, "Key (%s): ", prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(raw))
	return key, key != ""
}
