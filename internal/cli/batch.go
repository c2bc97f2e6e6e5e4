package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	batchFlags   draftFlags
	batchProxies string
)

// batchProxyCmd 按代理列表批量创建
var batchProxyCmd = &cobra.Command{
	Use:   "batch-proxy",
	Short: "按代理列表批量创建渠道",
	Long: `以当前草稿为模板，为代理列表中的每一行创建一个渠道。
每行格式为 "名称,地址"，名称可省略（自动生成 "Channel for <地址>"）。
任意一行格式错误时不提交任何渠道；单个渠道创建失败不影响其余渠道。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if batchProxies == "" {
			return fmt.Errorf("--proxies is required")
		}
		data, err := readInput(batchProxies)
		if err != nil {
			return err
		}
		env, cleanup := newEnvironment(cmd.OutOrStdout())
		defer cleanup()
		return runEditor(cmd.Context(), env, nil, &batchFlags, string(data))
	},
}

func init() {
	batchFlags.register(batchProxyCmd)
	batchProxyCmd.Flags().StringVarP(&batchProxies, "proxies", "p", "", "代理列表文件（- 表示标准输入）")
	rootCmd.AddCommand(batchProxyCmd)
}
