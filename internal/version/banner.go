package version

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const banner = `
  ___ _               ___    _ _ _
 / __| |_  __ _ _ _  | __|__| (_) |_
| (__| ' \/ _' | ' \ | _|/ _' | |  _|
 \___|_||_\__,_|_||_||___\__,_|_|\__|
`

// ANSI 颜色码
const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

// PrintBanner 打印 Banner 与版本信息到 stderr
func PrintBanner() {
	writeBanner(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), "")
}

// PrintBannerWithRegistry 打印 Banner，并附带当前注册中心地址
func PrintBannerWithRegistry(registryURL string) {
	writeBanner(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), registryURL)
}

// writeBanner 非终端不输出颜色
func writeBanner(w io.Writer, color bool, registryURL string) {
	if color {
		fmt.Fprintf(w, "%s%s%s", colorCyan, banner, colorReset)
		fmt.Fprintf(w, "  %sChannel Registry Editor%s\n\n", colorYellow, colorReset)
		fmt.Fprintf(w, "%-14s %s%s%s\n", "Version:", colorGreen, Version, colorReset)
		fmt.Fprintf(w, "%-14s %s%s%s\n", "Commit:", colorGreen, Commit, colorReset)
		fmt.Fprintf(w, "%-14s %s%s%s\n", "Build Time:", colorGreen, BuildTime, colorReset)
		if registryURL != "" {
			fmt.Fprintf(w, "%-14s %s%s%s\n", "Registry:", colorGreen, registryURL, colorReset)
		}
		fmt.Fprintln(w)
		return
	}
	fmt.Fprint(w, banner)
	fmt.Fprintf(w, "  Channel Registry Editor\n\n")
	fmt.Fprintf(w, "%-14s %s\n", "Version:", Version)
	fmt.Fprintf(w, "%-14s %s\n", "Commit:", Commit)
	fmt.Fprintf(w, "%-14s %s\n", "Build Time:", BuildTime)
	if registryURL != "" {
		fmt.Fprintf(w, "%-14s %s\n", "Registry:", registryURL)
	}
	fmt.Fprintln(w)
}
