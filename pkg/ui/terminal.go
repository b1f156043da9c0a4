// Package ui handles terminal output: the startup banner, status lines, and
// the scan report. Everything here is presentation only.
package ui

import "fmt"

const logo = `
  _                _       _
 (_) __ _  ___  __(_)_ __ | |_
 | |/ _` + "`" + ` |/ _ \/ __| | '_ \| __|
 | | (_| | (_) \__ \ | | | | |_
 |_|\__, |\___/|___/_|_| |_|\__|
    |___/
`

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

func Cyan(s string) string    { return colorCyan + s + colorReset }
func Green(s string) string   { return colorGreen + s + colorReset }
func Yellow(s string) string  { return colorYellow + s + colorReset }
func Red(s string) string     { return colorRed + s + colorReset }
func Magenta(s string) string { return colorMagenta + s + colorReset }
func Bold(s string) string    { return colorBold + s + colorReset }

// PrintLogo prints the startup banner.
func PrintLogo() {
	fmt.Print(Magenta(logo))
	fmt.Println(Cyan("  Instagram profile OSINT"))
	fmt.Println()
}

// PrintInfo prints an informational status line.
func PrintInfo(format string, args ...interface{}) {
	fmt.Printf(Cyan("[*] ")+format+"\n", args...)
}

// PrintSuccess prints a success status line.
func PrintSuccess(format string, args ...interface{}) {
	fmt.Printf(Green("[+] ")+format+"\n", args...)
}

// PrintWarning prints a warning status line.
func PrintWarning(format string, args ...interface{}) {
	fmt.Printf(Yellow("[!] ")+format+"\n", args...)
}

// PrintError prints an error status line.
func PrintError(format string, args ...interface{}) {
	fmt.Printf(Red("[x] ")+format+"\n", args...)
}
