package app

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var bannerArt = []string{
	"╔═══════════════════════════════════════════════════════════════╗",
	"║      _____                 _ _      _       _     _           ║",
	"║     | ____|_ __ ___   __ _(_) |    / \\   __| | __| |_ __      ║",
	"║     |  _| | '_ ` _ \\ / _` | | |   / _ \\ / _` |/ _` | '__|     ║",
	"║     | |___| | | | | | (_| | | |  / ___ \\ (_| | (_| | |        ║",
	"║     |_____|_| |_| |_|\\__,_|_|_| /_/   \\_\\__,_|\\__,_|_|        ║",
	"║                                                               ║",
	"║               _____      _                  _                 ║",
	"║              | ____|_  _| |_ _ __ __ _  ___| |_               ║",
	"║              |  _| \\ \\/ / __| '__/ _` |/ __| __|              ║",
	"║              | |___ >  <| |_| | | (_| | (__| |_               ║",
	"║              |_____/_/\\_\\\\__|_|  \\__,_|\\___|\\__|              ║",
	"║                                                               ║",
}

const (
	bannerEmpty  = "║                                                               ║"
	bannerBottom = "╚═══════════════════════════════════════════════════════════════╝"
	bannerWidth  = 63
)

// Reporter prints the banner and the progress lines of a run. Version is
// fixed when the Reporter is built and never changes afterwards.
type Reporter struct {
	Out     io.Writer
	Version string
}

// NewReporter returns a Reporter stamped with BuildVersion.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out, Version: BuildVersion}
}

// Banner prints the boxed title with the version centered on its own row.
func (r *Reporter) Banner() {
	r.Blank()
	for _, l := range bannerArt {
		r.println(l)
	}
	r.println(versionRow(r.Version))
	r.println(bannerEmpty)
	r.println(bannerBottom)
}

func versionRow(version string) string {
	v := "v" + version
	n := utf8.RuneCountInString(v)
	if n >= bannerWidth {
		return "║" + v + "║"
	}
	left := (bannerWidth - n) / 2
	right := bannerWidth - n - left
	return "║" + strings.Repeat(" ", left) + v + strings.Repeat(" ", right) + "║"
}

// InputPath prints the selected input path. It runs before the input's
// metadata is read.
func (r *Reporter) InputPath(input string) {
	r.Blank()
	r.printf("Input file: %s\n", input)
}

// InputInfo prints the input size in bytes and the output path.
func (r *Reporter) InputInfo(size int64, output string) {
	r.printf("Input file size: %d\n", size)
	r.printf("Output file: %s\n", output)
	r.Blank()
}

func (r *Reporter) Extracting() { r.println("Extracting email addresses from input file...") }

func (r *Reporter) Extracted(n int) { r.printf("%d email addresses extracted\n", n) }

func (r *Reporter) Writing() { r.println("Writing results to file...") }

func (r *Reporter) Written(path string) {
	r.printf("Email addresses written to output file '%s' successfully\n", path)
}

func (r *Reporter) Blank() { r.println("") }

func (r *Reporter) println(s string) {
	if r == nil || r.Out == nil {
		return
	}
	fmt.Fprintln(r.Out, s)
}

func (r *Reporter) printf(format string, args ...any) {
	if r == nil || r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format, args...)
}
