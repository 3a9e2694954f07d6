// Command themegen derives a color palette from a wallpaper and writes
// theme files for terminals, GTK and editors.
//
// Usage:
//
//	themegen [flags] [wallpaper]
//
// The wallpaper path is auto-detected from GNOME settings when
// omitted. With -accent the extraction step is skipped entirely and
// the palette is derived from the given hex color.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/setanarut/themegen"
	"github.com/setanarut/themegen/extract"
	"github.com/setanarut/themegen/generate"
)

const version = "1.1.0"

var (
	bold  = lipgloss.NewStyle().Bold(true)
	faint = lipgloss.NewStyle().Faint(true)
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "themegen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		accentFlag  = flag.String("accent", "", "Override accent color as hex (e.g. #c41e3a); skips extraction")
		nameFlag    = flag.String("name", "MyTheme", "Theme name")
		outFlag     = flag.String("o", "", "Output directory (default: ~/<name>)")
		methodFlag  = flag.String("method", "lloyd", "Extraction method: lloyd, kmeans, dominantcolor")
		kFlag       = flag.Int("k", 0, "Cluster count (default from config)")
		noPrompt    = flag.Bool("no-interactive", false, "Skip all prompts, use defaults")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("themegen " + version)
		return nil
	}

	cfg := themegen.DefaultConfig()
	if *kFlag > 0 {
		cfg.Clusters = *kFlag
	}
	method, err := extract.ParseMethod(*methodFlag)
	if err != nil {
		return err
	}
	interactive := !*noPrompt

	fmt.Println()
	fmt.Println("  " + bold.Render("themegen") + "  " + faint.Render("v"+version))
	fmt.Println("  " + faint.Render("Generate system-wide themes from any wallpaper."))
	fmt.Println()

	// Wallpaper is optional when an accent override is given.
	wallpaper := flag.Arg(0)
	if wallpaper == "" && *accentFlag == "" {
		if detected := detectWallpaper(); detected != "" {
			fmt.Println("  Detected wallpaper: " + detected)
			wallpaper = detected
		} else if interactive {
			wallpaper = promptInput("Wallpaper path", "")
		}
		if wallpaper == "" {
			return fmt.Errorf("no wallpaper provided and auto-detect failed")
		}
	}
	if wallpaper != "" {
		abs, err := filepath.Abs(wallpaper)
		if err == nil {
			wallpaper = abs
		}
		if _, err := os.Stat(wallpaper); err != nil {
			return fmt.Errorf("wallpaper not found: %s", wallpaper)
		}
	}

	// Resolve the accent: explicit override, or extract and score.
	var accent colorful.Color
	if *accentFlag != "" {
		accent, err = themegen.ParseHex(*accentFlag)
		if err != nil {
			return err
		}
		fmt.Println("  Using provided accent: " + swatch(themegen.Hex(accent)) + " " + themegen.Hex(accent))
	} else {
		fmt.Println("  " + bold.Render("Extracting dominant colors..."))
		candidates, err := extract.FromPath(wallpaper, cfg, method)
		if err != nil {
			return err
		}

		var strip, hexes []string
		for _, c := range candidates {
			hex := themegen.Hex(c.Color)
			strip = append(strip, swatch(hex))
			hexes = append(hexes, hex)
		}
		fmt.Printf("  Found %d dominant colors:\n", len(candidates))
		fmt.Println("    " + strings.Join(strip, " "))
		fmt.Println("    " + faint.Render(strings.Join(hexes, " ")))
		fmt.Println()

		accent = themegen.PickAccent(candidates, cfg)
		h, s, l := themegen.HSL(accent)
		fmt.Printf("  Best accent candidate: %s %s  %s\n",
			swatch(themegen.Hex(accent)), themegen.Hex(accent),
			faint.Render(fmt.Sprintf("(hue=%.0f sat=%.0f lum=%.0f)", h, s, l)))

		if interactive && !promptYN("Use this accent color?", true) {
			custom := promptInput("Enter accent hex (e.g. #c41e3a)", "")
			if custom != "" {
				accent, err = themegen.ParseHex(custom)
				if err != nil {
					return err
				}
			}
		}
	}
	fmt.Println()

	name := *nameFlag
	if interactive && *nameFlag == "MyTheme" {
		name = promptInput("Theme name", "MyTheme")
	}

	fmt.Println("  " + bold.Render("Generating palette from accent "+themegen.Hex(accent)+"..."))
	palette := themegen.Build(accent, cfg)
	printPalette(palette)
	printANSIStrip(palette)

	if interactive && !promptYN("Proceed with this palette?", true) {
		fmt.Println("  Aborted.")
		return nil
	}

	outDir := *outFlag
	if outDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		outDir = filepath.Join(home, name)
	}

	paths, err := generate.WriteAll(outDir, name, wallpaper, palette)
	if err != nil {
		return err
	}
	fmt.Printf("  Generated %d files in %s\n", len(paths), outDir)
	for _, p := range paths {
		fmt.Println("    " + filepath.Base(p))
	}
	fmt.Println()
	return nil
}

// detectWallpaper reads the current GNOME wallpaper from gsettings.
// Returns "" when unavailable.
func detectWallpaper() string {
	for _, key := range []string{"picture-uri-dark", "picture-uri"} {
		out, err := exec.Command("gsettings", "get", "org.gnome.desktop.background", key).Output()
		if err != nil {
			continue
		}
		uri := strings.Trim(strings.TrimSpace(string(out)), "'\"")
		uri = strings.TrimPrefix(uri, "file://")
		if uri == "" {
			continue
		}
		if _, err := os.Stat(uri); err == nil {
			return uri
		}
	}
	return ""
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func printPalette(p themegen.Palette) {
	rows := []struct {
		label, hex string
	}{
		{"Deepest BG", p.BgDeepest},
		{"Main BG", p.BgMain},
		{"Surface", p.BgSurface},
		{"Elevated", p.BgElevated},
		{"Border", p.Border1},
		{"Accent", p.Accent},
		{"Accent Hover", p.AccentHover},
		{"Accent Light", p.AccentLight},
		{"Accent Soft", p.AccentSoft},
		{"Rose", p.AccentRose},
		{"Text", p.TextPrimary},
		{"Text Muted", p.TextMuted},
		{"Green", p.Green},
		{"Blue", p.Blue},
		{"Magenta", p.Magenta},
		{"Cyan", p.Cyan},
	}
	fmt.Println("  " + bold.Render("Generated Palette:"))
	fmt.Println()
	for _, r := range rows {
		marker := ""
		if r.hex == p.Accent && r.label == "Accent" {
			marker = " " + bold.Render("<-- accent")
		}
		fmt.Printf("    %s %s  %s%s\n", swatch(r.hex), r.hex, faint.Render(r.label), marker)
	}
	fmt.Println()
}

func printANSIStrip(p themegen.Palette) {
	fmt.Println("  " + bold.Render("Terminal Colors:"))
	var normal, bright strings.Builder
	for i, hex := range p.ANSI {
		if i < 8 {
			normal.WriteString(swatch(hex))
		} else {
			bright.WriteString(swatch(hex))
		}
	}
	fmt.Println("    " + normal.String() + "  " + faint.Render("normal"))
	fmt.Println("    " + bright.String() + "  " + faint.Render("bright"))
	fmt.Println()
}

func promptYN(question string, def bool) bool {
	hint := "[Y/n]"
	if !def {
		hint = "[y/N]"
	}
	fmt.Printf("  %s %s ", question, faint.Render(hint))
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Println()
		return def
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return def
	}
	return strings.HasPrefix(answer, "y")
}

func promptInput(question, def string) string {
	hint := ""
	if def != "" {
		hint = " " + faint.Render("["+def+"]")
	}
	fmt.Printf("  %s%s: ", question, hint)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Println()
		return def
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def
	}
	return answer
}
