// Package generate renders a finished palette into downstream file
// formats. Every renderer is a pure Palette → string function; WriteAll
// materializes the whole set under an output directory.
package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/setanarut/themegen"
)

type themeData struct {
	Name string
	themegen.Palette
}

var alacrittyTmpl = template.Must(template.New("alacritty").Parse(`# {{.Name}} - generated by themegen
[colors.primary]
background = "{{.BgMain}}"
foreground = "{{.TextPrimary}}"

[colors.cursor]
cursor = "{{.Accent}}"
text = "{{.BgMain}}"

[colors.selection]
background = "{{.AccentSoft}}"
text = "{{.TextPrimary}}"

[colors.normal]
black = "{{index .ANSI 0}}"
red = "{{index .ANSI 1}}"
green = "{{index .ANSI 2}}"
yellow = "{{index .ANSI 3}}"
blue = "{{index .ANSI 4}}"
magenta = "{{index .ANSI 5}}"
cyan = "{{index .ANSI 6}}"
white = "{{index .ANSI 7}}"

[colors.bright]
black = "{{index .ANSI 8}}"
red = "{{index .ANSI 9}}"
green = "{{index .ANSI 10}}"
yellow = "{{index .ANSI 11}}"
blue = "{{index .ANSI 12}}"
magenta = "{{index .ANSI 13}}"
cyan = "{{index .ANSI 14}}"
white = "{{index .ANSI 15}}"
`))

var kittyTmpl = template.Must(template.New("kitty").Parse(`# {{.Name}} - generated by themegen
background {{.BgMain}}
foreground {{.TextPrimary}}
cursor {{.Accent}}
cursor_text_color {{.BgMain}}
selection_background {{.AccentSoft}}
selection_foreground {{.TextPrimary}}
url_color {{.Blue}}
active_border_color {{.Accent}}
inactive_border_color {{.Border1}}
active_tab_background {{.BgElevated}}
active_tab_foreground {{.TextPrimary}}
inactive_tab_background {{.BgSurface}}
inactive_tab_foreground {{.TextMuted}}
{{range $i, $c := .ANSI}}color{{$i}} {{$c}}
{{end}}`))

var gtkTmpl = template.Must(template.New("gtk").Parse(`/* {{.Name}} - generated by themegen */
@define-color accent_color {{.AccentLight}};
@define-color accent_bg_color {{.Accent}};
@define-color accent_fg_color {{.TextPrimary}};
@define-color window_bg_color {{.BgMain}};
@define-color window_fg_color {{.TextPrimary}};
@define-color view_bg_color {{.BgDeepest}};
@define-color view_fg_color {{.TextPrimary}};
@define-color headerbar_bg_color {{.BgSurface}};
@define-color headerbar_fg_color {{.TextPrimary}};
@define-color card_bg_color {{.BgElevated}};
@define-color card_fg_color {{.TextPrimary}};
@define-color popover_bg_color {{.BgElevated}};
@define-color popover_fg_color {{.TextPrimary}};
@define-color dialog_bg_color {{.BgSurface}};
@define-color dialog_fg_color {{.TextPrimary}};
@define-color sidebar_bg_color {{.BgSurface}};
@define-color sidebar_fg_color {{.TextMuted}};
@define-color borders {{.Border1}};
@define-color warning_color {{.Warning}};
@define-color error_color {{.AccentRose}};
@define-color success_color {{.Green}};
@define-color destructive_bg_color {{.DeepMaroon}};
@define-color insensitive_fg_color {{.Insensitive}};
@define-color dim_label {{.TextDim}};
`))

// Alacritty renders an alacritty TOML color scheme.
func Alacritty(name string, p themegen.Palette) string {
	return render(alacrittyTmpl, name, p)
}

// Kitty renders a kitty terminal color config.
func Kitty(name string, p themegen.Palette) string {
	return render(kittyTmpl, name, p)
}

// GTKCSS renders a libadwaita/GTK named-color stylesheet.
func GTKCSS(name string, p themegen.Palette) string {
	return render(gtkTmpl, name, p)
}

// ThemeJSON renders the machine-readable theme manifest: name,
// wallpaper path and the full name→hex mapping.
func ThemeJSON(name, wallpaper string, p themegen.Palette) (string, error) {
	out, err := json.MarshalIndent(map[string]any{
		"name":      name,
		"wallpaper": wallpaper,
		"colors":    p.Map(),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal theme manifest: %w", err)
	}
	return string(out) + "\n", nil
}

// ShellEnv renders the full palette as THEME_* exports, one per name
// in the closed set, for scripts and prompt themers.
func ShellEnv(p themegen.Palette) string {
	var b strings.Builder
	b.WriteString("# generated by themegen\n")
	for _, e := range p.Entries() {
		fmt.Fprintf(&b, "export THEME_%s=%q\n", envName(e.Name), e.Hex)
	}
	return b.String()
}

// VSCode renders a VS Code color theme document.
func VSCode(name string, p themegen.Palette) (string, error) {
	theme := map[string]any{
		"name":                  name,
		"type":                  "dark",
		"semanticHighlighting":  true,
		"colors": map[string]string{
			"editor.background":                   p.BgMain,
			"editor.foreground":                   p.TextPrimary,
			"editor.lineHighlightBackground":      p.BgSurface,
			"editor.selectionBackground":          p.AccentSoft,
			"editorCursor.foreground":             p.Accent,
			"editorLineNumber.foreground":         p.TextDim,
			"editorLineNumber.activeForeground":   p.Accent,
			"activityBar.background":              p.BgMain,
			"activityBar.foreground":              p.Accent,
			"sideBar.background":                  p.BgSurface,
			"sideBar.foreground":                  p.TextMuted,
			"statusBar.background":                p.BgDeepest,
			"statusBar.foreground":                p.TextMuted,
			"titleBar.activeBackground":           p.BgMain,
			"titleBar.activeForeground":           p.TextPrimary,
			"panel.background":                    p.BgDeepest,
			"panel.border":                        p.Border1,
			"tab.activeBackground":                p.BgElevated,
			"tab.inactiveBackground":              p.BgSurface,
			"button.background":                   p.Accent,
			"button.hoverBackground":              p.AccentHover,
			"list.activeSelectionBackground":      p.BgElevated,
			"list.hoverBackground":                p.BgSurface,
			"focusBorder":                         p.Accent,
			"editorWarning.foreground":            p.Warning,
			"editorError.foreground":              p.AccentRose,
			"editorGutter.addedBackground":        p.Green,
			"editorGutter.modifiedBackground":     p.Accent,
			"editorGutter.deletedBackground":      p.DeepMaroon,
			"terminal.background":                 p.BgMain,
			"terminal.foreground":                 p.TextPrimary,
			"terminal.ansiBlack":                  p.ANSI[0],
			"terminal.ansiRed":                    p.ANSI[1],
			"terminal.ansiGreen":                  p.ANSI[2],
			"terminal.ansiYellow":                 p.ANSI[3],
			"terminal.ansiBlue":                   p.ANSI[4],
			"terminal.ansiMagenta":                p.ANSI[5],
			"terminal.ansiCyan":                   p.ANSI[6],
			"terminal.ansiWhite":                  p.ANSI[7],
			"terminal.ansiBrightBlack":            p.ANSI[8],
			"terminal.ansiBrightRed":              p.ANSI[9],
			"terminal.ansiBrightGreen":            p.ANSI[10],
			"terminal.ansiBrightYellow":           p.ANSI[11],
			"terminal.ansiBrightBlue":             p.ANSI[12],
			"terminal.ansiBrightMagenta":          p.ANSI[13],
			"terminal.ansiBrightCyan":             p.ANSI[14],
			"terminal.ansiBrightWhite":            p.ANSI[15],
		},
		"tokenColors": []map[string]any{
			{"scope": "comment", "settings": map[string]string{"foreground": p.TextDim, "fontStyle": "italic"}},
			{"scope": "string", "settings": map[string]string{"foreground": p.Green}},
			{"scope": "keyword", "settings": map[string]string{"foreground": p.Accent}},
			{"scope": "constant.numeric", "settings": map[string]string{"foreground": p.Magenta}},
			{"scope": "entity.name.function", "settings": map[string]string{"foreground": p.Blue}},
			{"scope": "entity.name.type", "settings": map[string]string{"foreground": p.Cyan}},
			{"scope": "variable", "settings": map[string]string{"foreground": p.TextPrimary}},
		},
	}
	out, err := json.MarshalIndent(theme, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal vscode theme: %w", err)
	}
	return string(out) + "\n", nil
}

// WriteAll writes every generated artifact under dir and returns the
// written paths.
func WriteAll(dir, name, wallpaper string, p themegen.Palette) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	vscode, err := VSCode(name, p)
	if err != nil {
		return nil, err
	}
	manifest, err := ThemeJSON(name, wallpaper, p)
	if err != nil {
		return nil, err
	}
	files := []struct {
		name    string
		content string
	}{
		{"alacritty.toml", Alacritty(name, p)},
		{"kitty.conf", Kitty(name, p)},
		{"gtk.css", GTKCSS(name, p)},
		{"vscode-theme.json", vscode},
		{"colors.sh", ShellEnv(p)},
		{"theme.json", manifest},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func render(t *template.Template, name string, p themegen.Palette) string {
	var b strings.Builder
	// Templates over a fixed struct cannot fail at execute time.
	_ = t.Execute(&b, themeData{Name: name, Palette: p})
	return b.String()
}

func envName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
