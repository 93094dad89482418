package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"autos share the rest", []string{"40%", "auto", "auto", "auto"}, "40%,20%,20%,20%"},
		{"comma list", []string{"25%,25%,25%"}, "33.33%,33.33%,33.34%"},
		{"bare numbers", []string{"10", "10"}, "50%,50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := normalize(tt.args, &stdout); err != nil {
				t.Fatal(err)
			}
			if got := strings.TrimSpace(stdout.String()); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleDocument = `<figure class="table"><table><colgroup><col style="width:30%"><col style="width:30%"></colgroup>` +
	`<tbody><tr><td>a</td><td>b</td></tr></tbody></table></figure>`

func TestRunScript(t *testing.T) {
	params := rootParams{logLevel: "error", width: 400}
	ed, err := loadSession(writeFile(t, "doc.html", sampleDocument), params)
	if err != nil {
		t.Fatal(err)
	}
	script := writeFile(t, "edit.js", `console.log(editor.table(0).columnWidths().join(","));`)

	var stdout, stderr bytes.Buffer
	if err := runScript(ed, script, runParams{print: true}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected widths and data, got %q", stdout.String())
	}
	if lines[0] != "50,50" {
		t.Errorf("unexpected widths %q", lines[0])
	}
	if !strings.Contains(lines[1], `<col style="width:50%;">`) {
		t.Errorf("data should carry normalized widths: %s", lines[1])
	}
}

func TestRenderPNG(t *testing.T) {
	params := rootParams{logLevel: "error", width: 400}
	ed, err := loadSession(writeFile(t, "doc.html", sampleDocument), params)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.png")
	if err := renderPNG(ed, renderParams{out: out, handles: true}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if w := img.Bounds().Dx(); w != 400 {
		t.Errorf("expected a 400px wide image, got %d", w)
	}
}

func TestLoadSessionRejectsBadLevel(t *testing.T) {
	if _, err := loadSession("", rootParams{logLevel: "loud", width: 400}); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}
