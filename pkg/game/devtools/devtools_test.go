package devtools

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/video"
	"darkvale/pkg/game/global"
	"darkvale/pkg/game/mapmode"
	"darkvale/pkg/game/state"
)

func loadDevMap(t *testing.T) *mapmode.MapMode {
	t.Helper()
	logging.SetOutput(io.Discard)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	md := DevMapData()
	if err := md.Validate(); err != nil {
		t.Fatalf("DevMapData() is invalid: %v", err)
	}
	return mapmode.Load(md, global.NewMedia(), rand.New(rand.NewSource(1)), nil)
}

func TestDevMapHasEveryKind(t *testing.T) {
	m := loadDevMap(t)
	kinds := make(map[mapmode.ObjectKind]int)
	for _, layer := range m.Objects().Layers() {
		for _, o := range layer {
			kinds[o.Base().Kind]++
		}
	}
	for _, k := range []mapmode.ObjectKind{mapmode.KindSprite, mapmode.KindPhysical, mapmode.KindTreasure, mapmode.KindSavePoint} {
		if kinds[k] == 0 {
			t.Errorf("no %s on the developer map", k)
		}
	}
	if m.Camera().ID != 1 {
		t.Errorf("camera on %d, want the hero", m.Camera().ID)
	}
}

func TestWriteMap(t *testing.T) {
	m := loadDevMap(t)
	var buf bytes.Buffer
	if err := WriteMap(&buf, m); err != nil {
		t.Fatalf("WriteMap() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Map: Developer Map", "Grid: 50x50", "Objects:", "sign"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q", want)
		}
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	grid := lines[len(lines)-50:]
	if marks := strings.Count(strings.Join(grid, ""), "@"); marks != 1 {
		t.Errorf("grid has %d camera marks, want 1", marks)
	}
	if grid[0] != strings.Repeat("#", 50) {
		t.Errorf("top row = %q, want a wall", grid[0])
	}
	if !strings.Contains(grid[45], "@") {
		t.Errorf("camera mark not on row 45: %q", grid[45])
	}
}

func TestDumpMap(t *testing.T) {
	m := loadDevMap(t)
	dir := t.TempDir()
	path, err := DumpMap(m, dir)
	if err != nil {
		t.Fatalf("DumpMap() error: %v", err)
	}
	if path != filepath.Join(dir, mapDumpFilename) {
		t.Errorf("DumpMap() = %q", path)
	}
	if _, err := DumpMap(m, filepath.Join(dir, "missing")); err == nil {
		t.Error("DumpMap() into a missing directory should fail")
	}
}

func TestScreenshotHTML(t *testing.T) {
	var rec video.Recorder
	rec.FillRect(10, 20, 30, 40, video.Red, 1)
	rec.DrawText("<hello>", 5, 5, video.NewTextStyle("sans-bold", 16, video.White), 1)
	rec.DrawText("gone", 5, 5, video.NewTextStyle("sans", 16, video.White), 0)

	out := ScreenshotHTML("Mill & Road", rec.Ops)
	for _, want := range []string{"Mill &amp; Road", "&lt;hello&gt;", "background:#ff3c3c", "font-weight:bold"} {
		if !strings.Contains(out, want) {
			t.Errorf("screenshot does not contain %q", want)
		}
	}
	if strings.Contains(out, "gone") {
		t.Error("invisible text was written")
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	sess := state.NewSession(loadDevMap(t), DevMapName, nil)
	path, err := SaveScreenshotHTML(sess, t.TempDir())
	if err != nil {
		t.Fatalf("SaveScreenshotHTML() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Developer Map") {
		t.Error("screenshot does not name the map")
	}
}
