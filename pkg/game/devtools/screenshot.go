package devtools

import (
	"fmt"
	"html"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"darkvale/pkg/engine/video"
	"darkvale/pkg/game/renderer"
	"darkvale/pkg/game/state"
)

// SaveScreenshotHTML saves the current frame of a session as an HTML file in dir and returns its path
func SaveScreenshotHTML(sess *state.Session, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	var rec video.Recorder
	renderer.DrawSession(&rec, sess)

	if err := os.WriteFile(path, []byte(ScreenshotHTML(sess.Map.Name(), rec.Ops)), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ScreenshotHTML lays recorded draw calls out as absolutely positioned boxes in standard resolution
func ScreenshotHTML(title string, ops []video.DrawOp) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(title) + ` - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: sans-serif;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .screen {
            position: relative;
            overflow: hidden;
            border-radius: 8px;
`)
	fmt.Fprintf(&b, "            width: %dpx;\n            height: %dpx;\n", video.StandardResWidth, video.StandardResHeight)
	b.WriteString(`        }
        .screen div {
            position: absolute;
            white-space: pre;
        }
        .image { border: 1px dashed #ccc; }
    </style>
</head>
<body>
`)
	fmt.Fprintf(&b, "    <div class=\"header\">%s</div>\n", html.EscapeString(title))
	b.WriteString("    <div class=\"screen\">\n")

	for _, op := range ops {
		if op.Alpha <= 0 {
			continue
		}
		switch {
		case op.W > 0:
			fmt.Fprintf(&b, `        <div style="left:%.0fpx;top:%.0fpx;width:%.0fpx;height:%.0fpx;background:%s;opacity:%.2f"></div>`+"\n",
				op.X, op.Y, op.W, op.H, cssColor(op.Color), op.Alpha*float64(op.Color.A)/255)
		case op.Text != "":
			weight := "normal"
			if strings.HasSuffix(op.Style.Font, "-bold") {
				weight = "bold"
			}
			fmt.Fprintf(&b, `        <div style="left:%.0fpx;top:%.0fpx;font-size:%.0fpx;font-weight:%s;color:%s;opacity:%.2f">%s</div>`+"\n",
				op.X, op.Y, op.Style.Size, weight, cssColor(op.Style.Color), op.Alpha, html.EscapeString(op.Text))
		case op.Image != nil:
			fmt.Fprintf(&b, `        <div class="image" title="%s" style="left:%.0fpx;top:%.0fpx;width:%.0fpx;height:%.0fpx;opacity:%.2f"></div>`+"\n",
				html.EscapeString(op.Image.Name), op.X, op.Y, op.Image.Width, op.Image.Height, op.Alpha)
		}
	}

	b.WriteString(`    </div>
</body>
</html>
`)
	return b.String()
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
