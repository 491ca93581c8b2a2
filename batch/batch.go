// Package batch writes the full launcher icon set for a config.
package batch

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/amalfra/etag/v3"

	"iconkit/config"
	"iconkit/icon"
	"iconkit/utils"
)

const (
	launcher   = "ic_launcher"
	round      = "ic_launcher_round"
	foreground = "ic_launcher_foreground"
	background = "ic_launcher_background"
	anyDPI     = "mipmap-anydpi-v26"

	dirPerm  = 0755
	filePerm = 0644
)

//go:embed adaptive_icon.xml
var adaptiveTmpl string

// AdaptiveXML is the descriptor written as both ic_launcher.xml and
// ic_launcher_round.xml.
var AdaptiveXML = strings.ReplaceAll(
	strings.ReplaceAll(adaptiveTmpl, "{{.Background}}", background),
	"{{.Foreground}}", foreground)

type Generator struct {
	Config   config.Config
	Root     string
	Log      *utils.Logger
	Renderer *icon.Renderer
	// Discard, when set, receives the outputs left by a previous run before
	// anything is written.
	Discard  func(paths ...string) error
}

// Entry is one written file, Path relative to the generator root. Size is
// the icon edge, 0 for XML.
type Entry struct {
	Path  string
	Size  int
	Bytes int
	Sum   string
}

type Report struct {
	Entries []Entry
}

// Fingerprint is a weak ETag over every path and checksum; identical runs
// produce the same value.
func (r *Report) Fingerprint() string {
	var sb strings.Builder
	for _, e := range r.Entries {
		fmt.Fprintf(&sb, "%s %s\n", filepath.ToSlash(e.Path), e.Sum)
	}
	return etag.Generate(sb.String(), true)
}

func (g *Generator) mipmap(density string, name string) string {
	return filepath.Join(g.Config.ResDir, "mipmap-"+density, name+".png")
}

func (g *Generator) xml(name string) string {
	return filepath.Join(g.Config.ResDir, anyDPI, name+".xml")
}

func (g *Generator) store() string {
	s := g.Config.StoreSize
	return filepath.Join(g.Config.StoreDir, fmt.Sprintf("%s_%dx%d.png", launcher, s, s))
}

// Outputs lists every file Run writes, in write order, joined to Root.
func (g *Generator) Outputs() []string {
	var out []string
	for _, d := range g.Config.Densities {
		for _, name := range []string{launcher, round, foreground, background} {
			out = append(out, g.mipmap(d.Name, name))
		}
	}
	out = append(out, g.xml(launcher), g.xml(round), g.store())
	for i, p := range out {
		out[i] = filepath.Join(g.Root, p)
	}
	return out
}

func (g *Generator) logoPath() string {
	if g.Config.LogoPath == "" || filepath.IsAbs(g.Config.LogoPath) {
		return g.Config.LogoPath
	}
	return filepath.Join(g.Root, g.Config.LogoPath)
}

// Run renders and writes the whole set. The first write failure stops the
// run; files already written stay on disk.
func (g *Generator) Run() (*Report, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	if g.Log == nil {
		g.Log = &utils.Logger{ID: "icons", Out: io.Discard}
	}
	if g.Renderer == nil {
		g.Renderer = &icon.Renderer{Palette: g.Config.Palette, Warn: g.Log.Warnf}
	}

	logo := g.logoPath()
	if _, err := os.Stat(logo); logo != "" && err == nil {
		g.Log.Printf("logo found: %s", logo)
	} else {
		g.Log.Printf("logo not found at %s, using corporate colors only", logo)
	}

	if g.Discard != nil {
		if err := g.discard(); err != nil {
			return nil, err
		}
	}

	report := &Report{}
	g.Log.Printf("generating launcher icons")
	for _, d := range g.Config.Densities {
		std := g.Renderer.Standard(d.Size, logo)
		variants := []struct {
			name string
			img  image.Image
		}{
			{launcher, std},
			{round, g.Renderer.Round(std)},
			{foreground, g.Renderer.Foreground(d.Size, logo)},
			{background, g.Renderer.Background(d.Size)},
		}
		for _, v := range variants {
			e, err := g.writePNG(g.mipmap(d.Name, v.name), v.img)
			if err != nil {
				return report, err
			}
			report.Entries = append(report.Entries, e)
		}
		g.Log.Printf("%-8s (%3dx%3d): %s", d.Name, d.Size, d.Size, filepath.Dir(g.mipmap(d.Name, launcher)))
	}

	g.Log.Printf("generating adaptive icon definitions")
	for _, name := range []string{launcher, round} {
		e, err := g.writeFile(g.xml(name), []byte(AdaptiveXML))
		if err != nil {
			return report, err
		}
		report.Entries = append(report.Entries, e)
		g.Log.Printf("adaptive icon definition: %s", e.Path)
	}

	s := g.Config.StoreSize
	e, err := g.writePNG(g.store(), g.Renderer.Standard(s, logo))
	if err != nil {
		return report, err
	}
	report.Entries = append(report.Entries, e)
	g.Log.Printf("store icon (%dx%d): %s", s, s, e.Path)

	g.Log.Printf("done: %d files, fingerprint %s", len(report.Entries), report.Fingerprint())
	return report, nil
}

func (g *Generator) discard() error {
	var existing []string
	for _, p := range g.Outputs() {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := g.Discard(existing...); err != nil {
		return fmt.Errorf("discard previous outputs: %w", err)
	}
	g.Log.Printf("discarded %d previous files", len(existing))
	return nil
}

func (g *Generator) writePNG(path string, img image.Image) (Entry, error) {
	b, sum, err := utils.EncodePNG(img)
	if err != nil {
		return Entry{}, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := write(filepath.Join(g.Root, path), b); err != nil {
		return Entry{}, err
	}
	return Entry{Path: path, Size: img.Bounds().Dx(), Bytes: len(b), Sum: sum}, nil
}

func (g *Generator) writeFile(path string, b []byte) (Entry, error) {
	if err := write(filepath.Join(g.Root, path), b); err != nil {
		return Entry{}, err
	}
	return Entry{Path: path, Bytes: len(b), Sum: utils.Sum(b)}, nil
}

func write(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(path, b, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
