package probe

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

//go:embed templates/report.html
var reportTemplate string

// Report is a complete motion-capture report: the rendered film strip plus
// the interaction script that produced it.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Duration    time.Duration
	Trace       *Trace
	Actions     []string
}

// ReportWriter renders Reports into standalone HTML files with the film
// strip embedded as a data URL, so a report survives being mailed around
// without its directory.
type ReportWriter struct {
	outputDir string
	film      *FilmStrip
	tmpl      *template.Template
}

// NewReportWriter creates a writer targeting outputDir.
func NewReportWriter(outputDir string) (*ReportWriter, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &ReportWriter{
		outputDir: outputDir,
		film:      NewFilmStrip(DefaultFilmConfig()),
		tmpl:      tmpl,
	}, nil
}

// Write renders the report to <outputDir>/<name>.html.
func (w *ReportWriter) Write(name string, report Report) error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	dataURL, err := w.filmDataURL(report.Trace)
	if err != nil {
		return err
	}

	var lastFrame []float64
	if report.Trace != nil && report.Trace.Len() > 0 {
		lastFrame = report.Trace.Frames[report.Trace.Len()-1]
	}

	data := struct {
		Report
		FilmDataURL template.URL
		FrameCount  int
		LastFrame   []float64
	}{
		Report:      report,
		FilmDataURL: template.URL(dataURL),
		FrameCount:  frameCount(report.Trace),
		LastFrame:   lastFrame,
	}

	path := filepath.Join(w.outputDir, name+".html")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	if err := w.tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func (w *ReportWriter) filmDataURL(trace *Trace) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, w.film.Render(trace)); err != nil {
		return "", fmt.Errorf("encode film strip: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func frameCount(trace *Trace) int {
	if trace == nil {
		return 0
	}
	return trace.Len()
}
