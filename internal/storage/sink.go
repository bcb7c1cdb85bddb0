package storage

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/assemble"
)

// Sink accepts named artifacts and owns placement, directory layout and
// overwrite semantics. Delivery guarantees are the sink's concern, not
// the pipeline's.
type Sink interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// PushResult reports one artifact. Err is a message, not an error value:
// a failed upload is data for the caller, never a panic path.
type PushResult struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
	Err  string `json:"error,omitempty"`
}

// PushReport is the structured outcome of one publish. Generation
// success is reported independently of it.
type PushReport struct {
	Results []PushResult `json:"results"`
	Failed  int          `json:"failed"`
}

// Push delivers every document in the bundle, continuing past failures
// so one bad upload never hides the rest of the report. Banner images
// are resolved inside bannerDir only; request-supplied names never
// reach the filesystem directly.
func Push(ctx context.Context, sink Sink, bundle assemble.Bundle, bannerDir string) PushReport {
	var report PushReport

	for _, doc := range bundle.Documents {
		url, err := sink.Put(ctx, doc.Name, doc.Data, "application/json")
		result := PushResult{Name: doc.Name, URL: url}
		if err != nil {
			result.URL = ""
			result.Err = err.Error()
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	for _, img := range bundle.Images {
		contentType := mime.TypeByExtension(filepath.Ext(img))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		data, err := loadBanner(bannerDir, img)
		if err != nil {
			report.Results = append(report.Results, PushResult{
				Name: filepath.Base(img),
				Err:  fmt.Sprintf("banner %s: %v", img, err),
			})
			report.Failed++
			continue
		}
		url, err := sink.Put(ctx, filepath.Base(img), data, contentType)
		result := PushResult{Name: filepath.Base(img), URL: url}
		if err != nil {
			result.URL = ""
			result.Err = err.Error()
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	return report
}
