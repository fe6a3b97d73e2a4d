package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	sirisx "github.com/reoring/sirisx"
)

type issueReport struct {
	Path     string `json:"path"`
	Pointer  string `json:"pointer"`
	Code     string `json:"code"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Got      string `json:"got,omitempty"`
}

type fileReport struct {
	File       string        `json:"file"`
	Valid      bool          `json:"valid"`
	Situations int           `json:"situations"`
	Issues     []issueReport `json:"issues,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func newFileReport(file string, n int, err error) fileReport {
	r := fileReport{File: file, Valid: err == nil, Situations: n}
	if err == nil {
		return r
	}
	iss, ok := sirisx.AsIssues(err)
	if !ok {
		r.Error = err.Error()
		return r
	}
	for _, it := range iss {
		r.Issues = append(r.Issues, issueReport{
			Path:     it.Path.String(),
			Pointer:  it.Path.Pointer(),
			Code:     it.Code,
			Category: it.Category().String(),
			Message:  it.Message,
			Expected: it.Expected,
			Got:      it.Got,
		})
	}
	return r
}

func writeReports(w io.Writer, output string, reports []fileReport) error {
	if output == "json" {
		b, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	for _, r := range reports {
		switch {
		case r.Valid:
			fmt.Fprintf(w, "OK   %s (%d situations)\n", r.File, r.Situations)
		case r.Error != "":
			fmt.Fprintf(w, "FAIL %s: %s\n", r.File, r.Error)
		default:
			fmt.Fprintf(w, "FAIL %s (%d issues)\n", r.File, len(r.Issues))
			for _, it := range r.Issues {
				fmt.Fprintf(w, "  %s at %s: %s\n", it.Code, it.Path, it.Message)
			}
		}
	}
	return nil
}
