// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"reflect"
	"testing"

	"github.com/tep-exp/pdfpress/pkg/types"
)

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Record
	}{
		{
			name: "plain values",
			text: "title: Thermal Emission Profiles\ndoi: 10.5281/zenodo.123456\nversion: 2.1\n",
			want: types.Record{
				Title:   "Thermal Emission Profiles",
				DOI:     "10.5281/zenodo.123456",
				Version: "2.1",
			},
		},
		{
			name: "quoted values lose one quote layer",
			text: "title: \"Thermal Emission Profiles\"\nlicense: 'CC-BY-4.0'\n",
			want: types.Record{
				Title:   "Thermal Emission Profiles",
				License: "CC-BY-4.0",
			},
		},
		{
			name: "all recognized keys",
			text: `title: T
doi: 10.1/x
date-released: 2024-03-15
version: 1.0
url: https://example.org
repository-code: https://github.com/tep-exp/tep-exp
license: MIT
`,
			want: types.Record{
				Title:          "T",
				DOI:            "10.1/x",
				DateReleased:   "2024-03-15",
				Version:        "1.0",
				URL:            "https://example.org",
				RepositoryCode: "https://github.com/tep-exp/tep-exp",
				License:        "MIT",
			},
		},
		{
			name: "last occurrence wins",
			text: "title: First\ntitle: Second\n",
			want: types.Record{Title: "Second"},
		},
		{
			name: "empty value after stripping keeps earlier value",
			text: "title: Kept\ntitle: \"\"\n",
			want: types.Record{Title: "Kept"},
		},
		{
			name: "unrecognized lines are skipped",
			text: "cff-version: 1.2.0\nmessage: please cite\ntitle: T\n",
			want: types.Record{Title: "T"},
		},
		{
			name: "empty input",
			text: "",
			want: types.Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_Keywords(t *testing.T) {
	text := `keywords:
  - thermal emission
  - "exoplanets"
  - 'atmospheres'
title: After Block
`
	rec := Parse(text)

	want := []string{"thermal emission", "exoplanets", "atmospheres"}
	if !reflect.DeepEqual(rec.Keywords, want) {
		t.Errorf("keywords = %v, want %v", rec.Keywords, want)
	}
	// The terminating line is re-inspected, not consumed.
	if rec.Title != "After Block" {
		t.Errorf("title = %q, want %q", rec.Title, "After Block")
	}
}

func TestParse_NoKeywordsBlock(t *testing.T) {
	rec := Parse("title: T\n")
	if rec.Keywords != nil {
		t.Errorf("keywords = %v, want nil", rec.Keywords)
	}
}

func TestParse_Abstract(t *testing.T) {
	text := `abstract: >
  First line of the abstract.
  Second line continues.

  A later paragraph.
title: After Abstract
`
	rec := Parse(text)

	want := "First line of the abstract.\nSecond line continues.\n\nA later paragraph."
	if rec.Abstract != want {
		t.Errorf("abstract = %q, want %q", rec.Abstract, want)
	}
	if rec.Title != "After Abstract" {
		t.Errorf("title = %q, want %q", rec.Title, "After Abstract")
	}
}

func TestParse_AbstractAtEOF(t *testing.T) {
	text := "abstract: >\n  Runs to the end\n  of the file.\n"
	rec := Parse(text)

	want := "Runs to the end\nof the file."
	if rec.Abstract != want {
		t.Errorf("abstract = %q, want %q", rec.Abstract, want)
	}
}

func TestParse_AbstractWithoutBlockMarker(t *testing.T) {
	// "abstract:" not ending in ">" is not a block literal and is skipped.
	rec := Parse("abstract: inline text\ntitle: T\n")
	if rec.Abstract != "" {
		t.Errorf("abstract = %q, want empty", rec.Abstract)
	}
}

func TestParse_Authors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "given and family",
			text: "authors:\n  - family-names: Tan\n    given-names: Wei\n",
			want: "Wei Tan",
		},
		{
			name: "only first author captured",
			text: `authors:
  - family-names: Tan
    given-names: Wei
  - family-names: Okafor
    given-names: Ada
`,
			want: "Wei Tan",
		},
		{
			name: "family only",
			text: "authors:\n  - family-names: Tan\n",
			want: "Tan",
		},
		{
			name: "given only",
			text: "authors:\n  - given-names: Wei\n",
			want: "Wei",
		},
		{
			name: "quoted names",
			text: "authors:\n  - family-names: \"Tan\"\n    given-names: 'Wei'\n",
			want: "Wei Tan",
		},
		{
			name: "no authors section",
			text: "title: T\n",
			want: "",
		},
		{
			name: "scan stops at preferred-citation",
			text: "authors:\npreferred-citation:\n  - family-names: Tan\n",
			want: "",
		},
		{
			name: "scan stops at next top-level key",
			text: "authors:\ntitle: T\n  - family-names: Tan\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Parse(tt.text)
			if rec.Author != tt.want {
				t.Errorf("author = %q, want %q", rec.Author, tt.want)
			}
		})
	}
}

func TestParse_RealisticFile(t *testing.T) {
	text := `cff-version: 1.2.0
message: If you use this software, please cite it as below.
title: TEP-EXP Thermal Emission Pipeline
authors:
  - family-names: Tan
    given-names: Wei
    orcid: https://orcid.org/0000-0002-1825-0097
  - family-names: Okafor
    given-names: Ada
doi: 10.5281/zenodo.987654
date-released: 2024-03-15
version: "2.1"
license: CC-BY-4.0
repository-code: https://github.com/tep-exp/tep-exp
url: https://tep-exp.example.org
abstract: >
  A pipeline for reducing thermal emission
  spectra of transiting exoplanets.
keywords:
  - exoplanets
  - thermal emission
  - spectroscopy
`
	rec := Parse(text)

	want := types.Record{
		Title:          "TEP-EXP Thermal Emission Pipeline",
		DOI:            "10.5281/zenodo.987654",
		DateReleased:   "2024-03-15",
		Version:        "2.1",
		URL:            "https://tep-exp.example.org",
		RepositoryCode: "https://github.com/tep-exp/tep-exp",
		License:        "CC-BY-4.0",
		Abstract:       "A pipeline for reducing thermal emission\nspectra of transiting exoplanets.",
		Author:         "Wei Tan",
		Keywords:       []string{"exoplanets", "thermal emission", "spectroscopy"},
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("Parse() = %+v, want %+v", rec, want)
	}
}

func TestParse_CRLFInput(t *testing.T) {
	rec := Parse("title: T\r\ndoi: 10.1/x\r\n")
	if rec.Title != "T" || rec.DOI != "10.1/x" {
		t.Errorf("got %+v, want title T and doi 10.1/x", rec)
	}
}
