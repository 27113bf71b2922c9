package redesign

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func Test_parseDesign(t *testing.T) {
	type args struct {
		contents string
	}
	tests := []struct {
		name    string
		args    args
		want    *DesignSpec
		wantErr bool
	}{
		{
			"parse sites, genes and the ori type",
			args{
				contents: "ecoRI_site, EcoRI\nkanR_gene, KanR\nori_type, AT-rich\n",
			},
			&DesignSpec{
				AllowedSites:    map[string]bool{"EcoRI": true},
				RequiredMarkers: map[string]bool{"KanR": true},
				RequiredORI:     "AT-rich",
			},
			false,
		},
		{
			"skip blank lines",
			args{
				contents: "\necoRI_site, EcoRI\n\n   \nbamHI_site, BamHI\n",
			},
			&DesignSpec{
				AllowedSites:    map[string]bool{"EcoRI": true, "BamHI": true},
				RequiredMarkers: map[string]bool{},
			},
			false,
		},
		{
			"trim whitespace around keys and values",
			args{
				contents: "  ecoRI_site ,   EcoRI  \n",
			},
			&DesignSpec{
				AllowedSites:    map[string]bool{"EcoRI": true},
				RequiredMarkers: map[string]bool{},
			},
			false,
		},
		{
			"the _site suffix wins over the ori prefix",
			args{
				contents: "ori_site, EcoRI\n",
			},
			&DesignSpec{
				AllowedSites:    map[string]bool{"EcoRI": true},
				RequiredMarkers: map[string]bool{},
			},
			false,
		},
		{
			"the last ori declaration wins",
			args{
				contents: "ori_type, AT-rich\nori_type, ColE1\n",
			},
			&DesignSpec{
				AllowedSites:    map[string]bool{},
				RequiredMarkers: map[string]bool{},
				RequiredORI:     "ColE1",
			},
			false,
		},
		{
			"ignore keys without a recognized suffix or prefix",
			args{
				contents: "note, just a comment\n",
			},
			&DesignSpec{
				AllowedSites:    map[string]bool{},
				RequiredMarkers: map[string]bool{},
			},
			false,
		},
		{
			"fail on a line with one field",
			args{
				contents: "just_one_field\n",
			},
			nil,
			true,
		},
		{
			"fail on a line with three fields",
			args{
				contents: "ecoRI_site, EcoRI, extra\n",
			},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDesign(tt.args.contents)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseDesign() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errors.Is(err, ErrMalformedDesignLine) {
				t.Errorf("parseDesign() error = %v, want ErrMalformedDesignLine", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseDesign() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_readDesign(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.txt")
	contents := "ecoRI_site, EcoRI\nkanR_gene, KanR\nori_type, AT-rich\n"
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}

	got, err := readDesign(path)
	if err != nil {
		t.Fatal(err)
	}

	if !got.AllowedSites["EcoRI"] {
		t.Error("readDesign() did not allow EcoRI")
	}
	if !got.RequiredMarkers["KanR"] {
		t.Error("readDesign() did not require KanR")
	}
	if got.RequiredORI != "AT-rich" {
		t.Errorf("readDesign() RequiredORI = %v, want AT-rich", got.RequiredORI)
	}

	if _, err := readDesign(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("readDesign() should fail on a missing file")
	}
}
